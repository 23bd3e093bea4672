package sparkpost

import "github.com/dmitrymomot/sparkmail/pkg/mailer"

// Payload is the JSON body of a transmission request.
type Payload struct {
	Content    Content     `json:"content"`
	Recipients []Recipient `json:"recipients"`
}

// Content is the inline content of a transmission.
type Content struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Recipient is a single entry of the transmission recipient list.
type Recipient struct {
	Address RecipientAddress `json:"address"`
}

// RecipientAddress is the name and email of a recipient.
type RecipientAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Translate maps a message onto the transmission schema.
// It never fails: validation belongs to the message, not the wire format.
// The HTML part falls back to the text body when the message has no HTML.
func Translate(msg mailer.Message) Payload {
	to := msg.To()
	recipients := make([]Recipient, len(to))
	for i, addr := range to {
		recipients[i] = Recipient{Address: RecipientAddress{Name: addr.Name, Email: addr.Email}}
	}

	html := msg.HTML()
	if html == "" {
		html = msg.Text()
	}

	return Payload{
		Content: Content{
			From:    msg.From().String(),
			Subject: msg.Subject(),
			HTML:    html,
			Text:    msg.Text(),
		},
		Recipients: recipients,
	}
}
