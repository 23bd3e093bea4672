package mailer

import (
	"fmt"
	"slices"
	"strings"
)

// Address is a display name and email pair.
type Address struct {
	Name  string
	Email string
}

// String formats the address in RFC 5322 form.
// Returns "Name <email>" if name is provided, otherwise just email.
func (a Address) String() string {
	return Recipient(a.Name, a.Email)
}

// Recipient formats a name and email into RFC 5322 address format.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// MessageParams holds the raw input for NewMessage.
type MessageParams struct {
	From    Address
	To      []Address
	Subject string
	Text    string // Plain text body
	HTML    string // HTML body
}

// Message is a validated outbound email.
// It can only be built with NewMessage and is never mutated afterwards.
type Message struct {
	from    Address
	to      []Address
	subject string
	text    string
	html    string
}

// NewMessage validates params and returns an immutable Message.
// Returns *ValidationError when the sender, recipients or bodies are missing.
func NewMessage(p MessageParams) (Message, error) {
	msg := Message{
		from:    p.From,
		to:      slices.Clone(p.To),
		subject: p.Subject,
		text:    p.Text,
		html:    p.HTML,
	}
	if err := msg.Validate(); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Validate checks the message invariants.
// Senders call it again because a zero Message bypasses NewMessage.
func (m Message) Validate() error {
	if strings.TrimSpace(m.from.Email) == "" {
		return &ValidationError{Field: "from", Err: ErrNoSender}
	}
	if len(m.to) == 0 {
		return &ValidationError{Field: "to", Err: ErrNoRecipient}
	}
	for i, rcpt := range m.to {
		if strings.TrimSpace(rcpt.Email) == "" {
			return &ValidationError{Field: fmt.Sprintf("to[%d]", i), Err: ErrInvalidRecipient}
		}
	}
	if m.text == "" && m.html == "" {
		return &ValidationError{Field: "body", Err: ErrNoContent}
	}
	return nil
}

// From returns the sender.
func (m Message) From() Address { return m.from }

// To returns a copy of the recipients in their original order.
func (m Message) To() []Address { return slices.Clone(m.to) }

// Subject returns the subject line.
func (m Message) Subject() string { return m.subject }

// Text returns the plain text body, possibly empty.
func (m Message) Text() string { return m.text }

// HTML returns the HTML body, possibly empty.
func (m Message) HTML() string { return m.html }
