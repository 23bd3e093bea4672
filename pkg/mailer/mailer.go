package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer renders templates into messages and hands them to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a new Mailer with the given sender and renderer.
// renderer may be nil when only SendRaw is used.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       []Address // Recipients, in delivery order
	Template string    // Template filename (e.g., "welcome.md")
	Data     any       // Template data

	// Optional overrides
	From    Address // Override default sender
	Subject string  // Override template subject
	Layout  string  // Override default layout
}

// Send renders a template and sends the result.
// Subject resolution: params.Subject > template frontmatter > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if len(params.To) == 0 {
		return &ValidationError{Field: "to", Err: ErrNoRecipient}
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	rendered, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = rendered.Subject
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}

	subject, err = executeSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	from := params.From
	if from.Email == "" {
		from = m.config.DefaultSender()
	}

	msg, err := NewMessage(MessageParams{
		From:    from,
		To:      params.To,
		Subject: subject,
		Text:    rendered.Text,
		HTML:    rendered.HTML,
	})
	if err != nil {
		return err
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// SendRaw sends a pre-built message without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// executeSubject processes subject as a text template ({{.Variable}} syntax).
func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
