package sparkpost

import (
	"context"
	"errors"

	"github.com/dmitrymomot/sparkmail/pkg/mailer"
)

// Sender implements mailer.Sender using the SparkPost Transmissions API.
type Sender struct {
	client *Client
}

// New creates a SparkPost sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	client, err := NewClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Sender{client: client}, nil
}

// NewSender wraps an existing client.
func NewSender(client *Client) *Sender {
	return &Sender{client: client}
}

// Send implements mailer.Sender.
// Invalid messages fail with *mailer.ValidationError before any request is made;
// every delivery failure is returned as *mailer.DispatchError.
func (s *Sender) Send(ctx context.Context, msg mailer.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if _, err := s.client.Transmit(ctx, Translate(msg)); err != nil {
		return dispatchError(err)
	}
	return nil
}

// SendEmail validates msg, then sends it with a client built from cfg.
// Use a long-lived Sender when sending more than once.
func SendEmail(ctx context.Context, msg mailer.Message, cfg Config) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	s, err := New(cfg)
	if err != nil {
		return err
	}
	return s.Send(ctx, msg)
}

func dispatchError(err error) *mailer.DispatchError {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return &mailer.DispatchError{Code: providerErr.Code, Message: providerErr.Message, Err: err}
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return &mailer.DispatchError{Code: 0, Message: transportErr.Description, Err: err}
	}

	return &mailer.DispatchError{Code: 0, Message: err.Error(), Err: err}
}
