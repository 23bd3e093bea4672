package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
type Sender interface {
	// Send delivers a message synchronously.
	// Returns *ValidationError for malformed input and *DispatchError when delivery fails.
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
