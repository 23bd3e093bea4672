package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSender indicates the sender address is empty.
	ErrNoSender = errors.New("email must have a sender address")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrInvalidRecipient indicates a recipient without an email address.
	ErrInvalidRecipient = errors.New("recipient must have an email address")

	// ErrNoContent indicates neither a text nor an HTML body was provided.
	ErrNoContent = errors.New("email must have a text or HTML body")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)

// ValidationError reports a malformed Message.
// It is returned before any network activity and is never worth retrying.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid message: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DispatchError is the single error kind a Sender returns when delivery fails.
// Code and Message come verbatim from the provider; transport failures use code 0.
// Err holds the provider or transport error for errors.As.
type DispatchError struct {
	Code    int
	Message string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("email dispatch error %d: %s", e.Code, e.Message)
}

func (e *DispatchError) Unwrap() error { return e.Err }
