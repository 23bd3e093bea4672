// Package mailer provides a provider-agnostic email model and sending interface.
//
// # Messages
//
// A Message is built once with NewMessage and never changes afterwards.
// Construction fails with *ValidationError when the sender address, every
// recipient or both bodies are missing:
//
//	msg, err := mailer.NewMessage(mailer.MessageParams{
//		From:    mailer.Address{Name: "Alice", Email: "alice@example.com"},
//		To:      []mailer.Address{{Name: "Bob", Email: "bob@example.com"}},
//		Subject: "Hi",
//		Text:    "Hello",
//	})
//
// # Senders
//
// Providers implement Sender. The SparkPost implementation lives in the
// sparkpost subpackage:
//
//	sender, err := sparkpost.New(sparkpost.Config{APIKey: os.Getenv("SPARKPOST_API_KEY")})
//	if err != nil {
//		return err
//	}
//	err = sender.Send(ctx, msg)
//
// Sends are synchronous and never retried. A failed delivery is returned as
// *DispatchError carrying the provider code and message; network failures use
// code 0. Callers decide whether to retry.
//
// # Templates
//
// Mailer renders markdown templates with YAML frontmatter into a layout and
// sends the result:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, welcome to our service!
//
// Subject resolution order is SendParams.Subject, then the frontmatter
// Subject, then Config.FallbackSubject. The subject is itself a text/template.
// The plain text part is the executed markdown; the HTML part is the markdown
// converted with GitHub Flavored Markdown and wrapped in the layout.
//
// # Logging
//
// The dispatch path does not log. Wrap a Sender with WithLogging to log each
// attempt under a generated dispatch id, and pass DispatchIDExtractor to
// logger.New so every log line written during the send carries that id.
//
// # Errors
//
//   - ErrNoSender, ErrNoRecipient, ErrInvalidRecipient, ErrNoContent: wrapped in *ValidationError
//   - *DispatchError: delivery failed
//   - ErrTemplateNotFound, ErrLayoutNotFound, ErrInvalidFrontmatter, ErrRenderFailed: rendering failed
//   - ErrSendFailed: joined with the Sender error by Mailer
package mailer
