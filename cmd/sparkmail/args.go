package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"github.com/dmitrymomot/sparkmail/pkg/mailer"
)

// addressList collects repeated -to flags.
type addressList []mailer.Address

func (l *addressList) String() string {
	parts := make([]string, len(*l))
	for i, a := range *l {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

func (l *addressList) Set(v string) error {
	addrs, err := mail.ParseAddressList(v)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", v, err)
	}
	for _, a := range addrs {
		*l = append(*l, mailer.Address{Name: a.Name, Email: a.Address})
	}
	return nil
}

// parseArgs builds message params from command line flags.
// A missing -text is derived from the HTML body.
func parseArgs(args []string, from mailer.Address, output io.Writer) (mailer.MessageParams, error) {
	fs := flag.NewFlagSet("sparkmail", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		to       addressList
		subject  = fs.String("subject", "", "subject line")
		text     = fs.String("text", "", "plain text body")
		html     = fs.String("html", "", "HTML body")
		htmlFile = fs.String("html-file", "", "read the HTML body from a file")
	)
	fs.StringVar(&from.Email, "from", from.Email, "sender email (default $MAILER_FROM_EMAIL)")
	fs.StringVar(&from.Name, "from-name", from.Name, "sender display name (default $MAILER_FROM_NAME)")
	fs.Var(&to, "to", "recipient, `Name <email>` or bare email; repeatable")

	if err := fs.Parse(args); err != nil {
		return mailer.MessageParams{}, err
	}
	if fs.NArg() > 0 {
		return mailer.MessageParams{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	body := *html
	if *htmlFile != "" {
		if body != "" {
			return mailer.MessageParams{}, errors.New("-html and -html-file are mutually exclusive")
		}
		raw, err := os.ReadFile(*htmlFile)
		if err != nil {
			return mailer.MessageParams{}, fmt.Errorf("read html file: %w", err)
		}
		body = string(raw)
	}

	plain := *text
	if plain == "" && body != "" {
		plain = mailer.PlainText(body)
	}

	return mailer.MessageParams{
		From:    from,
		To:      to,
		Subject: *subject,
		Text:    plain,
		HTML:    body,
	}, nil
}
