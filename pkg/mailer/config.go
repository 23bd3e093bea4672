package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FromEmail       string `env:"MAILER_FROM_EMAIL"`
	FromName        string `env:"MAILER_FROM_NAME"`
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
}

// DefaultSender returns the configured sender address.
func (c Config) DefaultSender() Address {
	return Address{Name: c.FromName, Email: c.FromEmail}
}
