package sparkpost

import "time"

const (
	// BaseURLUS is the production endpoint for sparkpost.com accounts.
	BaseURLUS = "https://api.sparkpost.com"
	// BaseURLEU is the production endpoint for sparkpost.eu accounts.
	BaseURLEU = "https://api.eu.sparkpost.com"

	defaultTimeout = 30 * time.Second

	transmissionsPath = "/api/v1/transmissions"
)

// Config holds SparkPost provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string        `env:"SPARKPOST_API_KEY,required,notEmpty"`
	BaseURL string        `env:"SPARKPOST_BASE_URL" envDefault:"https://api.sparkpost.com"`
	Timeout time.Duration `env:"SPARKPOST_TIMEOUT" envDefault:"30s"`
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = BaseURLUS
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}
