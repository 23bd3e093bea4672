// Package sparkpost delivers mailer messages through the SparkPost Transmissions API.
//
// Translate maps a mailer.Message onto the transmission schema, Client posts it,
// and Sender ties both together behind mailer.Sender:
//
//	sender, err := sparkpost.New(sparkpost.Config{
//		APIKey:  os.Getenv("SPARKPOST_API_KEY"),
//		BaseURL: sparkpost.BaseURLEU,
//		Timeout: 10 * time.Second,
//	})
//
// Non-2xx responses become *ProviderError (first entry of the "errors" array,
// message capitalized). Failures without an HTTP response become
// *TransportError. Sender converts both into *mailer.DispatchError; errors.As
// still reaches the underlying error.
package sparkpost
