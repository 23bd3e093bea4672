package sparkpost

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 1 << 20

// Transmission is the result of an accepted transmission request.
type Transmission struct {
	ID                 string `json:"id"`
	AcceptedRecipients int    `json:"total_accepted_recipients"`
	RejectedRecipients int    `json:"total_rejected_recipients"`
}

// Client talks to the SparkPost Transmissions API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
// The client is copied; Config.Timeout applies when its Timeout is zero.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		timeout := c.httpClient.Timeout
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = timeout
		}
		c.httpClient = &cp
	}
}

// NewClient creates a client authenticated with cfg.APIKey.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAPIKeyRequired
	}
	cfg = cfg.withDefaults()

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + transmissionsPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Transmit posts a transmission and blocks until the API answers.
// Returns *ProviderError for non-2xx responses and *TransportError when no
// response could be obtained.
func (c *Client) Transmit(ctx context.Context, p Payload) (*Transmission, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, newTransportError("encode payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newTransportError("create request", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError("send request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, newTransportError("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerError(resp.StatusCode, raw)
	}

	// The transmission id is informational; an unreadable success body is still a success.
	var envelope struct {
		Results Transmission `json:"results"`
	}
	_ = json.Unmarshal(raw, &envelope)
	return &envelope.Results, nil
}

func providerError(status int, body []byte) *ProviderError {
	pe := &ProviderError{
		StatusCode: status,
		Code:       status,
		Message:    http.StatusText(status),
	}

	var envelope apiErrors
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Errors) == 0 {
		return pe
	}

	first := envelope.Errors[0]
	if first.Code != 0 {
		pe.Code = int(first.Code)
	}
	if first.Message != "" {
		pe.Message = capitalize(first.Message)
	}
	pe.Description = first.Description
	return pe
}
