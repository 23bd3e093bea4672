package sparkpost

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrAPIKeyRequired is returned when a client is created without an API key.
var ErrAPIKeyRequired = errors.New("sparkpost: api key is required")

// ProviderError is an error reported by the SparkPost API.
type ProviderError struct {
	StatusCode  int    // HTTP status of the response
	Code        int    // SparkPost error code, or StatusCode when the body has none
	Message     string // First letter capitalized
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("sparkpost: api error %d: %s (%s)", e.Code, e.Message, e.Description)
	}
	return fmt.Sprintf("sparkpost: api error %d: %s", e.Code, e.Message)
}

// TransportError is a network-level failure: the request never produced an
// HTTP response (timeout, DNS, TLS, connection refused) or the response body
// could not be read.
type TransportError struct {
	Description string
	Err         error
}

func (e *TransportError) Error() string {
	return "sparkpost: transport error: " + e.Description
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was caused by a deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

func newTransportError(op string, err error) *TransportError {
	return &TransportError{Description: op + ": " + err.Error(), Err: err}
}

// apiErrors is the error envelope of a failed API call.
type apiErrors struct {
	Errors []struct {
		Code        errorCode `json:"code"`
		Message     string    `json:"message"`
		Description string    `json:"description"`
	} `json:"errors"`
}

// errorCode accepts codes sent either as JSON numbers or numeric strings.
type errorCode int

func (c *errorCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		// Non-numeric codes are left at zero.
		return nil
	}
	*c = errorCode(n)
	return nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
