package opencart

import (
	"net/http"
	"time"
)

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

const defaultUserAgent = "OpenCartAPI-Go-Client/1.0"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	decodeHTML bool
	httpClient *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:    DefaultTimeout,
		userAgent:  defaultUserAgent,
		decodeHTML: true,
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient supplies a pre-built HTTP client, for callers that need a
// custom transport or proxy. The client is used as given; WithTimeout has no
// effect on it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithoutHTMLDecoding turns off the automatic entity decoding applied to the
// data payload of successful responses.
func WithoutHTMLDecoding() Option {
	return func(o *clientOptions) {
		o.decodeHTML = false
	}
}
