package opencart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/dadashzadeh/opencart-api/htmlcodec"
)

const (
	// routePrefix is the fixed OpenCart route segment every Product API
	// endpoint hangs off.
	routePrefix = "api/product_api/"

	// maxErrorBody bounds how much raw response text diagnostics carry.
	maxErrorBody = 500
)

// MaxPageSize is the largest page the server accepts for paginated listings.
const MaxPageSize = 100

// embeddedJSONPattern matches the trailing top-level JSON object or array in
// a body where PHP notices or warnings precede the payload.
var embeddedJSONPattern = regexp.MustCompile(`(?s)(\{.*\}|\[.*\])\s*$`)

// Client talks to the OpenCart Product API.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	decodeHTML bool
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Product API client. Construction performs no
// network I/O; use TestConnection to verify the server is reachable.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("opencart base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("opencart API key is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive")
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  options.userAgent,
		decodeHTML: options.decodeHTML,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// request performs one Product API call and normalizes the response. The
// route and api_key parameters are set last so caller-supplied params can
// never overwrite them. The API key travels both as a query parameter and as
// the X-API-KEY header; servers differ on which one they read.
func (c *Client) request(ctx context.Context, method, endpoint string, body any, params url.Values) (*Response, error) {
	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("route", routePrefix+endpoint)
	query.Set("api_key", c.apiKey)

	requestURL := c.baseURL + "/index.php?" + query.Encode()

	var payload io.Reader
	if method == http.MethodPost && body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("Making Product API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newHTTPError(resp.StatusCode, raw)
	}

	return c.parseEnvelope(endpoint, raw)
}

// newHTTPError extracts the server's error field when the failure body is
// JSON, falling back to the bounded raw text.
func newHTTPError(statusCode int, raw []byte) *HTTPError {
	var failure struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
		return &HTTPError{StatusCode: statusCode, Message: failure.Error}
	}
	return &HTTPError{StatusCode: statusCode, Message: truncate(string(raw), maxErrorBody)}
}

// parseEnvelope decodes a success-status body into a Response. Direct JSON
// parsing is tried first; only when it fails does the trailing-JSON recovery
// kick in, so well-formed responses never go through the heuristic.
func (c *Client) parseEnvelope(endpoint string, raw []byte) (*Response, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		recovered := false
		if match := embeddedJSONPattern.FindSubmatch(raw); match != nil {
			recovered = json.Unmarshal(match[1], &parsed) == nil
		}
		if !recovered {
			return nil, &InvalidResponseError{
				Reason: "body is not valid JSON",
				Body:   truncate(string(raw), maxErrorBody),
			}
		}
		c.logger.Debug().
			Str("endpoint", endpoint).
			Msg("Recovered JSON payload from noisy response body")
	}

	envelope, ok := parsed.(map[string]any)
	if !ok {
		return nil, &InvalidResponseError{
			Reason: "envelope is missing the 'success' field",
			Body:   truncate(string(raw), maxErrorBody),
		}
	}
	if _, ok := envelope["success"]; !ok {
		return nil, &InvalidResponseError{
			Reason: "envelope is missing the 'success' field",
			Body:   truncate(string(raw), maxErrorBody),
		}
	}

	response := newResponse(envelope)
	if response.Success && c.decodeHTML {
		if data, ok := envelope["data"]; ok {
			decoded := htmlcodec.DecodeValue(data)
			envelope["data"] = decoded
			response.Data = decoded
		}
	}
	return response, nil
}

// preparePayload optionally entity-escapes string fields of an outgoing
// record. The caller's map is never mutated.
func preparePayload(data map[string]any, encodeHTML bool) any {
	if data == nil {
		return nil
	}
	if !encodeHTML {
		return data
	}
	return htmlcodec.EncodeValue(data, false)
}

// truncate bounds s for inclusion in diagnostics, cutting at a rune boundary
// so a multibyte character is never split.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
