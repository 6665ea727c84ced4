package opencart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Client satisfies the full operation surface.
var _ API = (*Client)(nil)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		opts    []Option
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			baseURL: "http://localhost:8080",
			apiKey:  "test-key",
			wantErr: false,
		},
		{
			name:    "missing URL",
			baseURL: "",
			apiKey:  "test-key",
			wantErr: true,
			errMsg:  "base URL is required",
		},
		{
			name:    "missing API key",
			baseURL: "http://localhost:8080",
			apiKey:  "",
			wantErr: true,
			errMsg:  "API key is required",
		},
		{
			name:    "zero timeout",
			baseURL: "http://localhost:8080",
			apiKey:  "test-key",
			opts:    []Option{WithTimeout(0)},
			wantErr: true,
			errMsg:  "timeout must be positive",
		},
		{
			name:    "negative timeout",
			baseURL: "http://localhost:8080",
			apiKey:  "test-key",
			opts:    []Option{WithTimeout(-time.Second)},
			wantErr: true,
			errMsg:  "timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.apiKey, logger, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
			assert.Equal(t, defaultUserAgent, client.userAgent)
			assert.True(t, client.decodeHTML)
			assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
		})
	}

	t.Run("trailing slashes stripped", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080//", "test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.baseURL)
	})
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", "test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", "test-key", logger, WithUserAgent("inventory-sync/2.1"))
		require.NoError(t, err)
		assert.Equal(t, "inventory-sync/2.1", client.userAgent)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost:8080", "test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("without html decoding", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", "test-key", logger, WithoutHTMLDecoding())
		require.NoError(t, err)
		assert.False(t, client.decodeHTML)
	})
}

func TestRequestShape(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/index.php", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "api/product_api/searchProduct", query.Get("route"))
		assert.Equal(t, "test-key", query.Get("api_key"))
		assert.Equal(t, "laptop", query.Get("name"))
		assert.Equal(t, "0", query.Get("start"))
		assert.Equal(t, "20", query.Get("limit"))

		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"count":   2,
			"data":    []any{map[string]any{"name": "Laptop A"}, map[string]any{"name": "Laptop B"}},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", logger)
	require.NoError(t, err)

	resp, err := client.SearchProducts(context.Background(), "laptop", 0, 20)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.DataList(), 2)
	assert.Equal(t, "Laptop A", resp.DataList()[0]["name"])
}

func TestReservedParamsNotOverridable(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "api/product_api/getProduct", query.Get("route"))
		assert.Equal(t, "test-key", query.Get("api_key"))

		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", logger)
	require.NoError(t, err)

	params := url.Values{}
	params.Set("route", "admin/system/destroy")
	params.Set("api_key", "stolen-key")

	_, err = client.request(context.Background(), http.MethodGet, "getProduct", nil, params)
	require.NoError(t, err)
}

func TestValidationBeforeNetwork(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", logger)
	require.NoError(t, err)

	record := map[string]any{"name": "x"}

	tests := []struct {
		name   string
		call   func() (*Response, error)
		errMsg string
	}{
		{"search products oversized limit", func() (*Response, error) {
			return client.SearchProducts(ctx, "laptop", 0, 101)
		}, "limit cannot exceed 100 items"},
		{"get product zero ID", func() (*Response, error) {
			return client.GetProduct(ctx, 0)
		}, "invalid product ID: 0"},
		{"get product negative ID", func() (*Response, error) {
			return client.GetProduct(ctx, -5)
		}, "invalid product ID: -5"},
		{"update product zero ID", func() (*Response, error) {
			return client.UpdateProduct(ctx, 0, record, false)
		}, "invalid product ID: 0"},
		{"search attributes blank key", func() (*Response, error) {
			return client.SearchAttributesByKey(ctx, "   ")
		}, "search key cannot be empty"},
		{"search attributes blank value", func() (*Response, error) {
			return client.SearchAttributesByValue(ctx, "")
		}, "search value cannot be empty"},
		{"get attribute zero ID", func() (*Response, error) {
			return client.GetAttribute(ctx, 0)
		}, "invalid attribute ID: 0"},
		{"add attribute nil data", func() (*Response, error) {
			return client.AddAttribute(ctx, nil, false)
		}, "attribute data cannot be empty"},
		{"add attribute empty data", func() (*Response, error) {
			return client.AddAttribute(ctx, map[string]any{}, false)
		}, "attribute data cannot be empty"},
		{"update attribute zero ID", func() (*Response, error) {
			return client.UpdateAttribute(ctx, 0, record, false)
		}, "invalid attribute ID: 0"},
		{"update attribute empty data", func() (*Response, error) {
			return client.UpdateAttribute(ctx, 3, nil, false)
		}, "attribute data cannot be empty"},
		{"delete attribute zero ID", func() (*Response, error) {
			return client.DeleteAttribute(ctx, 0)
		}, "invalid attribute ID: 0"},
		{"get attribute group zero ID", func() (*Response, error) {
			return client.GetAttributeGroup(ctx, 0)
		}, "invalid attribute group ID: 0"},
		{"add attribute group empty data", func() (*Response, error) {
			return client.AddAttributeGroup(ctx, nil, false)
		}, "attribute group data cannot be empty"},
		{"update attribute group zero ID", func() (*Response, error) {
			return client.UpdateAttributeGroup(ctx, 0, record, false)
		}, "invalid attribute group ID: 0"},
		{"update attribute group empty data", func() (*Response, error) {
			return client.UpdateAttributeGroup(ctx, 7, map[string]any{}, false)
		}, "attribute group data cannot be empty"},
		{"delete attribute group negative ID", func() (*Response, error) {
			return client.DeleteAttributeGroup(ctx, -1)
		}, "invalid attribute group ID: -1"},
		{"get all categories oversized limit", func() (*Response, error) {
			return client.GetAllCategories(ctx, 0, 200)
		}, "limit cannot exceed 100 items"},
		{"search categories blank name", func() (*Response, error) {
			return client.SearchCategories(ctx, " ")
		}, "search name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.call()
			require.Error(t, err)
			assert.Nil(t, resp)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.errMsg, validationErr.Message)
		})
	}

	assert.Zero(t, requests, "validation failures must not reach the network")
}

func TestHTTPErrors(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("message from JSON error field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"error": "Product not found"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		resp, err := client.GetProduct(context.Background(), 99999)
		require.Error(t, err)
		assert.Nil(t, resp)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.Contains(t, err.Error(), "Product not found")
		assert.True(t, httpErr.IsNotFound())
		assert.False(t, httpErr.IsUnauthorized())
	})

	t.Run("raw body fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, "Fatal error: database gone")
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.GetDebugInfo(context.Background())
		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
		assert.Equal(t, "Fatal error: database gone", httpErr.Message)
	})

	t.Run("raw body truncated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, strings.Repeat("x", 2000))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.GetDebugInfo(context.Background())
		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Len(t, httpErr.Message, maxErrorBody)
	})

	t.Run("truncation lands on a rune boundary", func(t *testing.T) {
		// The 500-byte cut falls inside the first multibyte character.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, strings.Repeat("x", maxErrorBody-1)+"日本語")
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.GetDebugInfo(context.Background())
		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.True(t, utf8.ValidString(httpErr.Message))
		assert.Equal(t, strings.Repeat("x", maxErrorBody-1), httpErr.Message)
	})

	t.Run("unauthorized classifier", func(t *testing.T) {
		tests := []struct {
			code     int
			expected bool
		}{
			{401, true},
			{403, true},
			{404, false},
			{500, false},
		}

		for _, tt := range tests {
			err := &HTTPError{StatusCode: tt.code}
			assert.Equal(t, tt.expected, err.IsUnauthorized())
		}
	})

	t.Run("error format", func(t *testing.T) {
		err := &HTTPError{StatusCode: 404, Message: "Product not found"}
		assert.Equal(t, "API error (404): Product not found", err.Error())
	})
}

func TestHTMLDecoding(t *testing.T) {
	logger := zerolog.Nop()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": true, "data": {"name": "&lt;Test&gt;", "price": "99.90"}}`)
	})

	t.Run("enabled by default", func(t *testing.T) {
		server := httptest.NewServer(handler)
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		resp, err := client.GetProduct(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "<Test>", resp.DataMap()["name"])
		assert.Equal(t, "99.90", resp.DataMap()["price"])

		// Fields sees the same decoded payload.
		data, ok := resp.Field("data")
		require.True(t, ok)
		assert.Equal(t, "<Test>", data.(map[string]any)["name"])
	})

	t.Run("disabled by option", func(t *testing.T) {
		server := httptest.NewServer(handler)
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger, WithoutHTMLDecoding())
		require.NoError(t, err)

		resp, err := client.GetProduct(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "&lt;Test&gt;", resp.DataMap()["name"])
	})

	t.Run("failed envelopes left untouched", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success": false, "data": {"name": "&lt;Test&gt;"}, "error": "nope"}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		resp, err := client.GetProduct(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "&lt;Test&gt;", resp.DataMap()["name"])
	})
}

func TestNoisyBodyRecovery(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("diagnostic prefix", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "Notice: Undefined index: token in /var/www/html/index.php on line 42\n")
			io.WriteString(w, `{"success": true, "count": 0, "data": []}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		resp, err := client.SearchProducts(context.Background(), "ghost", 0, 20)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 0, resp.Count)
		assert.Equal(t, []any{}, resp.Data)
	})

	t.Run("trailing whitespace tolerated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "Warning: something\n{\"success\": true}\n\n  ")
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		resp, err := client.GetDebugInfo(context.Background())
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("never applied to well-formed bodies", func(t *testing.T) {
		// Valid JSON that is not an object fails envelope validation; it
		// must not be routed through the recovery heuristic.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `"just a string"`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.GetDebugInfo(context.Background())
		var invalidErr *InvalidResponseError
		require.ErrorAs(t, err, &invalidErr)
		assert.Contains(t, invalidErr.Reason, "success")
	})
}

func TestInvalidResponses(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name   string
		body   string
		reason string
	}{
		{"not json at all", "not json at all", "not valid JSON"},
		{"unrecoverable fragment", "Fatal error { unbalanced", "not valid JSON"},
		{"valid json array envelope", `[{"name": "x"}]`, "missing the 'success' field"},
		{"object without success", `{"data": []}`, "missing the 'success' field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client, err := NewClient(server.URL, "test-key", logger)
			require.NoError(t, err)

			resp, err := client.GetDebugInfo(context.Background())
			require.Error(t, err)
			assert.Nil(t, resp)

			var invalidErr *InvalidResponseError
			require.ErrorAs(t, err, &invalidErr)
			assert.Contains(t, invalidErr.Reason, tt.reason)
		})
	}

	t.Run("diagnostic body bounded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, strings.Repeat("garbage ", 200))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.GetDebugInfo(context.Background())
		var invalidErr *InvalidResponseError
		require.ErrorAs(t, err, &invalidErr)
		assert.Len(t, invalidErr.Body, maxErrorBody)
	})
}

func TestSuccessFlagForms(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		body    string
		success bool
	}{
		{"boolean true", `{"success": true}`, true},
		{"boolean false", `{"success": false}`, false},
		{"number one", `{"success": 1}`, true},
		{"number zero", `{"success": 0}`, false},
		{"string one", `{"success": "1"}`, true},
		{"empty string", `{"success": ""}`, false},
		{"null", `{"success": null}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client, err := NewClient(server.URL, "test-key", logger)
			require.NoError(t, err)

			resp, err := client.GetDebugInfo(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.success, resp.Success)
		})
	}
}

func TestSuccessFalseIsData(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": false, "error": "Missing required field: name"}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", logger)
	require.NoError(t, err)

	resp, err := client.AddAttribute(context.Background(), map[string]any{"sort_order": 1}, false)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required field: name", resp.Error)
}

func TestUpdateProductPayload(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("encoded when requested", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "api/product_api/updateProduct", r.URL.Query().Get("route"))
			assert.Equal(t, "42", r.URL.Query().Get("product_id"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "&lt;p&gt;Fast &amp; light&lt;/p&gt;", body["description"])
			assert.Equal(t, float64(2), body["status"])

			io.WriteString(w, `{"success": true, "message": "Product updated"}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		data := map[string]any{
			"description": "<p>Fast & light</p>",
			"status":      2,
		}
		resp, err := client.UpdateProduct(context.Background(), 42, data, true)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Product updated", resp.Message)

		// The caller's map must not be rewritten in place.
		assert.Equal(t, "<p>Fast & light</p>", data["description"])
	})

	t.Run("sent verbatim otherwise", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "<p>Fast & light</p>", body["description"])

			io.WriteString(w, `{"success": true}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.UpdateProduct(context.Background(), 42, map[string]any{"description": "<p>Fast & light</p>"}, false)
		require.NoError(t, err)
	})
}

func TestDeleteAttribute(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "api/product_api/deleteAttribute", r.URL.Query().Get("route"))
		assert.Equal(t, "7", r.URL.Query().Get("attribute_id"))

		io.WriteString(w, `{"success": true, "message": "Attribute deleted"}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", logger)
	require.NoError(t, err)

	resp, err := client.DeleteAttribute(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestSearchAttributeGroupsNameFilter(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("empty name omits the parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present := r.URL.Query()["name"]
			assert.False(t, present, "name must be absent, not empty")

			io.WriteString(w, `{"success": true, "data": []}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.SearchAttributeGroups(context.Background(), "")
		require.NoError(t, err)
	})

	t.Run("name passed through when set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Specifications", r.URL.Query().Get("name"))

			io.WriteString(w, `{"success": true, "data": []}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.SearchAttributeGroups(context.Background(), "Specifications")
		require.NoError(t, err)
	})
}

func TestTransportErrors(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		_, err = client.GetDebugInfo(context.Background())
		require.Error(t, err)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.NotNil(t, transportErr.Unwrap())
		assert.False(t, transportErr.Timeout())
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			io.WriteString(w, `{"success": true}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger, WithTimeout(20*time.Millisecond))
		require.NoError(t, err)

		_, err = client.GetDebugInfo(context.Background())
		require.Error(t, err)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.True(t, transportErr.Timeout())
	})
}

func TestTestConnection(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "api/product_api/debugInfo", r.URL.Query().Get("route"))
			io.WriteString(w, `{"success": true, "opencart_version": "3.0.3.8"}`)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)
		assert.NoError(t, client.TestConnection(context.Background()))
	})

	t.Run("bad key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"error": "Invalid API key"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", logger)
		require.NoError(t, err)

		err = client.TestConnection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to OpenCart")

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.True(t, httpErr.IsUnauthorized())
	})
}

func TestDebugInfoExtraFields(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": true, "opencart_version": "3.0.3.8", "detected_version": 3, "token_name": "user_token", "seo_table": "seo_url"}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", logger)
	require.NoError(t, err)

	resp, err := client.GetDebugInfo(context.Background())
	require.NoError(t, err)

	version, ok := resp.Field("opencart_version")
	require.True(t, ok)
	assert.Equal(t, "3.0.3.8", version)

	tokenName, ok := resp.Field("token_name")
	require.True(t, ok)
	assert.Equal(t, "user_token", tokenName)

	_, ok = resp.Field("missing_field")
	assert.False(t, ok)
}

func TestResponseHelpers(t *testing.T) {
	t.Run("DataMap", func(t *testing.T) {
		resp := &Response{Data: map[string]any{"name": "Laptop"}}
		assert.Equal(t, "Laptop", resp.DataMap()["name"])

		resp = &Response{Data: []any{"not", "a", "map"}}
		assert.Nil(t, resp.DataMap())

		resp = &Response{}
		assert.Nil(t, resp.DataMap())
	})

	t.Run("DataList", func(t *testing.T) {
		resp := &Response{Data: []any{
			map[string]any{"name": "A"},
			"stray string",
			map[string]any{"name": "B"},
		}}
		records := resp.DataList()
		require.Len(t, records, 2)
		assert.Equal(t, "A", records[0]["name"])
		assert.Equal(t, "B", records[1]["name"])

		resp = &Response{Data: map[string]any{"name": "A"}}
		assert.Nil(t, resp.DataList())
	})
}

func TestValidationErrorType(t *testing.T) {
	err := newValidationError("invalid product ID: %d", -3)
	assert.Equal(t, "invalid product ID: -3", err.Error())
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &TransportError{Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClose(t *testing.T) {
	client, err := NewClient("http://localhost:8080", "test-key", zerolog.Nop())
	require.NoError(t, err)
	client.Close()
}
