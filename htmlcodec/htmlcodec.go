// Package htmlcodec converts HTML character references in Product API
// payloads.
//
// OpenCart stores rich-text fields HTML-escaped and emits them the same way,
// so read responses carry text like "&lt;p&gt;Hello&lt;/p&gt;" while write
// endpoints expect the escaped form back. This package provides the two
// directions as pure string operations plus deep variants that walk decoded
// JSON structures without mutating them.
package htmlcodec

import (
	"html"
	"strings"
)

var (
	basicEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	quoteEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
	)
)

// Decode replaces HTML character references in s with their literal
// characters. Both named and numeric references are expanded.
func Decode(s string) string {
	return html.UnescapeString(s)
}

// Encode escapes '&', '<' and '>' in s. With quotes set, double and single
// quotation marks are escaped as well.
func Encode(s string, quotes bool) string {
	if quotes {
		return quoteEscaper.Replace(s)
	}
	return basicEscaper.Replace(s)
}

// DecodeValue returns a copy of v with every string leaf decoded, descending
// through nested objects and lists. Non-string leaves are carried over
// unchanged and the input is never mutated.
func DecodeValue(v any) any {
	return walk(v, Decode)
}

// EncodeValue mirrors DecodeValue for the encoding direction.
func EncodeValue(v any, quotes bool) any {
	return walk(v, func(s string) string { return Encode(s, quotes) })
}

// walk rebuilds the map/list/scalar structure of v, applying transform to
// every string leaf. Values of types other than map[string]any, []any and
// string pass through as-is.
func walk(v any, transform func(string) string) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			out[key] = walk(item, transform)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = walk(item, transform)
		}
		return out
	case string:
		return transform(value)
	default:
		return v
	}
}
