// Package formpost builds and sends application/x-www-form-urlencoded
// submissions to a third-party form endpoint.
package formpost

import (
	"fmt"
	"net/url"
	"strings"
)

// Field is one key/value pair of a submission. Order is preserved on the wire.
type Field struct {
	Key   string
	Value string
}

// Escape percent-encodes s. Spaces become %20 rather than '+', matching what
// browser-side encodeURIComponent produces for the same form.
func Escape(s string) string {
	// QueryEscape turns a literal '+' into %2B, so every remaining '+' is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Encode joins fields as key=value pairs separated by '&'.
func Encode(fields []Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(f.Key))
		b.WriteByte('=')
		b.WriteString(Escape(f.Value))
	}
	return b.String()
}

// Decode parses a body produced by Encode back into ordered fields.
func Decode(body string) ([]Field, error) {
	if body == "" {
		return nil, nil
	}

	pairs := strings.Split(body, "&")
	fields := make([]Field, 0, len(pairs))
	for _, pair := range pairs {
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("decode key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("decode value for %q: %w", key, err)
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields, nil
}
