package resp

import (
	"github.com/goccy/go-json"
)

const defaultIndent = "    "

type encodeConfig struct {
	prefix     string
	indent     string
	escapeHTML bool
}

// EncodeOption tunes JSON output.
type EncodeOption func(*encodeConfig)

// Compact disables indentation.
func Compact() EncodeOption {
	return func(c *encodeConfig) {
		c.prefix, c.indent = "", ""
	}
}

// WithIndent sets the line prefix and indentation used for pretty output.
func WithIndent(prefix, indent string) EncodeOption {
	return func(c *encodeConfig) {
		c.prefix, c.indent = prefix, indent
	}
}

// EscapeHTML toggles escaping of <, > and & inside strings.
func EscapeHTML(on bool) EncodeOption {
	return func(c *encodeConfig) {
		c.escapeHTML = on
	}
}

func newEncodeConfig(opts ...EncodeOption) encodeConfig {
	c := encodeConfig{indent: defaultIndent, escapeHTML: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Encode serializes a snapshot to JSON text.
func Encode(r Response, opts ...EncodeOption) ([]byte, error) {
	cfg := newEncodeConfig(opts...)

	var encOpts []json.EncodeOptionFunc
	if !cfg.escapeHTML {
		encOpts = append(encOpts, json.DisableHTMLEscape())
	}

	if cfg.prefix == "" && cfg.indent == "" {
		return json.MarshalWithOption(r.body(), encOpts...)
	}
	return json.MarshalIndentWithOption(r.body(), cfg.prefix, cfg.indent, encOpts...)
}
