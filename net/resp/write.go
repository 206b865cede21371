package resp

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
)

// Format selects the wire encoding used by Write.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatText Format = "text"
)

// ParseFormat parses a format name, case-insensitively. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXML:
		return FormatXML, nil
	case FormatText:
		return FormatText, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// ContentType returns the Content-Type header value for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXML:
		return "application/xml; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// StatusCode returns the HTTP status to send for r. An empty snapshot maps to
// 500 since no outcome was ever decided.
func StatusCode(r Response) int {
	if r.IsEmpty() || r.Code == 0 {
		return http.StatusInternalServerError
	}
	return r.Code
}

// Marshal encodes r in the given format.
func Marshal(r Response, format Format, opts ...EncodeOption) ([]byte, error) {
	switch format {
	case FormatXML:
		cfg := newEncodeConfig(opts...)
		if cfg.prefix == "" && cfg.indent == "" {
			return xml.Marshal(r)
		}
		return xml.MarshalIndent(r, cfg.prefix, cfg.indent)
	case FormatText:
		return []byte(r.String()), nil
	case FormatJSON, "":
		return Encode(r, opts...)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// Write writes r to w in the given format.
func Write(w http.ResponseWriter, r Response, format Format, opts ...EncodeOption) error {
	body, err := Marshal(r, format, opts...)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return fmt.Errorf("encode %s response: %w", format, err)
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(StatusCode(r))
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// Send materializes b and writes the snapshot to w.
func Send(w http.ResponseWriter, b *Builder, format Format, opts ...EncodeOption) error {
	return Write(w, b.ToStructured(), format, opts...)
}
