package logger

import (
	"strings"

	"github.com/ncobase/svcresp/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// maxDepth bounds recursion into nested payloads.
const maxDepth = 10

// Masker hides sensitive values in response payloads before they are logged.
type Masker struct {
	config *config.Desensitization
}

// NewMasker creates a masker. A nil config disables masking.
func NewMasker(cfg *config.Desensitization) *Masker {
	if cfg == nil {
		cfg = &config.Desensitization{}
	}
	return &Masker{config: cfg}
}

// MaskFields processes log fields and masks sensitive data.
func (m *Masker) MaskFields(fields logrus.Fields) logrus.Fields {
	if !m.config.Enabled {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		result[key] = m.maskValue(key, value, 0)
	}
	return result
}

// Mask masks a standalone payload.
func (m *Masker) Mask(data map[string]any) map[string]any {
	if !m.config.Enabled || data == nil {
		return data
	}
	return m.maskMap(data, 0)
}

func (m *Masker) maskValue(key string, value any, depth int) any {
	if depth > maxDepth || value == nil {
		return value
	}
	if m.isSensitiveField(key) {
		return m.maskScalar(value)
	}

	switch v := value.(type) {
	case map[string]any:
		return m.maskMap(v, depth+1)
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return m.maskMap(out, depth+1)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = m.maskValue("", item, depth+1)
		}
		return out
	}
	return value
}

func (m *Masker) maskMap(in map[string]any, depth int) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = m.maskValue(k, v, depth)
	}
	return out
}

func (m *Masker) isSensitiveField(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, field := range m.config.SensitiveFields {
		field = strings.ToLower(field)
		if m.config.ExactFieldMatch {
			if lower == field {
				return true
			}
			continue
		}
		if strings.Contains(lower, field) {
			return true
		}
	}
	return false
}

func (m *Masker) maskScalar(value any) any {
	s, ok := value.(string)
	if !ok {
		return strings.Repeat(m.maskChar(), m.fixedLength())
	}
	return m.maskString(s)
}

func (m *Masker) maskString(s string) string {
	if m.config.UseFixedLength {
		return strings.Repeat(m.maskChar(), m.fixedLength())
	}

	runes := []rune(s)
	prefix, suffix := m.config.PreservePrefix, m.config.PreserveSuffix
	if prefix+suffix >= len(runes) {
		return strings.Repeat(m.maskChar(), len(runes))
	}
	masked := strings.Repeat(m.maskChar(), len(runes)-prefix-suffix)
	return string(runes[:prefix]) + masked + string(runes[len(runes)-suffix:])
}

func (m *Masker) maskChar() string {
	if m.config.MaskChar == "" {
		return "*"
	}
	return m.config.MaskChar
}

func (m *Masker) fixedLength() int {
	if m.config.FixedMaskLength <= 0 {
		return 6
	}
	return m.config.FixedMaskLength
}
