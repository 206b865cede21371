package logger

import (
	"testing"

	"github.com/ncobase/svcresp/logging/logger/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMaskerFixedLength(t *testing.T) {
	m := NewMasker(config.DefaultDesensitization())

	out := m.Mask(map[string]any{
		"username": "alice",
		"password": "hunter2",
		"profile": map[string]any{
			"api_key": "abcdef",
			"city":    "Oslo",
		},
	})

	assert.Equal(t, "alice", out["username"])
	assert.Equal(t, "******", out["password"])
	profile := out["profile"].(map[string]any)
	assert.Equal(t, "******", profile["api_key"])
	assert.Equal(t, "Oslo", profile["city"])
}

func TestMaskerPreserve(t *testing.T) {
	m := NewMasker(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"token"},
		PreservePrefix:  2,
		PreserveSuffix:  2,
		MaskChar:        "#",
	})

	out := m.Mask(map[string]any{"access_token": "abcdefgh", "short": "x"})
	assert.Equal(t, "ab####gh", out["access_token"])
	assert.Equal(t, "x", out["short"])
}

func TestMaskerExactMatch(t *testing.T) {
	m := NewMasker(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"pwd"},
		ExactFieldMatch: true,
		UseFixedLength:  true,
	})

	out := m.Mask(map[string]any{"pwd": "x", "pwd_hint": "y"})
	assert.Equal(t, "******", out["pwd"])
	assert.Equal(t, "y", out["pwd_hint"])
}

func TestMaskerDisabled(t *testing.T) {
	m := NewMasker(&config.Desensitization{Enabled: false, SensitiveFields: []string{"password"}})
	fields := logrus.Fields{"password": "p"}
	assert.Equal(t, fields, m.MaskFields(fields))
}

func TestMaskFieldsNested(t *testing.T) {
	m := NewMasker(config.DefaultDesensitization())
	out := m.MaskFields(logrus.Fields{
		"data": map[string]any{"items": []any{map[string]any{"secret": 42}}},
	})

	items := out["data"].(map[string]any)["items"].([]any)
	assert.Equal(t, "******", items[0].(map[string]any)["secret"])
}
