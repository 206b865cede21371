package resp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectiveYAMLError(t *testing.T) {
	d, err := DecodeYAMLDirective([]byte(`
status: error
code: 422
type: " validation_errors "
message: Please correct highlighted errors below.
validation_errors:
  validation: messages
notify:
  status: error
  message: Record not added due to error.
extra:
  something: extra
`))
	require.NoError(t, err)

	b := New()
	require.NoError(t, d.Apply(b))

	assert.Equal(t, map[string]any{
		"code":              422,
		"title":             "422 Unprocessable Entity",
		"status":            "error",
		"data":              map[string]any{},
		"type":              "validation_errors",
		"message":           "Please correct highlighted errors below.",
		"validation_errors": map[string]any{"validation": "messages"},
		"notify":            map[string]any{"status": "error", "message": "Record not added due to error."},
		"extra":             map[string]any{"something": "extra"},
	}, b.ToStructured().Map())
}

func TestDirectiveJSONSuccess(t *testing.T) {
	d, err := DecodeJSONDirective(strings.NewReader(`{"status":"success","code":201,"data":{"simple":"data"}}`))
	require.NoError(t, err)

	b := New()
	require.NoError(t, d.Apply(b))
	assert.Equal(t, 201, b.Code())
	assert.Equal(t, map[string]any{"simple": "data"}, b.Data())
}

func TestDirectiveStrictTypes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		op     string
		reason string
	}{
		{"string code", `{"status":"success","code":"200"}`, "success", "code must be integer"},
		{"empty code", `{"status":"success","code":""}`, "success", "code must be integer"},
		{"missing code", `{"status":"error"}`, "error", "code must be integer"},
		{"fractional code", `{"status":"success","code":200.5}`, "success", "code must be integer"},
		{"bool type", `{"status":"error","code":400,"type":true}`, "error", "type must be string"},
		{"bool message", `{"status":"error","code":400,"type":"valid_type","message":true}`, "error", "message must be string"},
		{"list data", `{"status":"success","code":200,"data":[1]}`, "success", "data must be a mapping"},
		{"numeric notify status", `{"status":"success","code":200,"notify":{"status":1,"message":"m"}}`, "setNotify", "status must be string"},
		{"numeric notify message", `{"status":"success","code":200,"notify":{"status":"info","message":1}}`, "setNotify", "message must be string"},
		{"empty notify message", `{"status":"success","code":200,"notify":{"status":"error","message":""}}`, "setNotify", "message cannot be empty"},
		{"scalar extra", `{"status":"success","code":200,"extra":"x"}`, "setExtra", "extra must be a mapping"},
		{"unknown status", `{"status":"maybe","code":200}`, "apply", "status must be: success, error"},
		{"missing status", `{"code":200}`, "apply", "status must be string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecodeJSONDirective(strings.NewReader(tt.input))
			require.NoError(t, err)

			b := New()
			err = d.Apply(b)

			var iae *InvalidArgumentError
			require.ErrorAs(t, err, &iae)
			assert.Equal(t, tt.op, iae.Op)
			assert.Equal(t, tt.reason, iae.Reason)
		})
	}
}

func TestDirectiveYAMLQuotedCode(t *testing.T) {
	d, err := DecodeYAMLDirective([]byte("status: success\ncode: \"200\"\n"))
	require.NoError(t, err)

	err = d.Apply(New())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, "code must be integer")
}

func TestDirectiveYAMLBoolType(t *testing.T) {
	d, err := DecodeYAMLDirective([]byte("status: error\ncode: 400\ntype: true\n"))
	require.NoError(t, err)

	assert.ErrorContains(t, d.Apply(New()), "type must be string")
}

func TestDirectiveApplyIsAtomic(t *testing.T) {
	b, err := New().Success(200, map[string]any{"keep": true})
	require.NoError(t, err)

	d := Directive{
		"status": "error",
		"code":   404,
		"notify": map[string]any{"status": "error", "message": " "},
	}
	require.Error(t, d.Apply(b))

	assert.Equal(t, StatusSuccess, b.Status())
	assert.Equal(t, map[string]any{"keep": true}, b.Data())
	assert.True(t, b.Notify().IsZero())
}

func TestDirectiveUsesBuilderTables(t *testing.T) {
	f := NewFactory(WithSuccessCodes(map[int]string{299: "299 Custom"}))

	b, err := f.Build(Directive{"status": "success", "code": 299})
	require.NoError(t, err)
	assert.Equal(t, "299 Custom", b.Title())

	_, err = f.Build(Directive{"status": "success", "code": 200})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecodeDirectiveErrors(t *testing.T) {
	_, err := DecodeJSONDirective(strings.NewReader(`[1,2]`))
	assert.Error(t, err)

	_, err = DecodeYAMLDirective([]byte("- a\n- b\n"))
	assert.Error(t, err)
}
