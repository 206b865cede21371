package resp

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Directive is a loosely typed response description, as read from JSON or
// YAML. Apply enforces the strict typing the typed Builder API gets for free:
// numeric strings are not codes and booleans are not strings.
//
//	status: error
//	code: 422
//	type: validation_errors
//	message: Please correct highlighted errors below.
//	validation_errors: {email: required}
//	notify: {status: error, message: Record not added due to error.}
//	extra: {something: extra}
type Directive map[string]any

// DecodeJSONDirective reads a JSON object. Numbers are kept exact so that
// 200.5 is not silently truncated into a code.
func DecodeJSONDirective(r io.Reader) (Directive, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var d Directive
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode json directive: %w", err)
	}
	return d, nil
}

// DecodeYAMLDirective parses a YAML mapping.
func DecodeYAMLDirective(data []byte) (Directive, error) {
	var d Directive
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode yaml directive: %w", err)
	}
	return d, nil
}

// Apply validates the directive and applies it to b. Either every part is
// applied or b is left untouched.
func (d Directive) Apply(b *Builder) error {
	scratch := b.clone()

	status, ok := d["status"].(string)
	if !ok {
		return invalid("apply", "status must be string")
	}

	switch Status(status) {
	case StatusSuccess:
		code, err := asCode(d["code"])
		if err != nil {
			return invalid("success", "%v", err)
		}
		data, err := asMap("data", d["data"])
		if err != nil {
			return invalid("success", "%v", err)
		}
		if _, err := scratch.Success(code, data); err != nil {
			return err
		}
	case StatusError:
		code, err := asCode(d["code"])
		if err != nil {
			return invalid("error", "%v", err)
		}
		typ, err := asString("type", d["type"])
		if err != nil {
			return invalid("error", "%v", err)
		}
		message, err := asString("message", d["message"])
		if err != nil {
			return invalid("error", "%v", err)
		}
		ve, err := asMap("validation_errors", d["validation_errors"])
		if err != nil {
			return invalid("error", "%v", err)
		}
		if _, err := scratch.Error(code, typ, message, ve); err != nil {
			return err
		}
	default:
		return invalid("apply", "status must be: %s, %s", StatusSuccess, StatusError)
	}

	if raw, ok := d["notify"]; ok && raw != nil {
		n, err := asMap("notify", raw)
		if err != nil {
			return invalid("setNotify", "%v", err)
		}
		ns, ok := n["status"].(string)
		if !ok {
			return invalid("setNotify", "status must be string")
		}
		nm, ok := n["message"].(string)
		if !ok {
			return invalid("setNotify", "message must be string")
		}
		if _, err := scratch.SetNotify(ns, nm); err != nil {
			return err
		}
	}

	if raw, ok := d["extra"]; ok {
		extra, err := asMap("extra", raw)
		if err != nil {
			return invalid("setExtra", "%v", err)
		}
		scratch.SetExtra(extra)
	}

	b.st = scratch.st
	return nil
}

// Build applies the directive to a fresh builder from f.
func (f *Factory) Build(d Directive) (*Builder, error) {
	b := f.New()
	if err := d.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

func asCode(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n), nil
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return asCode(i)
		}
	}
	return 0, fmt.Errorf("code must be integer")
}

// asString accepts a missing value as "".
func asString(name string, v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be string", name)
	}
	return s, nil
}

// asMap accepts a missing value as an empty map.
func asMap(name string, v any) (map[string]any, error) {
	switch m := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	case Directive:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s must be a mapping", name)
}
