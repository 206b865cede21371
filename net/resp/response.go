package resp

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// Notify is a transient UI notification. The zero value means no notification.
type Notify struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// IsZero reports whether no notification is set.
func (n Notify) IsZero() bool {
	return n.Status == "" && n.Message == ""
}

type plainNotify struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MarshalJSON encodes an absent notification as an empty object.
func (n Notify) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.body())
}

func (n Notify) body() any {
	if n.IsZero() {
		return struct{}{}
	}
	return plainNotify(n)
}

func (n Notify) toMap() map[string]any {
	if n.IsZero() {
		return map[string]any{}
	}
	return map[string]any{"status": n.Status, "message": n.Message}
}

// Response is the immutable snapshot produced by Builder.ToStructured.
type Response struct {
	Code             int
	Title            string
	Status           Status
	Data             map[string]any
	Type             string
	Message          string
	ValidationErrors map[string]any
	Notify           Notify
	Extra            map[string]any
}

// IsEmpty reports whether the snapshot was taken from an empty builder.
func (r Response) IsEmpty() bool {
	return r.Status == StatusNone
}

// successBody and errorBody fix the key order of the encoded shapes.
type successBody struct {
	Code   int            `json:"code"`
	Title  string         `json:"title"`
	Status Status         `json:"status"`
	Data   map[string]any `json:"data"`
	Notify any            `json:"notify"`
	Extra  map[string]any `json:"extra"`
}

type errorBody struct {
	Code             int            `json:"code"`
	Title            string         `json:"title"`
	Status           Status         `json:"status"`
	Data             map[string]any `json:"data"`
	Type             string         `json:"type"`
	Message          string         `json:"message"`
	ValidationErrors map[string]any `json:"validation_errors"`
	Notify           any            `json:"notify"`
	Extra            map[string]any `json:"extra"`
}

// MarshalJSON encodes the success shape, the error shape, or {} when empty.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.body())
}

func (r Response) body() any {
	switch r.Status {
	case StatusSuccess:
		return successBody{
			Code:   r.Code,
			Title:  r.Title,
			Status: r.Status,
			Data:   orEmpty(r.Data),
			Notify: r.Notify.body(),
			Extra:  orEmpty(r.Extra),
		}
	case StatusError:
		return errorBody{
			Code:             r.Code,
			Title:            r.Title,
			Status:           r.Status,
			Data:             map[string]any{},
			Type:             r.Type,
			Message:          r.Message,
			ValidationErrors: orEmpty(r.ValidationErrors),
			Notify:           r.Notify.body(),
			Extra:            orEmpty(r.Extra),
		}
	}
	return struct{}{}
}

// keys lists the keys of the shape in encoding order.
func (r Response) keys() []string {
	switch r.Status {
	case StatusSuccess:
		return []string{"code", "title", "status", "data", "notify", "extra"}
	case StatusError:
		return []string{"code", "title", "status", "data", "type", "message", "validation_errors", "notify", "extra"}
	}
	return nil
}

// Map returns the structured shape as a generic map.
func (r Response) Map() map[string]any {
	m := make(map[string]any)
	for _, k := range r.keys() {
		m[k] = r.value(k)
	}
	return m
}

func (r Response) value(key string) any {
	switch key {
	case "code":
		return r.Code
	case "title":
		return r.Title
	case "status":
		return string(r.Status)
	case "data":
		if r.Status == StatusError {
			return map[string]any{}
		}
		return orEmpty(r.Data)
	case "type":
		return r.Type
	case "message":
		return r.Message
	case "validation_errors":
		return orEmpty(r.ValidationErrors)
	case "notify":
		return r.Notify.toMap()
	case "extra":
		return orEmpty(r.Extra)
	}
	return nil
}

// String renders a one line summary, used for plain text output.
func (r Response) String() string {
	switch r.Status {
	case StatusSuccess:
		return r.Title
	case StatusError:
		var parts []string
		parts = append(parts, r.Title)
		if r.Type != "" {
			parts = append(parts, r.Type)
		}
		if r.Message != "" {
			parts = append(parts, r.Message)
		}
		return strings.Join(parts, ": ")
	}
	return ""
}

// MarshalXML encodes the response as a <response> element with one child per key.
// Nested maps become nested elements with keys in sorted order.
func (r Response) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "response"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, k := range r.keys() {
		if err := encodeXMLValue(e, k, r.value(k)); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func encodeXMLValue(e *xml.Encoder, name string, v any) error {
	el := xml.StartElement{Name: xml.Name{Local: xmlName(name)}}

	switch val := v.(type) {
	case nil:
		return e.EncodeElement("", el)
	case map[string]any:
		if err := e.EncodeToken(el); err != nil {
			return err
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := encodeXMLValue(e, k, val[k]); err != nil {
				return err
			}
		}
		return e.EncodeToken(el.End())
	case []any:
		if err := e.EncodeToken(el); err != nil {
			return err
		}
		for _, item := range val {
			if err := encodeXMLValue(e, "item", item); err != nil {
				return err
			}
		}
		return e.EncodeToken(el.End())
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return encodeXMLValue(e, name, items)
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return encodeXMLValue(e, name, m)
	}
	return e.EncodeElement(fmt.Sprint(v), el)
}

// xmlName turns an arbitrary map key into a valid element name.
func xmlName(key string) string {
	if key == "" {
		return "_"
	}
	var sb strings.Builder
	for i, c := range key {
		switch {
		case unicode.IsLetter(c) || c == '_':
			sb.WriteRune(c)
		case i > 0 && (unicode.IsDigit(c) || c == '-' || c == '.'):
			sb.WriteRune(c)
		case i == 0 && unicode.IsDigit(c):
			sb.WriteRune('_')
			sb.WriteRune(c)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
