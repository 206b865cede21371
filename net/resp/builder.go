package resp

import (
	"strings"

	"github.com/ncobase/svcresp/ecode"
	"github.com/ncobase/svcresp/validation/validator"
)

// Status discriminates which field set of a response is valid.
type Status string

const (
	StatusNone    Status = ""
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Notification statuses accepted by SetNotify.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

var notifyStatuses = []string{NotifySuccess, NotifyError, NotifyWarning, NotifyInfo}

// outcome is the success or error variant of an in-progress response.
// A nil outcome is the empty state.
type outcome interface {
	status() Status
}

type successOutcome struct {
	code  int
	title string
	data  map[string]any
}

func (successOutcome) status() Status { return StatusSuccess }

type failureOutcome struct {
	code             int
	title            string
	typ              string
	message          string
	validationErrors map[string]any
}

func (failureOutcome) status() Status { return StatusError }

type state struct {
	outcome outcome
	notify  Notify
	extra   map[string]any
}

// Builder accumulates one response at a time.
//
// A Builder is not safe for concurrent use. Create one per request, either
// with New or through a Factory; never share an instance between goroutines
// serving different requests.
type Builder struct {
	successCodes ecode.Table
	errorCodes   ecode.Table
	st           state

	onMaterialize func(Response)
}

// New returns an empty builder using the default code catalogs.
func New() *Builder {
	return &Builder{
		successCodes: ecode.SuccessCodes(),
		errorCodes:   ecode.ErrorCodes(),
	}
}

// SetAllowedSuccessCodes replaces the success catalog.
func (b *Builder) SetAllowedSuccessCodes(codes ecode.Table) {
	b.successCodes = codes.Clone()
}

// SetAllowedErrorCodes replaces the error catalog.
func (b *Builder) SetAllowedErrorCodes(codes ecode.Table) {
	b.errorCodes = codes.Clone()
}

// AllowedSuccessCodes returns a copy of the active success catalog.
func (b *Builder) AllowedSuccessCodes() ecode.Table {
	return b.successCodes.Clone()
}

// AllowedErrorCodes returns a copy of the active error catalog.
func (b *Builder) AllowedErrorCodes() ecode.Table {
	return b.errorCodes.Clone()
}

// Success turns the builder into a success response.
// On failure the builder is returned unchanged along with the error.
func (b *Builder) Success(code int, data map[string]any) (*Builder, error) {
	title, ok := b.successCodes.Title(code)
	if !ok {
		return b, invalid("success", "invalid success code, it must be: %s", b.successCodes)
	}

	b.st.outcome = successOutcome{
		code:  code,
		title: title,
		data:  orEmpty(data),
	}
	return b, nil
}

// Error turns the builder into an error response. typ and message are
// trimmed; data is always empty in error mode.
func (b *Builder) Error(code int, typ, message string, validationErrors map[string]any) (*Builder, error) {
	typ = strings.TrimSpace(typ)
	message = strings.TrimSpace(message)

	title, ok := b.errorCodes.Title(code)
	if !ok {
		return b, invalid("error", "invalid error code, it must be: %s", b.errorCodes)
	}

	b.st.outcome = failureOutcome{
		code:             code,
		title:            title,
		typ:              typ,
		message:          message,
		validationErrors: orEmpty(validationErrors),
	}
	return b, nil
}

// SetNotify attaches a UI notification. It is independent of the
// success/error state.
func (b *Builder) SetNotify(status, message string) (*Builder, error) {
	status = strings.TrimSpace(status)
	message = strings.TrimSpace(message)

	if !validator.OneOf(status, notifyStatuses...) {
		return b, invalid("setNotify", "status must be: %s", strings.Join(notifyStatuses, ", "))
	}
	if !validator.Required(message) {
		return b, invalid("setNotify", "message cannot be empty")
	}

	b.st.notify = Notify{Status: status, Message: message}
	return b, nil
}

// SetExtra attaches free-form supplemental data, replacing any previous extra.
func (b *Builder) SetExtra(extra map[string]any) *Builder {
	b.st.extra = orEmpty(extra)
	return b
}

// Validate runs struct validation on s. When s is invalid the builder is
// turned into a 422 error carrying the field messages and false is returned.
func (b *Builder) Validate(s any, message string, lang ...string) (bool, error) {
	errs := validator.ValidateStruct(s, lang...)
	if len(errs) == 0 {
		return true, nil
	}

	fields := make(map[string]any, len(errs))
	for k, v := range errs {
		fields[k] = v
	}
	if _, err := b.Error(422, "validation_errors", message, fields); err != nil {
		return false, err
	}
	return false, nil
}

// Code returns the status code, or 0 when no outcome is set.
func (b *Builder) Code() int {
	switch o := b.st.outcome.(type) {
	case successOutcome:
		return o.code
	case failureOutcome:
		return o.code
	}
	return 0
}

// Title returns the title bound to the code.
func (b *Builder) Title() string {
	switch o := b.st.outcome.(type) {
	case successOutcome:
		return o.title
	case failureOutcome:
		return o.title
	}
	return ""
}

// Status returns the current status; StatusNone when empty.
func (b *Builder) Status() Status {
	if b.st.outcome == nil {
		return StatusNone
	}
	return b.st.outcome.status()
}

// Data returns the success payload. It is empty in error mode.
func (b *Builder) Data() map[string]any {
	if o, ok := b.st.outcome.(successOutcome); ok {
		return o.data
	}
	return map[string]any{}
}

// Type returns the error category.
func (b *Builder) Type() string {
	if o, ok := b.st.outcome.(failureOutcome); ok {
		return o.typ
	}
	return ""
}

// Message returns the error description.
func (b *Builder) Message() string {
	if o, ok := b.st.outcome.(failureOutcome); ok {
		return o.message
	}
	return ""
}

// ValidationErrors returns the field level validation detail.
func (b *Builder) ValidationErrors() map[string]any {
	if o, ok := b.st.outcome.(failureOutcome); ok {
		return o.validationErrors
	}
	return map[string]any{}
}

// Notify returns the notification; the zero Notify when none is set.
func (b *Builder) Notify() Notify {
	return b.st.notify
}

// Extra returns the supplemental data.
func (b *Builder) Extra() map[string]any {
	return orEmpty(b.st.extra)
}

// ToStructured snapshots the response and resets the builder to empty.
// It is consume-once: a second call returns an empty Response.
func (b *Builder) ToStructured() Response {
	r := b.snapshot()
	b.st = state{}

	if b.onMaterialize != nil {
		b.onMaterialize(r)
	}
	return r
}

// ToJSON materializes the response as JSON. Output is indented unless
// Compact is given.
func (b *Builder) ToJSON(opts ...EncodeOption) ([]byte, error) {
	return Encode(b.ToStructured(), opts...)
}

func (b *Builder) snapshot() Response {
	r := Response{
		Status: b.Status(),
		Notify: b.st.notify,
		Extra:  cloneMap(b.st.extra),
	}

	switch o := b.st.outcome.(type) {
	case successOutcome:
		r.Code, r.Title = o.code, o.title
		r.Data = cloneMap(o.data)
	case failureOutcome:
		r.Code, r.Title = o.code, o.title
		r.Data = map[string]any{}
		r.Type, r.Message = o.typ, o.message
		r.ValidationErrors = cloneMap(o.validationErrors)
	default:
		return Response{}
	}
	return r
}

// clone copies the builder, tables and state alike.
func (b *Builder) clone() *Builder {
	c := *b
	return &c
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func cloneMap(m map[string]any) map[string]any {
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
