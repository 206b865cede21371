package resp

import (
	"github.com/ncobase/svcresp/ecode"
	"github.com/ncobase/svcresp/logging/logger"
	"github.com/sirupsen/logrus"
)

// Factory hands out fresh builders sharing one configuration.
// It is safe for concurrent use; the builders it returns are not.
type Factory struct {
	successCodes ecode.Table
	errorCodes   ecode.Table
	encode       []EncodeOption
	logger       *logger.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithSuccessCodes sets the success catalog given to every builder.
func WithSuccessCodes(codes ecode.Table) FactoryOption {
	return func(f *Factory) {
		f.successCodes = codes.Clone()
	}
}

// WithErrorCodes sets the error catalog given to every builder.
func WithErrorCodes(codes ecode.Table) FactoryOption {
	return func(f *Factory) {
		f.errorCodes = codes.Clone()
	}
}

// WithEncodeOptions sets the default JSON options. Middleware hands them to
// Render; other callers pass EncodeOptions explicitly.
func WithEncodeOptions(opts ...EncodeOption) FactoryOption {
	return func(f *Factory) {
		f.encode = opts
	}
}

// WithLogger makes builders log each materialized response at debug level,
// with sensitive payload keys masked.
func WithLogger(l *logger.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = l
	}
}

// NewFactory creates a factory using the default catalogs unless overridden.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		successCodes: ecode.SuccessCodes(),
		errorCodes:   ecode.ErrorCodes(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New returns a fresh, empty builder.
func (f *Factory) New() *Builder {
	b := &Builder{
		successCodes: f.successCodes.Clone(),
		errorCodes:   f.errorCodes.Clone(),
	}
	if f.logger != nil {
		b.onMaterialize = f.logResponse
	}
	return b
}

// EncodeOptions returns a copy of the configured JSON options.
func (f *Factory) EncodeOptions() []EncodeOption {
	return append([]EncodeOption(nil), f.encode...)
}

func (f *Factory) logResponse(r Response) {
	if !f.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	if r.IsEmpty() {
		f.logger.Debug("empty response materialized")
		return
	}

	fields := logrus.Fields{
		"code":   r.Code,
		"status": r.Status,
		"data":   r.Data,
		"extra":  r.Extra,
	}
	if r.Status == StatusError {
		fields["type"] = r.Type
		fields["validation_errors"] = r.ValidationErrors
	}
	f.logger.WithFields(f.logger.MaskFields(fields)).Debug(r.Title)
}
