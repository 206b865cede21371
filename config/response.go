package config

import (
	"fmt"

	"github.com/ncobase/svcresp/ecode"
	"github.com/ncobase/svcresp/logging/logger"
	"github.com/ncobase/svcresp/net/resp"
	"github.com/spf13/viper"
)

// Response holds the response builder settings.
type Response struct {
	Pretty       bool
	EscapeHTML   bool
	Format       resp.Format
	SuccessCodes ecode.Table
	ErrorCodes   ecode.Table
}

func getResponseConfig(v *viper.Viper) (*Response, error) {
	format, err := resp.ParseFormat(v.GetString("response.format"))
	if err != nil {
		return nil, fmt.Errorf("response.format: %w", err)
	}

	success, err := getTableOrDefault(v, "response.success_codes", ecode.SuccessCodes())
	if err != nil {
		return nil, err
	}
	errs, err := getTableOrDefault(v, "response.error_codes", ecode.ErrorCodes())
	if err != nil {
		return nil, err
	}

	return &Response{
		Pretty:       getBoolOrDefault(v, "response.pretty", true),
		EscapeHTML:   getBoolOrDefault(v, "response.escape_html", true),
		Format:       format,
		SuccessCodes: success,
		ErrorCodes:   errs,
	}, nil
}

// EncodeOptions converts the settings into JSON encode options.
func (r *Response) EncodeOptions() []resp.EncodeOption {
	opts := []resp.EncodeOption{resp.EscapeHTML(r.EscapeHTML)}
	if !r.Pretty {
		opts = append(opts, resp.Compact())
	}
	return opts
}

// Factory builds a response factory from the settings. l may be nil.
func (r *Response) Factory(l *logger.Logger) *resp.Factory {
	opts := []resp.FactoryOption{
		resp.WithSuccessCodes(r.SuccessCodes),
		resp.WithErrorCodes(r.ErrorCodes),
		resp.WithEncodeOptions(r.EncodeOptions()...),
	}
	if l != nil {
		opts = append(opts, resp.WithLogger(l))
	}
	return resp.NewFactory(opts...)
}
