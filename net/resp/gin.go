package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	builderKey = "svcresp.builder"
	encodeKey  = "svcresp.encode"
)

// Middleware stores a fresh builder from f in every request context, along
// with f's encode options for Render.
func Middleware(f *Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(builderKey, f.New())
		c.Set(encodeKey, f.EncodeOptions())
		c.Next()
	}
}

// FromContext returns the request's builder, creating one if the middleware
// is not installed.
func FromContext(c *gin.Context) *Builder {
	if v, ok := c.Get(builderKey); ok {
		if b, ok := v.(*Builder); ok {
			return b
		}
	}
	b := New()
	c.Set(builderKey, b)
	return b
}

// Render materializes b as JSON on c. The factory options installed by
// Middleware apply first; opts override them.
func Render(c *gin.Context, b *Builder, opts ...EncodeOption) {
	if v, ok := c.Get(encodeKey); ok {
		if base, ok := v.([]EncodeOption); ok {
			opts = append(append([]EncodeOption(nil), base...), opts...)
		}
	}

	r := b.ToStructured()
	body, err := Encode(r, opts...)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(StatusCode(r), FormatJSON.ContentType(), body)
}

// BindAndValidate binds the request into obj and validates it. A binding
// failure turns b into a 400 error, a validation failure into a 422 error.
// It reports whether obj is usable.
func BindAndValidate(c *gin.Context, b *Builder, obj any, message string, lang ...string) (bool, error) {
	if err := c.ShouldBind(obj); err != nil {
		if _, berr := b.Error(http.StatusBadRequest, "invalid_request", err.Error(), nil); berr != nil {
			return false, berr
		}
		return false, nil
	}
	return b.Validate(obj, message, lang...)
}
