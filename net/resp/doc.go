// Package resp builds standardized service responses.
//
// A Builder holds one in-progress response. It is turned into a success or
// an error with Success or Error, optionally decorated with SetNotify and
// SetExtra, and then consumed by ToStructured or ToJSON, which snapshot the
// state and reset the builder for the next cycle.
//
// # Response Structure
//
// Success:
//
//	{
//	    "code": 201,
//	    "title": "201 Created",
//	    "status": "success",
//	    "data": {"simple": "data"},
//	    "notify": {},
//	    "extra": {}
//	}
//
// Error:
//
//	{
//	    "code": 422,
//	    "title": "422 Unprocessable Entity",
//	    "status": "error",
//	    "data": {},
//	    "type": "validation_errors",
//	    "message": "Please correct highlighted errors below.",
//	    "validation_errors": {"validation": "messages"},
//	    "notify": {"status": "error", "message": "Record not added due to error."},
//	    "extra": {"something": "extra"}
//	}
//
// # Usage
//
//	b := resp.New()
//	if _, err := b.Error(422, "validation_errors", "Please correct highlighted errors below.", errs); err != nil {
//	    return err
//	}
//	b.SetExtra(map[string]any{"something": "extra"})
//	body, err := b.ToJSON(resp.Compact())
//
// # Concurrency
//
// Builders are plain mutable values. Use one per request: resp.New, a
// Factory, or the gin Middleware all hand out fresh instances. Sharing one
// builder between concurrent requests leaks fields between responses.
//
// # Delivery
//
// Write and Send emit a snapshot to an http.ResponseWriter as JSON, XML or
// text, using the response code as HTTP status. Render does the same for gin.
//
// # Errors
//
// Every rejected input returns an *InvalidArgumentError matching
// ErrInvalidArgument. A rejected call never modifies the builder.
package resp
