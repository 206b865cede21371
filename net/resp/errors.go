package resp

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every validation failure returned from a Builder.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes a rejected builder input.
type InvalidArgumentError struct {
	Op     string // builder operation, e.g. "success"
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("resp.%s: %s", e.Op, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(op, format string, args ...any) error {
	return &InvalidArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
