package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// OpError wraps an API failure with the IAM operation that produced it, so
// the scanner can tag permission issues with the failing call.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *OpError) Unwrap() error { return e.Err }

// ErrorCode returns the service error code (AccessDenied and friends) when
// the error came back from the API, otherwise the bare error text.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return err.Error()
}
