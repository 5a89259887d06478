package vision

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("image is empty")
	ErrMissingAPIKey = errors.New("annotation service API key is not configured")
)

// UpstreamError reports a failed call to the annotation service. StatusCode
// is zero when no response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("annotation service returned %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("annotation service call failed: %v", e.Err)
	default:
		return "annotation service call failed: " + e.Message
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
