package generator

import "errors"

// Common generator errors
var (
	// ErrEmptyResponse indicates the model returned no usable candidates.
	ErrEmptyResponse = errors.New("the model returned an empty response")
)

// GenerationError represents a transient failure of the content-generation
// collaborator. The engine recovers from it locally; it is never surfaced to
// the caller of a run.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support for GenerationError.
// This allows errors.Is(err, &GenerationError{}) to work with wrapped errors.
func (e *GenerationError) Is(target error) bool {
	_, ok := target.(*GenerationError)
	return ok
}

// NewGenerationError creates a new generation error wrapping a cause.
func NewGenerationError(message string, err error) *GenerationError {
	return &GenerationError{Message: message, Err: err}
}
