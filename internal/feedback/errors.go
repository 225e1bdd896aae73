package feedback

import "errors"

var (
	ErrNotFound     = errors.New("feedback record not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnparsable means no field could be recovered from a model response.
	// It is distinct from the llm backend errors so callers can retry the
	// question without assuming the backend is down.
	ErrUnparsable = errors.New("unparsable model response")
)
