package researches

import "errors"

var (
	ErrNotFound     = errors.New("research not found")
	ErrInvalidInput = errors.New("invalid input")
)
