package json

import "errors"

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("invalid escape")
)
