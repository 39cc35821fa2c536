package parse

import "errors"

var (
	// ErrParse wraps every syntax failure reported by Parse.
	ErrParse = errors.New("parse error")
)
