package table

import "errors"

var (
	errInternal = errors.New("internal table error")

	// ErrVarMismatch signals that the statements do not range over one
	// shared variable set.
	ErrVarMismatch = errors.New("statements do not share a variable set")
)
