package ir

import "errors"

var (
	// ErrIndeterminate signals that an equation's value cannot be
	// determined from the currently bound leaves.
	ErrIndeterminate = errors.New("indeterminate state")

	// ErrConstraint signals that a requested SetState target cannot be
	// reached without contradicting a constant or a fixed value.
	ErrConstraint = errors.New("constraint unsatisfiable")

	// ErrInvalidOperand signals a malformed operand count, type or
	// variable name at construction time.
	ErrInvalidOperand = errors.New("invalid operand")

	ErrNoVariable   = errors.New("no such variable")
	ErrInconsistent = errors.New("inconsistent variable state")
	ErrTransform    = errors.New("untransformable node")
)
