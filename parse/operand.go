package parse

import (
	"fmt"

	"github.com/booleq/booleq/ir"
)

// Operand reads the prefix-negation shorthand: zero or more leading '~'
// followed by a variable name.  Tilde pairs cancel, so "~~~a" is ~a.
func Operand(s string) (*ir.Node, error) {
	n, err := ir.AsNode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return n, nil
}
