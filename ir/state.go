package ir

import (
	"errors"
	"fmt"
)

// State evaluates n under three-valued logic.  It returns the definite
// value of the expression, or an error wrapping ErrIndeterminate when the
// currently bound leaves do not decide it.  State never mutates the tree.
//
// And returns false on the first false operand even when other operands
// are indeterminate, and Or returns true symmetrically: an indeterminate
// operand never overrides a proven outcome.
func (n *Node) State() (bool, error) {
	switch n.Type {
	case VarType:
		if !n.Known {
			return false, fmt.Errorf("%w: variable %q is unbound", ErrIndeterminate, n.Name)
		}
		return n.Bool, nil
	case ConstType:
		return n.Bool, nil
	case NotType:
		v, err := n.Operands[0].State()
		if err != nil {
			return false, err
		}
		return !v, nil
	case AndType:
		trueCount, unknownCount := 0, 0
		for _, op := range n.Operands {
			v, err := op.State()
			switch {
			case err != nil:
				unknownCount++
			case !v:
				return false, nil
			default:
				trueCount++
			}
		}
		// Every operand was either true or unknown here; a false one
		// returned above.
		if trueCount == len(n.Operands) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %s", ErrIndeterminate, n)
	case OrType:
		unknownCount := 0
		for _, op := range n.Operands {
			v, err := op.State()
			switch {
			case err != nil:
				unknownCount++
			case v:
				return true, nil
			}
		}
		// No operand was true; the rest are proven false unless one
		// was unknown.
		if unknownCount > 0 {
			return false, fmt.Errorf("%w: %s", ErrIndeterminate, n)
		}
		return false, nil
	case XorType:
		a, err := n.Operands[0].State()
		if err != nil {
			return false, err
		}
		b, err := n.Operands[1].State()
		if err != nil {
			return false, err
		}
		return a != b, nil
	case ImplType, EquivType:
		return n.backing.State()
	default:
		return false, fmt.Errorf("%w: unknown node type %d", ErrInvalidOperand, n.Type)
	}
}

// Truth coerces n to a boolean, propagating State's failure.
func Truth(n *Node) (bool, error) {
	return n.State()
}

// Unknown reports whether n's state is indeterminate.
func Unknown(n *Node) bool {
	_, err := n.State()
	return errors.Is(err, ErrIndeterminate)
}
