package ir

import (
	"fmt"

	"github.com/booleq/booleq/debug"
)

// SetState forces n to evaluate to target by binding descendant variable
// leaves.  When several operand choices would satisfy the constraint,
// operands are tried left to right and the first success wins; which
// variable ends up holding the forced value is part of the contract.
//
// SetState fails with an error wrapping ErrConstraint when no reachable
// leaf assignment achieves target.  Bindings applied before a failure are
// not rolled back.  If n already evaluates to target, SetState is a no-op.
func (n *Node) SetState(target bool) error {
	if v, err := n.State(); err == nil && v == target {
		return nil
	}
	if debug.Force() {
		debug.Logf("force %v on %s\n", target, n)
	}
	switch n.Type {
	case VarType:
		n.Bool, n.Known = target, true
		return nil
	case ConstType:
		// Equal targets returned above.
		return fmt.Errorf("%w: cannot change constant %s", ErrConstraint, n)
	case NotType:
		return n.Operands[0].SetState(!target)
	case AndType:
		if target {
			// All operands must hold.
			for _, op := range n.Operands {
				if err := op.SetState(true); err != nil {
					return err
				}
			}
			return nil
		}
		return forceAny(n, false)
	case OrType:
		if target {
			return forceAny(n, true)
		}
		for _, op := range n.Operands {
			if err := op.SetState(false); err != nil {
				return err
			}
		}
		return nil
	case XorType:
		return n.forceXor(target)
	case ImplType, EquivType:
		return n.backing.SetState(target)
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrInvalidOperand, n.Type)
	}
}

// forceAny forces the first operand that accepts target, scanning left to
// right.  One such operand suffices for And→false and Or→true.
func forceAny(n *Node, target bool) error {
	for _, op := range n.Operands {
		if err := op.SetState(target); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot make %s equal %v", ErrConstraint, n, target)
}

// forceXor tries, in order: forcing one operand relative to the other's
// known state, the same with roles swapped, and, when both operands are
// indeterminate, both explicit assignments of the first operand paired
// with whatever the second needs for target.
func (n *Node) forceXor(target bool) error {
	a, b := n.Operands[0], n.Operands[1]
	for _, pair := range [2][2]*Node{{a, b}, {b, a}} {
		op, other := pair[0], pair[1]
		v, err := other.State()
		if err != nil {
			continue
		}
		want := v
		if target {
			want = !v
		}
		if err := op.SetState(want); err == nil {
			return nil
		}
	}
	if Unknown(a) && Unknown(b) {
		for _, v := range [2]bool{false, true} {
			want := v
			if target {
				want = !v
			}
			if a.SetState(v) == nil && b.SetState(want) == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: cannot make %s equal %v", ErrConstraint, n, target)
}
