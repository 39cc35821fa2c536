package ir

import (
	"fmt"
	"iter"
)

// Variables yields every variable leaf reachable from root in pre-order,
// left to right.  The walk is iterative, so arbitrarily deep trees do not
// grow the call stack.  Duplicates are not removed: a leaf referenced
// from two places yields twice.  Derived connectives are walked through
// their user-facing operands; the backing tree shares the same leaves.
func Variables(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.Type == VarType {
				if !yield(n) {
					return
				}
				continue
			}
			for i := len(n.Operands) - 1; i >= 0; i-- {
				stack = append(stack, n.Operands[i])
			}
		}
	}
}

// VariableState scans every occurrence of name under root and returns
// their common state.  Zero occurrences fail with ErrNoVariable and
// disagreeing occurrences with ErrInconsistent; both are logic errors,
// distinct from the recoverable ErrIndeterminate reported when all
// occurrences are consistently unbound.
func VariableState(root *Node, name string) (bool, error) {
	v, known, err := variableState(root, name)
	if err != nil {
		return false, err
	}
	if !known {
		return false, fmt.Errorf("%w: variable %q is unbound", ErrIndeterminate, name)
	}
	return v, nil
}

// VariableStateOr is VariableState with consistently unbound occurrences
// reported as def instead of ErrIndeterminate.
func VariableStateOr(root *Node, name string, def bool) (bool, error) {
	v, known, err := variableState(root, name)
	if err != nil {
		return false, err
	}
	if !known {
		return def, nil
	}
	return v, nil
}

func variableState(root *Node, name string) (v, known bool, err error) {
	found := false
	for leaf := range Variables(root) {
		if leaf.Name != name {
			continue
		}
		if !found {
			found = true
			v, known = leaf.Bool, leaf.Known
			continue
		}
		if leaf.Known != known || (known && leaf.Bool != v) {
			return false, false, fmt.Errorf("%w: variable %q differs between occurrences",
				ErrInconsistent, name)
		}
	}
	if !found {
		return false, false, fmt.Errorf("%w: %q", ErrNoVariable, name)
	}
	return v, known, nil
}

// SetVariableState binds every occurrence of name under root to v by
// direct leaf mutation, bypassing connective-level constraint search.
// Callers use it for controlled experiments such as truth-table
// enumeration, not as the general solver entry point.
func SetVariableState(root *Node, name string, v bool) error {
	found := false
	for leaf := range Variables(root) {
		if leaf.Name != name {
			continue
		}
		leaf.Bool, leaf.Known = v, true
		found = true
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrNoVariable, name)
	}
	return nil
}
