package ir

import (
	"fmt"
	"strings"
)

// Node is a propositional-logic expression.  The Type field selects the
// variant; State and SetState switch exhaustively over it.
type Node struct {
	Type Type

	// Name identifies a VarType leaf.  It never contains '"', ' ',
	// '\t' or '='.
	Name string

	// Bool holds a ConstType leaf's fixed value, or a VarType leaf's
	// current value when Known is true.  Known is always true for
	// constants.
	Bool  bool
	Known bool

	// Operands are the ordered, user-facing children.  Tree walks use
	// them uniformly across all connective variants.
	Operands []*Node

	// backing holds the owned composition a derived connective
	// (ImplType, EquivType) delegates its evaluation and propagation
	// to.  It shares the operand pointers in Operands.
	backing *Node
}

// Var returns an indeterminate variable leaf.
func Var(name string) (*Node, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &Node{Type: VarType, Name: name}, nil
}

// BoundVar returns a variable leaf already bound to v.
func BoundVar(name string, v bool) (*Node, error) {
	n, err := Var(name)
	if err != nil {
		return nil, err
	}
	n.Bool, n.Known = v, true
	return n, nil
}

// Const returns a constant leaf.  Its value never changes; forcing it to
// the opposite value fails with ErrConstraint.
func Const(v bool) *Node {
	return &Node{Type: ConstType, Bool: v, Known: true}
}

// Not returns the negation of op.
func Not(op any) (*Node, error) {
	n, err := AsNode(op)
	if err != nil {
		return nil, err
	}
	return negate(n), nil
}

// And returns the conjunction of one or more operands.
func And(ops ...any) (*Node, error) {
	operands, err := asNodes(AndType, 1, ops)
	if err != nil {
		return nil, err
	}
	return &Node{Type: AndType, Operands: operands}, nil
}

// Or returns the disjunction of one or more operands.
func Or(ops ...any) (*Node, error) {
	operands, err := asNodes(OrType, 1, ops)
	if err != nil {
		return nil, err
	}
	return &Node{Type: OrType, Operands: operands}, nil
}

// Xor returns the exclusive disjunction of exactly two operands.
func Xor(a, b any) (*Node, error) {
	operands, err := asNodes(XorType, 2, []any{a, b})
	if err != nil {
		return nil, err
	}
	return &Node{Type: XorType, Operands: operands}, nil
}

// Nand returns Not(And(ops...)).
func Nand(ops ...any) (*Node, error) {
	n, err := And(ops...)
	if err != nil {
		return nil, err
	}
	return negate(n), nil
}

// Nor returns Not(Or(ops...)).
func Nor(ops ...any) (*Node, error) {
	n, err := Or(ops...)
	if err != nil {
		return nil, err
	}
	return negate(n), nil
}

// Implies returns the implication a → b.  The node keeps a and b as its
// user-facing operands and delegates evaluation to an owned ~a v b.
func Implies(a, b any) (*Node, error) {
	an, err := AsNode(a)
	if err != nil {
		return nil, err
	}
	bn, err := AsNode(b)
	if err != nil {
		return nil, err
	}
	return implies(an, bn), nil
}

func implies(a, b *Node) *Node {
	return &Node{
		Type:     ImplType,
		Operands: []*Node{a, b},
		backing:  &Node{Type: OrType, Operands: []*Node{negate(a), b}},
	}
}

// Equiv returns the equivalence a ↔ b, delegating to an owned
// (a → b) ^ (b → a).
func Equiv(a, b any) (*Node, error) {
	an, err := AsNode(a)
	if err != nil {
		return nil, err
	}
	bn, err := AsNode(b)
	if err != nil {
		return nil, err
	}
	return &Node{
		Type:     EquivType,
		Operands: []*Node{an, bn},
		backing: &Node{
			Type:     AndType,
			Operands: []*Node{implies(an, bn), implies(bn, an)},
		},
	}, nil
}

// AsNode converts an operand to a *Node.  It is the single conversion
// point used by every constructor.  Accepted forms:
//
//   - *Node: returned as is, preserving aliasing.
//   - bool, int: wrapped as Const (nonzero is true).
//   - string: a variable name with optional leading '~' negations; each
//     pair cancels, an odd count yields Not(Var(name)).
//
// Anything else fails with ErrInvalidOperand.
func AsNode(v any) (*Node, error) {
	switch x := v.(type) {
	case *Node:
		if x == nil {
			return nil, fmt.Errorf("%w: nil node", ErrInvalidOperand)
		}
		return x, nil
	case bool:
		return Const(x), nil
	case int:
		return Const(x != 0), nil
	case string:
		name := strings.TrimLeft(x, "~")
		n, err := Var(name)
		if err != nil {
			return nil, err
		}
		if (len(x)-len(name))%2 == 1 {
			return negate(n), nil
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: cannot use %T as an operand", ErrInvalidOperand, v)
	}
}

func asNodes(t Type, arity int, ops []any) ([]*Node, error) {
	if t == XorType && len(ops) != arity {
		return nil, fmt.Errorf("%w: %s needs exactly %d operands, got %d",
			ErrInvalidOperand, t, arity, len(ops))
	}
	if len(ops) < arity {
		return nil, fmt.Errorf("%w: %s needs at least %d operand(s), got %d",
			ErrInvalidOperand, t, arity, len(ops))
	}
	operands := make([]*Node, 0, len(ops))
	for _, op := range ops {
		n, err := AsNode(op)
		if err != nil {
			return nil, err
		}
		operands = append(operands, n)
	}
	return operands, nil
}

func negate(op *Node) *Node {
	return &Node{Type: NotType, Operands: []*Node{op}}
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty variable name", ErrInvalidOperand)
	}
	if strings.ContainsAny(name, "\" \t=") {
		return fmt.Errorf("%w: variable name %q contains a delimiter character",
			ErrInvalidOperand, name)
	}
	return nil
}

// And combines n and m into one conjunction.  Same-kind operands are
// flattened: combining an And of two operands with a third value yields a
// single three-operand And.  Operand nodes are shared, never copied.
func (n *Node) And(m *Node) *Node {
	return combine(AndType, n, m)
}

// Or combines n and m into one disjunction, flattening same-kind operands
// as And does.
func (n *Node) Or(m *Node) *Node {
	return combine(OrType, n, m)
}

// Xor combines n and m into an exclusive disjunction.
func (n *Node) Xor(m *Node) *Node {
	return &Node{Type: XorType, Operands: []*Node{n, m}}
}

// Negate wraps n in a negation.
func (n *Node) Negate() *Node {
	return negate(n)
}

func combine(t Type, n, m *Node) *Node {
	var operands []*Node
	if n.Type == t {
		operands = append(operands, n.Operands...)
	} else {
		operands = append(operands, n)
	}
	if m.Type == t {
		operands = append(operands, m.Operands...)
	} else {
		operands = append(operands, m)
	}
	return &Node{Type: t, Operands: operands}
}
