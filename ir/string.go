package ir

import (
	"fmt"
	"strings"
)

// String renders n in the human display form: '^' for and, 'v' for or,
// 'xor', '~' prefix for not, '→' for implication and '↔' for equivalence.
// Variables render as name=?, name=0 or name=1.  A negated sub-expression
// renders bare (~x) when the operand form delimits itself, and ~(x) only
// when grouping is needed.
func (n *Node) String() string {
	switch n.Type {
	case VarType:
		if !n.Known {
			return n.Name + "=?"
		}
		return n.Name + "=" + bit(n.Bool)
	case ConstType:
		return bit(n.Bool)
	case NotType:
		op := n.Operands[0]
		s := op.String()
		if op.Type.IsLeaf() || strings.HasPrefix(s, "(") || strings.HasPrefix(s, "~") {
			return "~" + s
		}
		return "~(" + s + ")"
	case AndType:
		return "(" + joinOperands(n.Operands, " ^ ") + ")"
	case OrType:
		return "(" + joinOperands(n.Operands, " v ") + ")"
	case XorType:
		return "(" + joinOperands(n.Operands, " xor ") + ")"
	case ImplType:
		return "(" + n.Operands[0].String() + " → " + n.Operands[1].String() + ")"
	case EquivType:
		return "(" + n.Operands[0].String() + " ↔ " + n.Operands[1].String() + ")"
	default:
		return "<unknown node>"
	}
}

// GoString renders n in the canonical fully-parenthesized constructor
// form, e.g. And(BoundVar("a", true), Const(false)).  It is used by %#v.
func (n *Node) GoString() string {
	switch n.Type {
	case VarType:
		if !n.Known {
			return fmt.Sprintf("Var(%q)", n.Name)
		}
		return fmt.Sprintf("BoundVar(%q, %v)", n.Name, n.Bool)
	case ConstType:
		return fmt.Sprintf("Const(%v)", n.Bool)
	case NotType:
		return "Not(" + n.Operands[0].GoString() + ")"
	case AndType, OrType, XorType:
		args := make([]string, len(n.Operands))
		for i, op := range n.Operands {
			args[i] = op.GoString()
		}
		return n.Type.String() + "(" + strings.Join(args, ", ") + ")"
	case ImplType:
		return "Implies(" + n.Operands[0].GoString() + ", " + n.Operands[1].GoString() + ")"
	case EquivType:
		return "Equiv(" + n.Operands[0].GoString() + ", " + n.Operands[1].GoString() + ")"
	default:
		return "<unknown node>"
	}
}

func joinOperands(ops []*Node, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, sep)
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
