package ir

import "fmt"

// DeMorgan rewrites the And or Or found under n's (possibly repeated)
// negations: And(ops) becomes ~(Or of negated ops) and Or(ops) becomes
// ~(And of negated ops).  Operand nodes are shared into the rewritten
// tree, not copied.
//
// When an odd number of negations was peeled, the rewrite replaces the
// outermost negation's operand slot in place and n itself is returned;
// the intermediate negations peeled along the way cancel pairwise.  When
// no negation (or an even number) was peeled, the rewritten node is
// returned as the new root and the caller decides which slot to put it
// in.  Either way the result has the same truth table as n.
//
// DeMorgan fails with ErrTransform when the innermost non-negation node
// is neither And nor Or.
func DeMorgan(n *Node) (*Node, error) {
	var outer *Node
	peeled := 0
	inner := n
	for inner.Type == NotType {
		if outer == nil {
			outer = inner
		}
		peeled++
		inner = inner.Operands[0]
	}

	var dual Type
	switch inner.Type {
	case AndType:
		dual = OrType
	case OrType:
		dual = AndType
	default:
		return nil, fmt.Errorf("%w: %s has no De Morgan dual", ErrTransform, inner.Type)
	}
	negated := make([]*Node, len(inner.Operands))
	for i, op := range inner.Operands {
		negated[i] = negate(op)
	}
	rewritten := negate(&Node{Type: dual, Operands: negated})

	if peeled%2 == 1 {
		outer.Operands[0] = rewritten
		return n, nil
	}
	return rewritten, nil
}
