// Package ir provides the node model for propositional-logic equations.
//
// An equation is a tree of *Node values.  Leaves are variables, which may
// be bound to a boolean or left indeterminate, and constants, which are
// fixed at construction.  Connectives (not, and, or, xor, implication,
// equivalence) combine subtrees.  Evaluation is three-valued: State
// returns a definite boolean or an error wrapping ErrIndeterminate when
// the bound leaves do not yet decide the outcome.  SetState pushes a
// desired outcome down to the variable leaves, or reports that no leaf
// assignment reaches it without contradicting a constant or an already
// fixed value.
//
// A single *Node may appear as an operand of several trees.  This aliasing
// means "the same logical variable": binding it through one tree is
// visible through every other.  Nodes are never copied during composition.
package ir
