// Package parse reads the textual display syntax for boolean equations.
//
// The grammar, loosest to tightest binding:
//
//	equiv := impl [ ("<->" | "↔") equiv ]    right associative
//	impl  := xor [ ("->" | "→") impl ]       right associative
//	xor   := or { "xor" or }                 left associative, binary nodes
//	or    := and { "v" and }                 one flat Or node
//	and   := unary { "^" unary }             one flat And node
//	unary := "~" unary | atom
//	atom  := name [ "=" ("0"|"1"|"?") ] | "0" | "1" | "(" equiv ")"
//
// The word "v" is the or-operator and cannot name a variable in this
// syntax.  Occurrences of the same name within one Parse call share a
// single variable node, so binding one occurrence binds them all.
package parse
