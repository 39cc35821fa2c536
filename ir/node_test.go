package ir

import (
	"errors"
	"testing"
)

func TestAsNode(t *testing.T) {
	type asNodeTest struct {
		name string
		in   any
		want string // display form; "" expects ErrInvalidOperand
	}
	ats := []asNodeTest{
		{name: "bool true", in: true, want: "1"},
		{name: "bool false", in: false, want: "0"},
		{name: "int nonzero", in: 3, want: "1"},
		{name: "int zero", in: 0, want: "0"},
		{name: "bare name", in: "a", want: "a=?"},
		{name: "one tilde", in: "~a", want: "~a=?"},
		{name: "two tildes cancel", in: "~~a", want: "a=?"},
		{name: "three tildes", in: "~~~a", want: "~a=?"},
		{name: "tildes only", in: "~~"},
		{name: "name with space", in: "a b"},
		{name: "name with equals", in: "a=b"},
		{name: "unsupported type", in: 1.5},
		{name: "nil node", in: (*Node)(nil)},
	}
	for _, at := range ats {
		t.Run(at.name, func(t *testing.T) {
			n, err := AsNode(at.in)
			if at.want == "" {
				if !errors.Is(err, ErrInvalidOperand) {
					t.Fatalf("got (%v, %v), want ErrInvalidOperand", n, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AsNode: %v", err)
			}
			if got := n.String(); got != at.want {
				t.Errorf("got %s, want %s", got, at.want)
			}
		})
	}
}

func TestAsNodePreservesAliasing(t *testing.T) {
	a := mustNode(t)(Var("a"))
	n, err := AsNode(a)
	if err != nil {
		t.Fatalf("AsNode: %v", err)
	}
	if n != a {
		t.Errorf("AsNode copied the node")
	}
}

func TestOperandCounts(t *testing.T) {
	if _, err := And(); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("And() = %v, want ErrInvalidOperand", err)
	}
	if _, err := Or(); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("Or() = %v, want ErrInvalidOperand", err)
	}
	if _, err := And("a"); err != nil {
		t.Errorf("And(a): %v", err)
	}
	if _, err := Xor("a", 1.5); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("Xor with bad operand = %v, want ErrInvalidOperand", err)
	}
}

func TestVarNames(t *testing.T) {
	bad := []string{"", `a"b`, "a b", "a\tb", "a=b"}
	for _, name := range bad {
		if _, err := Var(name); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("Var(%q) = %v, want ErrInvalidOperand", name, err)
		}
	}
	if _, err := Var("long_name42"); err != nil {
		t.Errorf("Var(long_name42): %v", err)
	}
}

func TestCombineFlattens(t *testing.T) {
	a := mustNode(t)(Var("a"))
	b := mustNode(t)(Var("b"))
	c := mustNode(t)(Var("c"))

	ab := a.And(b)
	abc := ab.And(c)
	if abc.Type != AndType || len(abc.Operands) != 3 {
		t.Fatalf("got %#v, want a flat three-operand And", abc)
	}
	// Flattening shares the operand nodes.
	if abc.Operands[0] != a || abc.Operands[2] != c {
		t.Errorf("flattening copied operands")
	}

	both := ab.And(b.And(c))
	if len(both.Operands) != 4 {
		t.Errorf("got %d operands, want both sides flattened into 4", len(both.Operands))
	}

	or := a.Or(b).Or(c)
	if or.Type != OrType || len(or.Operands) != 3 {
		t.Fatalf("got %#v, want a flat three-operand Or", or)
	}
}

func TestCombineKeepsDifferentKindsNested(t *testing.T) {
	a := mustNode(t)(Var("a"))
	b := mustNode(t)(Var("b"))
	c := mustNode(t)(Var("c"))

	n := a.Or(b).And(c)
	if n.Type != AndType || len(n.Operands) != 2 {
		t.Fatalf("got %#v, want And(Or(a, b), c)", n)
	}
	if n.Operands[0].Type != OrType {
		t.Errorf("flattened across connective kinds: %#v", n)
	}

	x := a.Xor(b)
	if x.Type != XorType || len(x.Operands) != 2 {
		t.Errorf("got %#v, want Xor(a, b)", x)
	}
	neg := x.Negate()
	if neg.Type != NotType || neg.Operands[0] != x {
		t.Errorf("got %#v, want Not sharing x", neg)
	}
}

func TestDerivedConnectivesShareOperands(t *testing.T) {
	a := mustNode(t)(Var("a"))
	b := mustNode(t)(Var("b"))
	n := mustNode(t)(Implies(a, b))
	if len(n.Operands) != 2 || n.Operands[0] != a || n.Operands[1] != b {
		t.Fatalf("user-facing operands are not the original a, b")
	}
	// The backing tree must see bindings applied to the originals.
	a.Bool, a.Known = false, true
	if v, err := n.State(); err != nil || !v {
		t.Errorf("State = (%v, %v), want (true, nil) with a=0", v, err)
	}
}
