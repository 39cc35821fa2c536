package ir

import (
	"errors"
	"testing"
)

func TestForcePostCondition(t *testing.T) {
	nodes := []*Node{
		mustNode(t)(And("a", "b", "c")),
		mustNode(t)(Or("a", false, "b")),
		mustNode(t)(Xor("x", "y")),
		mustNode(t)(Implies("a", "b")),
		mustNode(t)(Equiv("a", "b")),
		mustNode(t)(Nand("a", "b")),
		mustNode(t)(Nor("a", "b")),
	}
	for _, n := range nodes {
		for _, target := range []bool{true, false} {
			if err := n.SetState(target); err != nil {
				t.Fatalf("%s: SetState(%v): %v", n, target, err)
			}
			v, err := n.State()
			if err != nil {
				t.Fatalf("%s: State after SetState(%v): %v", n, target, err)
			}
			if v != target {
				t.Errorf("%s: State = %v after SetState(%v)", n, v, target)
			}
		}
	}
}

func TestForceConst(t *testing.T) {
	for _, v := range []bool{true, false} {
		c := Const(v)
		if err := c.SetState(v); err != nil {
			t.Errorf("Const(%v).SetState(%v): %v, want no-op success", v, v, err)
		}
		if err := c.SetState(!v); !errors.Is(err, ErrConstraint) {
			t.Errorf("Const(%v).SetState(%v): %v, want ErrConstraint", v, !v, err)
		}
	}
}

func TestForceAndFalseLeftmost(t *testing.T) {
	a := mustNode(t)(BoundVar("a", true))
	b := mustNode(t)(BoundVar("b", true))
	n := mustNode(t)(And(a, b))
	if v, err := n.State(); err != nil || !v {
		t.Fatalf("State = (%v, %v), want (true, nil)", v, err)
	}
	if err := n.SetState(false); err != nil {
		t.Fatalf("SetState(false): %v", err)
	}
	if a.Bool || !a.Known {
		t.Errorf("a = %s, want a=0", a)
	}
	if !b.Bool || !b.Known {
		t.Errorf("b = %s, want b untouched at 1", b)
	}
}

func TestForceAndFalseSkipsConstants(t *testing.T) {
	p := mustNode(t)(Var("p"))
	n := mustNode(t)(And(true, p))
	if err := n.SetState(false); err != nil {
		t.Fatalf("SetState(false): %v", err)
	}
	if p.Bool || !p.Known {
		t.Errorf("p = %s, want p=0", p)
	}
}

func TestForceAndTrueForcesAll(t *testing.T) {
	a := mustNode(t)(Var("a"))
	b := mustNode(t)(Var("b"))
	n := mustNode(t)(And(a, b))
	if err := n.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if !a.Bool || !b.Bool {
		t.Errorf("a, b = %s, %s, want both 1", a, b)
	}
	// An unsatisfiable operand propagates.
	m := mustNode(t)(And("x", false))
	if err := m.SetState(true); !errors.Is(err, ErrConstraint) {
		t.Errorf("SetState(true) = %v, want ErrConstraint", err)
	}
}

func TestForceOr(t *testing.T) {
	p := mustNode(t)(Var("p"))
	n := mustNode(t)(Or(Const(false), p))

	if _, err := n.State(); !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("State = %v, want ErrIndeterminate", err)
	}
	if err := n.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if !p.Bool || !p.Known {
		t.Fatalf("p = %s, want p=1", p)
	}
	// Or→false forces every operand false; the false constant is
	// already satisfied, p flips.
	if err := n.SetState(false); err != nil {
		t.Fatalf("SetState(false): %v", err)
	}
	if p.Bool {
		t.Errorf("p = %s, want p=0", p)
	}

	m := mustNode(t)(Or(true, "q"))
	if err := m.SetState(false); !errors.Is(err, ErrConstraint) {
		t.Errorf("SetState(false) = %v, want ErrConstraint", err)
	}
}

func TestForceOrTrueScansPastConstants(t *testing.T) {
	// The first operand refuses true; the scan must go on to q.
	q := mustNode(t)(Var("q"))
	n := mustNode(t)(Or(Const(false), q))
	if err := n.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if !q.Bool || !q.Known {
		t.Errorf("q = %s, want q=1", q)
	}
}

func TestForceXorBothUnknown(t *testing.T) {
	for _, target := range []bool{true, false} {
		x := mustNode(t)(Var("x"))
		y := mustNode(t)(Var("y"))
		n := mustNode(t)(Xor(x, y))
		if err := n.SetState(target); err != nil {
			t.Fatalf("SetState(%v): %v", target, err)
		}
		if !x.Known || !y.Known {
			t.Fatalf("x, y = %s, %s, want both bound", x, y)
		}
		if (x.Bool != y.Bool) != target {
			t.Errorf("x, y = %s, %s after SetState(%v)", x, y, target)
		}
	}
}

func TestForceXorAgainstKnownOperand(t *testing.T) {
	x := mustNode(t)(Var("x"))
	n := mustNode(t)(Xor(Const(true), x))
	if err := n.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if x.Bool || !x.Known {
		t.Errorf("x = %s, want x=0", x)
	}
}

func TestForceXorUnsatisfiable(t *testing.T) {
	n := mustNode(t)(Xor(Const(true), Const(true)))
	if err := n.SetState(true); !errors.Is(err, ErrConstraint) {
		t.Errorf("SetState(true) = %v, want ErrConstraint", err)
	}
	// Already equal target is a no-op even on constants.
	if err := n.SetState(false); err != nil {
		t.Errorf("SetState(false): %v, want no-op success", err)
	}
}

func TestForceIdempotent(t *testing.T) {
	a := mustNode(t)(Var("a"))
	b := mustNode(t)(BoundVar("b", true))
	n := mustNode(t)(And(a, b))
	if err := n.SetState(false); err != nil {
		t.Fatalf("SetState(false): %v", err)
	}
	want := []bool{a.Bool, b.Bool}
	if err := n.SetState(false); err != nil {
		t.Fatalf("second SetState(false): %v", err)
	}
	if a.Bool != want[0] || b.Bool != want[1] {
		t.Errorf("second SetState changed leaves: a=%s b=%s", a, b)
	}
}

func TestForceNot(t *testing.T) {
	a := mustNode(t)(Var("a"))
	n := mustNode(t)(Not(a))
	if err := n.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if a.Bool {
		t.Errorf("a = %s, want a=0", a)
	}
	if err := mustNode(t)(Not(Const(true))).SetState(true); !errors.Is(err, ErrConstraint) {
		t.Errorf("Not(Const(true)).SetState(true) = %v, want ErrConstraint", err)
	}
}

func TestForceImplication(t *testing.T) {
	b := mustNode(t)(Var("b"))
	n := mustNode(t)(Implies(Const(true), b))
	if err := n.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if !b.Bool || !b.Known {
		t.Errorf("b = %s, want b=1", b)
	}

	// a → b forced false requires a=1 and b=0.
	a := mustNode(t)(Var("a"))
	c := mustNode(t)(Var("c"))
	m := mustNode(t)(Implies(a, c))
	if err := m.SetState(false); err != nil {
		t.Fatalf("SetState(false): %v", err)
	}
	if !a.Bool || c.Bool {
		t.Errorf("a, c = %s, %s, want a=1 c=0", a, c)
	}
}

func TestForceEquivalence(t *testing.T) {
	a := mustNode(t)(BoundVar("a", true))
	b := mustNode(t)(Var("b"))
	n := mustNode(t)(Equiv(a, b))
	if err := n.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if v, err := n.State(); err != nil || !v {
		t.Fatalf("State = (%v, %v), want (true, nil)", v, err)
	}
	if a.Bool != b.Bool {
		t.Errorf("a, b = %s, %s, want equal", a, b)
	}
}

func TestForceSharedLeafVisibleAcrossTrees(t *testing.T) {
	shared := mustNode(t)(Var("s"))
	left := mustNode(t)(And(shared, Const(true)))
	right := mustNode(t)(Or(shared, Const(false)))
	if err := left.SetState(true); err != nil {
		t.Fatalf("SetState(true): %v", err)
	}
	if v, err := right.State(); err != nil || !v {
		t.Errorf("aliased tree State = (%v, %v), want (true, nil)", v, err)
	}
}
