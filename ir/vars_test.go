package ir

import (
	"errors"
	"slices"
	"testing"
)

func TestVariablesOrderAndDuplicates(t *testing.T) {
	a := mustNode(t)(Var("a"))
	b := mustNode(t)(Var("b"))
	n := mustNode(t)(And(mustNode(t)(Or(a, b)), a, Const(true)))

	var got []*Node
	for leaf := range Variables(n) {
		got = append(got, leaf)
	}
	if len(got) != 3 {
		t.Fatalf("got %d leaves, want 3 (duplicates kept)", len(got))
	}
	if got[0] != a || got[1] != b || got[2] != a {
		t.Errorf("walk order = %v, want a, b, a", got)
	}
}

func TestVariablesIsLazy(t *testing.T) {
	n := mustNode(t)(And("a", "b", "c"))
	count := 0
	for range Variables(n) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break yielded %d leaves", count)
	}
}

func TestVariablesDeepTree(t *testing.T) {
	// A comb deep enough to overflow the stack under naive recursion.
	n := mustNode(t)(Var("leaf"))
	for range 200000 {
		n = n.Negate()
	}
	count := 0
	for range Variables(n) {
		count++
	}
	if count != 1 {
		t.Errorf("got %d leaves, want 1", count)
	}
}

func TestVariableState(t *testing.T) {
	a1 := mustNode(t)(BoundVar("a", true))
	a2 := mustNode(t)(BoundVar("a", true))
	u := mustNode(t)(Var("u"))
	n := mustNode(t)(And(a1, mustNode(t)(Or(a2, u))))

	if v, err := VariableState(n, "a"); err != nil || !v {
		t.Errorf("VariableState(a) = (%v, %v), want (true, nil)", v, err)
	}
	if _, err := VariableState(n, "u"); !errors.Is(err, ErrIndeterminate) {
		t.Errorf("VariableState(u) = %v, want ErrIndeterminate", err)
	}
	if _, err := VariableState(n, "zz"); !errors.Is(err, ErrNoVariable) {
		t.Errorf("VariableState(zz) = %v, want ErrNoVariable", err)
	}

	a2.Bool = false
	if _, err := VariableState(n, "a"); !errors.Is(err, ErrInconsistent) {
		t.Errorf("VariableState with differing values = %v, want ErrInconsistent", err)
	}
	a2.Bool, a2.Known = true, false
	if _, err := VariableState(n, "a"); !errors.Is(err, ErrInconsistent) {
		t.Errorf("VariableState with mixed bound/unbound = %v, want ErrInconsistent", err)
	}
}

func TestVariableStateOr(t *testing.T) {
	u := mustNode(t)(Var("u"))
	n := mustNode(t)(Or(u, Const(false)))
	if v, err := VariableStateOr(n, "u", true); err != nil || !v {
		t.Errorf("VariableStateOr = (%v, %v), want (true, nil)", v, err)
	}
	if _, err := VariableStateOr(n, "zz", true); !errors.Is(err, ErrNoVariable) {
		t.Errorf("VariableStateOr(zz) = %v, want ErrNoVariable", err)
	}
	u.Bool, u.Known = false, true
	if v, err := VariableStateOr(n, "u", true); err != nil || v {
		t.Errorf("VariableStateOr with bound u = (%v, %v), want (false, nil)", v, err)
	}
}

func TestSetVariableState(t *testing.T) {
	a1 := mustNode(t)(Var("a"))
	a2 := mustNode(t)(Var("a"))
	n := mustNode(t)(And(a1, mustNode(t)(Or(a2, "b"))))

	if err := SetVariableState(n, "a", true); err != nil {
		t.Fatalf("SetVariableState: %v", err)
	}
	for _, leaf := range []*Node{a1, a2} {
		if !leaf.Known || !leaf.Bool {
			t.Errorf("leaf = %s, want a=1", leaf)
		}
	}
	if err := SetVariableState(n, "zz", true); !errors.Is(err, ErrNoVariable) {
		t.Errorf("SetVariableState(zz) = %v, want ErrNoVariable", err)
	}

	names := []string{}
	for leaf := range Variables(n) {
		if !slices.Contains(names, leaf.Name) {
			names = append(names, leaf.Name)
		}
	}
	if !slices.Equal(names, []string{"a", "b"}) {
		t.Errorf("names = %v, want [a b]", names)
	}
}
