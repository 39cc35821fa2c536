// Package table enumerates truth tables for one or more statements over
// a shared variable set.
package table

import (
	"fmt"

	"github.com/booleq/booleq/debug"
	"github.com/booleq/booleq/ir"
)

// Table is the truth table of one or more statements.  Rows holds one
// entry per assignment of Names; the first name is the most significant
// bit, so it varies slowest.
type Table struct {
	Names      []string
	Statements []*ir.Node
	Rows       []Row

	// Agree reports whether all statements produced the same value on
	// every row.  It is vacuously true for a single statement.
	Agree bool
}

type Row struct {
	Assignment []bool
	Results    []bool
}

// New enumerates all 2ⁿ assignments of the statements' shared variables.
// Every statement must range over the same variable names; names are
// ordered by first occurrence in the first statement.  Whatever the
// outcome, the variables are restored to the states they held before the
// call.
func New(stmts ...*ir.Node) (*Table, error) {
	if len(stmts) == 0 {
		return nil, fmt.Errorf("%w: no statements", ErrVarMismatch)
	}
	names := varNames(stmts[0])
	for i, stmt := range stmts[1:] {
		if !sameNames(names, varNames(stmt)) {
			return nil, fmt.Errorf("%w: statement %d ranges over different variables than %s",
				ErrVarMismatch, i+2, stmts[0])
		}
	}
	defer restore(snapshot(stmts))

	n := len(names)
	t := &Table{
		Names:      names,
		Statements: stmts,
		Rows:       make([]Row, 0, 1<<n),
		Agree:      true,
	}
	if debug.Table() {
		debug.Logf("table: %d statements, %d variables, %d rows\n", len(stmts), n, 1<<n)
	}
	for i := 0; i < 1<<n; i++ {
		row := Row{
			Assignment: make([]bool, n),
			Results:    make([]bool, len(stmts)),
		}
		for j, name := range names {
			v := (i>>(n-1-j))&1 == 1
			row.Assignment[j] = v
			for _, stmt := range stmts {
				if err := ir.SetVariableState(stmt, name, v); err != nil {
					return nil, err
				}
			}
		}
		for k, stmt := range stmts {
			v, err := stmt.State()
			if err != nil {
				// All leaves are bound, so this cannot be an
				// indeterminate result.
				return nil, fmt.Errorf("%w: row %d of %s: %w", errInternal, i, stmt, err)
			}
			row.Results[k] = v
			if v != row.Results[0] {
				t.Agree = false
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// varNames returns stmt's variable names in first-occurrence order.
func varNames(stmt *ir.Node) []string {
	var names []string
	seen := map[string]bool{}
	for leaf := range ir.Variables(stmt) {
		if seen[leaf.Name] {
			continue
		}
		seen[leaf.Name] = true
		names = append(names, leaf.Name)
	}
	return names
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, name := range a {
		set[name] = true
	}
	for _, name := range b {
		if !set[name] {
			return false
		}
	}
	return true
}

type leafState struct {
	leaf  *ir.Node
	val   bool
	known bool
}

func snapshot(stmts []*ir.Node) []leafState {
	var saved []leafState
	seen := map[*ir.Node]bool{}
	for _, stmt := range stmts {
		for leaf := range ir.Variables(stmt) {
			if seen[leaf] {
				continue
			}
			seen[leaf] = true
			saved = append(saved, leafState{leaf: leaf, val: leaf.Bool, known: leaf.Known})
		}
	}
	return saved
}

func restore(saved []leafState) {
	for _, s := range saved {
		s.leaf.Bool, s.leaf.Known = s.val, s.known
	}
}
