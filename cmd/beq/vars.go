package main

import (
	"fmt"

	"github.com/booleq/booleq/ir"
	"github.com/booleq/booleq/parse"

	"github.com/scott-cotton/cli"
)

func vars(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: vars requires one argument, an equation", cli.ErrUsage)
	}
	node, err := parse.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	for _, leaf := range uniqueVars(node) {
		fmt.Fprintln(cc.Out, leaf)
	}
	return nil
}

// uniqueVars returns node's variable leaves with duplicates collapsed,
// in order of first occurrence.
func uniqueVars(node *ir.Node) []*ir.Node {
	var res []*ir.Node
	seen := map[string]bool{}
	for leaf := range ir.Variables(node) {
		if seen[leaf.Name] {
			continue
		}
		seen[leaf.Name] = true
		res = append(res, leaf)
	}
	return res
}
