package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/booleq/booleq/encode"
	"github.com/booleq/booleq/ir"
	"github.com/booleq/booleq/parse"

	"github.com/scott-cotton/cli"
)

func solve(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: solve requires 2 arguments, an equation and a target value",
			cli.ErrUsage)
	}
	node, err := parse.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	target, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("%w: target must be a boolean, got %q", cli.ErrUsage, args[1])
	}
	bindings, err := loadBindings(cfg.File, cfg.patches, cfg.env)
	if err != nil {
		return err
	}
	if err := applyBindings(node, bindings); err != nil {
		return err
	}
	if err := node.SetState(target); err != nil {
		if errors.Is(err, ir.ErrConstraint) {
			fmt.Fprintf(cc.Out, "unsatisfiable: %v\n", err)
			return cli.ExitCodeErr(1)
		}
		return err
	}
	for _, leaf := range uniqueVars(node) {
		fmt.Fprintln(cc.Out, leaf)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, " = %v\n", target)
	return nil
}
