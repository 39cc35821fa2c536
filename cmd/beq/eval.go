package main

import (
	"errors"
	"fmt"

	"github.com/booleq/booleq/encode"
	"github.com/booleq/booleq/ir"
	"github.com/booleq/booleq/parse"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: eval requires one argument, an equation", cli.ErrUsage)
	}
	node, err := parse.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	bindings, err := loadBindings(cfg.File, cfg.patches, cfg.env)
	if err != nil {
		return err
	}
	if err := applyBindings(node, bindings); err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	v, err := node.State()
	switch {
	case errors.Is(err, ir.ErrIndeterminate):
		fmt.Fprintln(cc.Out, " = indeterminate")
	case err != nil:
		return err
	default:
		fmt.Fprintf(cc.Out, " = %v\n", v)
	}
	return nil
}
