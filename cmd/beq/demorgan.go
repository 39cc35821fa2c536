package main

import (
	"fmt"

	"github.com/booleq/booleq/encode"
	"github.com/booleq/booleq/ir"
	"github.com/booleq/booleq/parse"

	"github.com/scott-cotton/cli"
)

func deMorgan(cfg *DeMorganConfig, cc *cli.Context, args []string) error {
	args, err := cfg.DeMorgan.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: demorgan requires one argument, an equation", cli.ErrUsage)
	}
	node, err := parse.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	res, err := ir.DeMorgan(node)
	if err != nil {
		return err
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
