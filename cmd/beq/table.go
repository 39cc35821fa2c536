package main

import (
	"fmt"

	"github.com/booleq/booleq/ir"
	"github.com/booleq/booleq/parse"
	"github.com/booleq/booleq/table"

	"github.com/scott-cotton/cli"
)

func tableRun(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: table requires at least one equation", cli.ErrUsage)
	}
	stmts := make([]*ir.Node, len(args))
	for i, arg := range args {
		stmts[i], err = parse.Parse([]byte(arg))
		if err != nil {
			return fmt.Errorf("equation %d: %w", i+1, err)
		}
	}
	t, err := table.New(stmts...)
	if err != nil {
		return err
	}
	opts := []table.EncodeOption{table.EncodeVerdict(cfg.Verdict)}
	if c := cfg.colors(cc.Out); c != nil {
		opts = append(opts, table.EncodeColors(c))
	}
	return t.Encode(cc.Out, opts...)
}
