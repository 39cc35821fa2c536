package main

import (
	"bytes"
	"fmt"

	"github.com/booleq/booleq/parse"
	"github.com/booleq/booleq/table"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments, got %v", cli.ErrUsage, args)
	}
	rendered := make([]string, 2)
	for i, arg := range args {
		node, err := parse.Parse([]byte(arg))
		if err != nil {
			return fmt.Errorf("equation %d: %w", i+1, err)
		}
		t, err := table.New(node)
		if err != nil {
			return err
		}
		buf := bytes.NewBuffer(nil)
		if err := t.Encode(buf); err != nil {
			return err
		}
		rendered[i] = buf.String()
	}
	if rendered[0] == rendered[1] {
		fmt.Fprintln(cc.Out, "truth tables are identical")
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(rendered[0], rendered[1], true)
	if cfg.colors(cc.Out) != nil {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		printPlainDiff(cc, diffs)
	}
	return cli.ExitCodeErr(1)
}

func printPlainDiff(cc *cli.Context, diffs []diffpatch.Diff) {
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "+%s", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "-%s", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
}
