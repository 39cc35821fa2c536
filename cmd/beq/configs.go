package main

import (
	"io"
	"os"

	"github.com/booleq/booleq/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='force colored output'"`
	Canonical bool `cli:"name=c aliases=canonical desc='print equations in canonical constructor form'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeCanonical(cfg.Canonical),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type EvalConfig struct {
	*MainConfig

	File string `cli:"name=f desc='bindings file (yaml or json object of name: bool)'"`

	env     map[string]bool
	patches []string

	Eval *cli.Command
}

type SolveConfig struct {
	*MainConfig

	File string `cli:"name=f desc='bindings file (yaml or json object of name: bool)'"`

	env     map[string]bool
	patches []string

	Solve *cli.Command
}

type TableConfig struct {
	*MainConfig

	Verdict bool `cli:"name=verdict desc='print whether statements agree'"`

	Table *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type VarsConfig struct {
	*MainConfig

	Vars *cli.Command
}

type DeMorganConfig struct {
	*MainConfig

	DeMorgan *cli.Command
}
