package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "beq").
		WithSynopsis("beq [opts] command [opts]").
		WithDescription("beq is a tool for working with boolean equations.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return beqMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			SolveCommand(cfg),
			TableCommand(cfg),
			DiffCommand(cfg),
			VarsCommand(cfg),
			DeMorganCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, env: map[string]bool{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, bindingOpts(cfg.env, &cfg.patches)...)

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-f file] [-p patch]... [-e name=val]... <equation>").
		WithDescription("Evaluate an equation under the given bindings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg, env: map[string]bool{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, bindingOpts(cfg.env, &cfg.patches)...)

	cmd := cli.NewCommand("solve").
		WithAliases("s", "so").
		WithSynopsis("solve [opts] <equation> <true|false>").
		WithDescription("Force an equation to the target value by binding variables").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return solve(cfg, cc, args)
		})
	cfg.Solve = cmd
	return cmd
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg, Verdict: true}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("table").
		WithAliases("t", "tt").
		WithSynopsis("table <equation> [equation...]").
		WithDescription("Print the truth table of equations over one shared variable set").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tableRun(cfg, cc, args)
		})
	cfg.Table = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <equation> <equation>").
		WithDescription("Diff the truth tables of two equations").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func VarsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("vars").
		WithAliases("v", "va").
		WithSynopsis("vars <equation>").
		WithDescription("List an equation's variables and their states").
		WithRun(func(cc *cli.Context, args []string) error {
			return vars(cfg, cc, args)
		})
	cfg.Vars = cmd
	return cmd
}

func DeMorganCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeMorganConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("demorgan").
		WithAliases("dm").
		WithSynopsis("demorgan <equation>").
		WithDescription("Apply the De Morgan transformation to an equation").
		WithRun(func(cc *cli.Context, args []string) error {
			return deMorgan(cfg, cc, args)
		})
	cfg.DeMorgan = cmd
	return cmd
}

func bindingOpts(env map[string]bool, patches *[]string) []*cli.Opt {
	return []*cli.Opt{
		{
			Name:        "e",
			Description: "bind a variable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(env)), "(name=val)"),
		},
		{
			Name:        "p",
			Description: "merge patch (RFC 7386) applied to the bindings document",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(patchOptTypeFunc(patches)), "(patch)"),
		},
	}
}

func envOptTypeFunc(env map[string]bool) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func patchOptTypeFunc(patches *[]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		*patches = append(*patches, a)
		return 0, nil
	}
}
