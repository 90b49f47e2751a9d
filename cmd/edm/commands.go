package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "edm").
		WithSynopsis("edm [opts] command [opts]").
		WithDescription("edm evaluates vocabulary annotations of EDM models described in fixture files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edmMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			TermsCommand(cfg),
			CheckCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval -target NS.Element -term NS.Term [-q qualifier] fixture").
		WithDescription("evaluate the term value of a target").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalTerm(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func TermsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TermsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("terms").
		WithAliases("t").
		WithSynopsis("terms [-targets] fixture").
		WithDescription("list declared terms, or annotated targets and their terms").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return terms(cfg, cc, args)
		})
	cfg.Terms = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-v] fixtures...").
		WithDescription("run the checks of fixture files and of the fixtures under directories").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
