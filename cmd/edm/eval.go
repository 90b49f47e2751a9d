package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-edm/fixture"
	"github.com/signadot/go-edm/value"
)

func evalTerm(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: eval requires 1 fixture, got %v", cli.ErrUsage, args)
	}
	if cfg.Target == "" || cfg.Term == "" {
		return fmt.Errorf("%w: eval requires -target and -term", cli.ErrUsage)
	}
	f, err := fixture.LoadFile(args[0])
	if err != nil {
		return err
	}
	v, err := f.Eval(cfg.Target, cfg.Term, cfg.qualifier())
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("no value of %s applies to %s", cfg.Term, cfg.Target)
	}
	if err := value.Format(cc.Out, v, cfg.fmtOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
