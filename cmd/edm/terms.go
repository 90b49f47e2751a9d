package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/fixture"
)

func terms(cfg *TermsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Terms.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: terms requires 1 fixture, got %v", cli.ErrUsage, args)
	}
	f, err := fixture.LoadFile(args[0])
	if err != nil {
		return err
	}
	if cfg.Targets {
		return listTargets(cc.Out, f.Model)
	}
	for _, t := range f.Model.Terms() {
		line := t.FullName() + " " + t.Type
		if len(t.AppliesTo) != 0 {
			line += " (" + strings.Join(t.AppliesTo, ", ") + ")"
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func listTargets(w io.Writer, m *edm.Model) error {
	var last edm.Element
	for _, a := range m.AllAnnotations() {
		if a.Target != last {
			if _, err := fmt.Fprintln(w, a.Target.FullName()); err != nil {
				return err
			}
			last = a.Target
		}
		q := ""
		if a.Qualifier != "" {
			q = "#" + a.Qualifier
		}
		if _, err := fmt.Fprintf(w, "\t- %s%s: %s\n", a.Term.FullName(), q, a.Expr); err != nil {
			return err
		}
	}
	return nil
}
