package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-edm/value"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='output with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='indent structured output'"`

	Main *cli.Command
}

func (cfg *MainConfig) colorSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

// fmtOpts returns value formatting options for w. Without an explicit
// -color, output is colored when w is a terminal.
func (cfg *MainConfig) fmtOpts(w io.Writer) []value.FormatOption {
	res := []value.FormatOption{value.FormatPretty(cfg.Pretty)}
	if cfg.Color {
		return append(res, value.FormatColors(value.NewColors()))
	}
	if cfg.colorSet() {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, value.FormatColors(value.NewColors()))
	}
	return res
}

type EvalConfig struct {
	*MainConfig

	Target    string `cli:"name=target desc='qualified name of the annotated element'"`
	Term      string `cli:"name=term desc='qualified name of the term'"`
	Qualifier string `cli:"name=q desc='annotation qualifier (default any)'"`

	Eval *cli.Command
}

// qualifier reports the -q flag, or nil when it was not given.
func (cfg *EvalConfig) qualifier() *string {
	for _, opt := range cfg.Eval.Opts {
		if opt.Name == "q" && opt.Value != nil {
			return &cfg.Qualifier
		}
	}
	return nil
}

type TermsConfig struct {
	*MainConfig

	Targets bool `cli:"name=targets desc='list annotated targets with their terms'"`

	Terms *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Verbose bool `cli:"name=v desc='report passing checks'"`

	Check *cli.Command
}
