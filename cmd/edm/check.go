package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/go-edm/fixture"
	"github.com/signadot/go-edm/value"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least 1 fixture", cli.ErrUsage)
	}
	files, err := fixture.Files(args...)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range files {
		f, err := fixture.LoadFile(file)
		if err != nil {
			return err
		}
		for _, r := range f.Run() {
			if r.Pass {
				if cfg.Verbose {
					fmt.Fprintf(cc.Out, "PASS %s: %s\n", file, r.Check)
				}
				continue
			}
			failed++
			fmt.Fprintf(cc.Out, "FAIL %s: %s: %s\n", file, r.Check, r.Message)
			if r.Want != nil && r.Got != nil {
				writeDiff(cc.Out, r.Want, r.Got)
			}
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	return nil
}

// writeDiff writes a character diff of the pretty forms of want and got.
func writeDiff(w io.Writer, want, got *value.Value) {
	a := value.Sprint(want, value.FormatPretty(true))
	b := value.Sprint(got, value.FormatPretty(true))
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, true))
	fmt.Fprintln(w, diffText(diffs))
}

func diffText(diffs []diffpatch.Diff) string {
	var res []byte
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			res = append(res, "{+"+d.Text+"+}"...)
		case diffpatch.DiffDelete:
			res = append(res, "[-"+d.Text+"-]"...)
		default:
			res = append(res, d.Text...)
		}
	}
	return string(res)
}
