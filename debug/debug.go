package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// out receives all debug output.
var out io.Writer = os.Stderr

type debug struct {
	Locate      bool
	Eval        bool
	Apply       bool
	Materialize bool
	Fixture     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Locate = boolEnv("EDM_DEBUG_LOCATE")
	d.Eval = boolEnv("EDM_DEBUG_EVAL")
	d.Apply = boolEnv("EDM_DEBUG_APPLY")
	d.Materialize = boolEnv("EDM_DEBUG_MATERIALIZE")
	d.Fixture = boolEnv("EDM_DEBUG_FIXTURE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Locate() bool {
	return d.Locate
}
func Eval() bool {
	return d.Eval
}
func Apply() bool {
	return d.Apply
}
func Materialize() bool {
	return d.Materialize
}
func Fixture() bool {
	return d.Fixture
}

// LogAny dumps v as JSON, falling back to %v when v does not marshal.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(d)
	out.Write([]byte{'\n'})
}
