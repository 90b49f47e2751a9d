package debug

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/go-edm/value"
)

// Value trees are rendered in their compact form and other Stringers
// (expressions, shapes) with their String method; maps and slices are
// dumped as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *value.Value:
			args[i] = value.Sprint(x)
		case fmt.Stringer:
			if x == nil {
				continue
			}
			args[i] = x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
