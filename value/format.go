package value

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

type FormatOption func(*formatConfig)

type formatConfig struct {
	colors *Colors
	pretty bool
	indent string
}

// FormatColors renders with the given colors. A nil Colors renders plain
// text.
func FormatColors(c *Colors) FormatOption {
	return func(cfg *formatConfig) {
		cfg.colors = c
	}
}

// FormatPretty renders collections and structured values one element per
// line.
func FormatPretty(v bool) FormatOption {
	return func(cfg *formatConfig) {
		cfg.pretty = v
	}
}

// Sprint renders v as text.
func Sprint(v *Value, opts ...FormatOption) string {
	buf := &strings.Builder{}
	_ = Format(buf, v, opts...)
	return buf.String()
}

// Format writes a textual rendering of v to w. Values reachable from
// themselves are rendered as <cycle> on the second visit.
func Format(w io.Writer, v *Value, opts ...FormatOption) error {
	cfg := &formatConfig{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}
	f := &formatter{cfg: cfg, onPath: map[*Value]bool{}}
	f.value(v, 0)
	_, err := io.WriteString(w, f.buf.String())
	return err
}

type formatter struct {
	cfg    *formatConfig
	buf    strings.Builder
	onPath map[*Value]bool
}

func (f *formatter) c(k Kind, attr ColorAttr, s string) {
	if f.cfg.colors == nil {
		f.buf.WriteString(s)
		return
	}
	f.buf.WriteString(f.cfg.colors.Color(k, attr)("%s", s))
}

func (f *formatter) newline(depth int) {
	if !f.cfg.pretty {
		return
	}
	f.buf.WriteByte('\n')
	f.buf.WriteString(strings.Repeat(f.cfg.indent, depth))
}

func (f *formatter) value(v *Value, depth int) {
	if v == nil {
		f.c(NullKind, ValueColor, "null")
		return
	}
	if !v.Kind.IsLeaf() {
		if f.onPath[v] {
			f.c(v.Kind, SepColor, "<cycle>")
			return
		}
		f.onPath[v] = true
		defer delete(f.onPath, v)
	}
	switch v.Kind {
	case CollectionKind:
		f.c(v.Kind, SepColor, "[")
		for i, e := range v.Values {
			if i > 0 {
				f.c(v.Kind, SepColor, ",")
				if !f.cfg.pretty {
					f.buf.WriteByte(' ')
				}
			}
			f.newline(depth + 1)
			f.value(e, depth+1)
		}
		if len(v.Values) > 0 {
			f.newline(depth)
		}
		f.c(v.Kind, SepColor, "]")
	case StructuredKind:
		if v.Type != "" {
			f.c(v.Kind, TypeColor, v.Type)
		}
		f.c(v.Kind, SepColor, "{")
		for i, name := range v.Fields {
			if i > 0 {
				f.c(v.Kind, SepColor, ",")
				if !f.cfg.pretty {
					f.buf.WriteByte(' ')
				}
			}
			f.newline(depth + 1)
			f.c(v.Kind, FieldColor, name)
			f.c(v.Kind, SepColor, ": ")
			f.value(v.Values[i], depth+1)
		}
		if len(v.Fields) > 0 {
			f.newline(depth)
		}
		f.c(v.Kind, SepColor, "}")
	case EnumKind:
		if v.Type != "" {
			f.c(v.Kind, TypeColor, v.Type)
			f.c(v.Kind, ValueColor, "'"+strconv.FormatInt(v.Int64, 10)+"'")
			return
		}
		f.c(v.Kind, ValueColor, strconv.FormatInt(v.Int64, 10))
	default:
		f.c(v.Kind, ValueColor, leafText(v))
	}
}

func leafText(v *Value) string {
	switch v.Kind {
	case NullKind:
		return "null"
	case IntegerKind:
		return strconv.FormatInt(v.Int64, 10)
	case FloatingKind:
		s := strconv.FormatFloat(v.Float64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case DecimalKind:
		return v.Decimal.String() + "m"
	case StringKind:
		return strconv.Quote(v.String)
	case BooleanKind:
		return strconv.FormatBool(v.Bool)
	case BinaryKind:
		return "binary'" + base64.StdEncoding.EncodeToString(v.Bytes) + "'"
	case GuidKind:
		return v.GUID.String()
	case DateTimeOffsetKind:
		return v.Time.Format(time.RFC3339Nano)
	case DateKind:
		return v.Time.Format(time.DateOnly)
	case TimeOfDayKind:
		d := v.Duration
		return fmt.Sprintf("%02d:%02d:%02d.%03d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60, d.Milliseconds()%1000)
	case DurationKind:
		return "duration'" + v.Duration.String() + "'"
	}
	return "<unknown>"
}
