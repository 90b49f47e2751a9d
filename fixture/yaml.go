package fixture

import (
	"encoding/base64"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/value"
)

// typeKey tags a mapping with its declared type.
const typeKey = "$type"

// ValueFromYAML converts decoded YAML into a value tree. Scalars and
// sequences map to the obvious kinds and mappings to structured values,
// with fields in document order when decoded with yaml.UseOrderedMap. A
// "$type" key sets the declared type. A mapping with a single "$kind" key
// writes a leaf of that kind:
//
//	$decimal: "1.50"
//	$guid: 21EC2020-3AEA-1069-A2DD-08002B30309D
//	$date: "2024-02-29"
//	$dateTimeOffset: "2024-02-29T10:00:00Z"
//	$timeOfDay: "13:05:01.5"
//	$duration: 1h30m
//	$binary: aGk=
//	$enum: [NS.Color, 2]
func ValueFromYAML(y any) (*value.Value, error) {
	switch x := y.(type) {
	case nil:
		return value.Null(), nil
	case []any:
		elems := make([]*value.Value, len(x))
		for i, e := range x {
			v, err := ValueFromYAML(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			elems[i] = v
		}
		return value.FromSlice("", elems), nil
	case yaml.MapSlice:
		return structFromYAML(x)
	case map[string]any:
		return structFromYAML(sortedMapSlice(x))
	case time.Time:
		return value.FromDateTimeOffset(x), nil
	default:
		return value.FromAny(x)
	}
}

func sortedMapSlice(m map[string]any) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res = append(res, yaml.MapItem{Key: k, Value: m[k]})
	}
	return res
}

func structFromYAML(ms yaml.MapSlice) (*value.Value, error) {
	if len(ms) == 1 {
		if k, ok := ms[0].Key.(string); ok && strings.HasPrefix(k, "$") && k != typeKey {
			return leafFromYAML(k, ms[0].Value)
		}
	}
	typ := ""
	kvs := make([]value.KeyVal, 0, len(ms))
	for _, item := range ms {
		k := fmt.Sprint(item.Key)
		if k == typeKey {
			typ = fmt.Sprint(item.Value)
			continue
		}
		v, err := ValueFromYAML(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		kvs = append(kvs, value.KeyVal{Key: k, Val: v})
	}
	return value.FromKeyVals(typ, kvs), nil
}

func leafFromYAML(kind string, y any) (*value.Value, error) {
	s := fmt.Sprint(y)
	switch kind {
	case "$decimal":
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, err
		}
		return value.FromDecimal(d), nil
	case "$guid":
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		return value.FromGUID(id), nil
	case "$date":
		t, err := parseTime(y, time.DateOnly)
		if err != nil {
			return nil, err
		}
		return value.FromDate(t.Year(), t.Month(), t.Day()), nil
	case "$dateTimeOffset":
		t, err := parseTime(y, time.RFC3339Nano)
		if err != nil {
			return nil, err
		}
		return value.FromDateTimeOffset(t), nil
	case "$timeOfDay":
		t, err := time.Parse("15:04:05.999999999", s)
		if err != nil {
			return nil, err
		}
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return value.FromTimeOfDay(t.Sub(midnight)), nil
	case "$duration":
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, err
		}
		return value.FromDuration(d), nil
	case "$binary":
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, err
		}
		return value.FromBytes(b), nil
	case "$enum":
		pair, ok := y.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("$enum expects [type, value], got %v", y)
		}
		n, err := value.FromAny(pair[1])
		if err != nil || n.Kind != value.IntegerKind {
			return nil, fmt.Errorf("$enum value %v is not an integer", pair[1])
		}
		return value.FromEnum(fmt.Sprint(pair[0]), n.Int64), nil
	default:
		return nil, fmt.Errorf("unknown leaf kind %q", kind)
	}
}

func parseTime(y any, layout string) (time.Time, error) {
	if t, ok := y.(time.Time); ok {
		return t, nil
	}
	return time.Parse(layout, fmt.Sprint(y))
}

// ExprFromYAML converts decoded YAML into an expression. Null is the null
// expression, scalars and "$kind" leaves are constants and a sequence is a
// collection. Other forms are single-key mappings:
//
//	const: <value>
//	path: Address/City
//	record: {$type: NS.T, Name: <expr>, ...}
//	collection: [<expr>, ...]
//	apply: {op: NS.f, args: [<expr>, ...]}
//	if: [<cond>, <then>, <else>]
func ExprFromYAML(y any) (edm.Expr, error) {
	switch x := y.(type) {
	case nil:
		return edm.NullExpr(), nil
	case []any:
		return collectionFromYAML(x)
	case map[string]any:
		return ExprFromYAML(sortedMapSlice(x))
	case yaml.MapSlice:
		if len(x) != 1 {
			return nil, fmt.Errorf("expression must have exactly one key, got %d", len(x))
		}
		k, _ := x[0].Key.(string)
		arg := x[0].Value
		switch k {
		case "const":
			v, err := ValueFromYAML(arg)
			if err != nil {
				return nil, err
			}
			return edm.Const(v), nil
		case "path":
			s, ok := arg.(string)
			if !ok {
				return nil, fmt.Errorf("path must be a string, got %T", arg)
			}
			return edm.NewPath(s), nil
		case "record":
			return recordFromYAML(arg)
		case "collection":
			elems, ok := arg.([]any)
			if !ok && arg != nil {
				return nil, fmt.Errorf("collection must be a sequence, got %T", arg)
			}
			return collectionFromYAML(elems)
		case "apply":
			return applyFromYAML(arg)
		case "if":
			parts, ok := arg.([]any)
			if !ok || len(parts) != 3 {
				return nil, fmt.Errorf("if expects [cond, then, else]")
			}
			es := make([]edm.Expr, 3)
			for i, p := range parts {
				e, err := ExprFromYAML(p)
				if err != nil {
					return nil, fmt.Errorf("if[%d]: %w", i, err)
				}
				es[i] = e
			}
			return edm.NewIf(es[0], es[1], es[2]), nil
		}
		if strings.HasPrefix(k, "$") {
			v, err := ValueFromYAML(x)
			if err != nil {
				return nil, err
			}
			return edm.Const(v), nil
		}
		return nil, fmt.Errorf("unknown expression %q", k)
	default:
		v, err := ValueFromYAML(x)
		if err != nil {
			return nil, err
		}
		return edm.Const(v), nil
	}
}

func collectionFromYAML(elems []any) (edm.Expr, error) {
	es := make([]edm.Expr, len(elems))
	for i, el := range elems {
		e, err := ExprFromYAML(el)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		es[i] = e
	}
	return edm.NewCollection(es...), nil
}

func recordFromYAML(y any) (edm.Expr, error) {
	var ms yaml.MapSlice
	switch x := y.(type) {
	case nil:
	case yaml.MapSlice:
		ms = x
	case map[string]any:
		ms = sortedMapSlice(x)
	default:
		return nil, fmt.Errorf("record must be a mapping, got %T", y)
	}
	typ := ""
	var props []edm.PropertyAssignment
	for _, item := range ms {
		k := fmt.Sprint(item.Key)
		if k == typeKey {
			typ = fmt.Sprint(item.Value)
			continue
		}
		e, err := ExprFromYAML(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		props = append(props, edm.Prop(k, e))
	}
	return edm.NewRecord(typ, props...), nil
}

func applyFromYAML(y any) (edm.Expr, error) {
	var ms yaml.MapSlice
	switch x := y.(type) {
	case yaml.MapSlice:
		ms = x
	case map[string]any:
		ms = sortedMapSlice(x)
	default:
		return nil, fmt.Errorf("apply must be a mapping, got %T", y)
	}
	var (
		op   string
		args []edm.Expr
	)
	for _, item := range ms {
		switch item.Key {
		case "op":
			op = fmt.Sprint(item.Value)
		case "args":
			c, err := collectionFromYAML(asSlice(item.Value))
			if err != nil {
				return nil, fmt.Errorf("args%w", err)
			}
			args = c.(*edm.Collection).Elements
		default:
			return nil, fmt.Errorf("apply: unknown key %v", item.Key)
		}
	}
	if op == "" {
		return nil, fmt.Errorf("apply: missing op")
	}
	return edm.NewApply(op, args...), nil
}

func asSlice(y any) []any {
	if s, ok := y.([]any); ok {
		return s
	}
	if y == nil {
		return nil
	}
	return []any{y}
}
