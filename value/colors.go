package value

import (
	"fmt"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	TypeColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range Kinds() {
		colors.Map[Colorable{Kind: k, Attr: TypeColor}] = color.RGB(74, 92, 138).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(128, 128, 128).SprintfFunc()
	}
	colors.Map[Colorable{Kind: StructuredKind, Attr: FieldColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: NullKind, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: BooleanKind, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: StringKind, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Kind: EnumKind, Attr: ValueColor}] = color.CyanString
	for _, k := range []Kind{IntegerKind, FloatingKind, DecimalKind} {
		colors.Map[Colorable{Kind: k, Attr: ValueColor}] = color.RGB(196, 96, 16).SprintfFunc()
	}
	for _, k := range []Kind{BinaryKind, GuidKind, DateTimeOffsetKind, DateKind, TimeOfDayKind, DurationKind} {
		colors.Map[Colorable{Kind: k, Attr: ValueColor}] = color.RGB(198, 198, 46).SprintfFunc()
	}
	return colors
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

func (c *Colors) Color(k Kind, attr ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	if f, ok := c.Map[Colorable{Kind: k, Attr: attr}]; ok {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}
