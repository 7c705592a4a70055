package encode

import (
	"github.com/fatih/color"

	"github.com/scratchtools/go-ws/ir"
)

// Colorable selects the colour of one encoded token: the type of the
// node it belongs to and the role it plays.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	// FieldColor colours mapping keys.
	FieldColor ColorAttr = iota
	ValueColor
	// SepColor colours brackets, commas and colons.
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var (
	punct  = color.New(color.FgHiBlack)
	scalar = map[ir.Type]*color.Color{
		ir.NullType:   color.New(color.FgMagenta, color.Italic),
		ir.BoolType:   color.New(color.FgCyan),
		ir.NumberType: color.New(color.FgHiCyan),
		ir.StringType: color.New(color.FgGreen),
	}
	key     = color.New(color.FgBlue, color.Bold)
	keyPunc = color.New(color.FgHiBlue)
)

// NewColors returns the default palette. Output is uncoloured whenever
// color.NoColor is set, as it is when NO_COLOR is in the environment.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	set := func(t ir.Type, a ColorAttr, c *color.Color) {
		f := c.SprintFunc()
		colors.Map[Colorable{Type: t, Attr: a}] = func(v string, _ ...any) string {
			return f(v)
		}
	}
	for _, t := range ir.Types() {
		set(t, SepColor, punct)
		if c, ok := scalar[t]; ok {
			set(t, ValueColor, c)
		}
	}
	set(ir.MappingType, FieldColor, key)
	set(ir.MappingType, SepColor, keyPunc)
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

// Get returns the colouring function for t and a, or Default. The
// returned functions print their first argument verbatim, so '%' needs
// no escaping.
func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	if c.Default == nil {
		return colorDefault
	}
	return c.Default
}
