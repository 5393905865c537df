package helptext

import (
	"sort"
	"strings"

	"pkt.systems/helptext/style"
)

// Styles groups the semantic styles used by the Builder helpers.
type Styles struct {
	Title  style.Func
	Label  style.Func
	Param  style.Func
	Flag   style.Func
	Bullet style.Func
	Number style.Func
	Link   style.Func
}

// Theme provides named styles for help text.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// bind rebinds every style to e so the Builder's engine decides enablement.
func (s Styles) bind(e *style.Engine) Styles {
	return Styles{
		Title:  e.Compose(s.Title),
		Label:  e.Compose(s.Label),
		Param:  e.Compose(s.Param),
		Flag:   e.Compose(s.Flag),
		Bullet: e.Compose(s.Bullet),
		Number: e.Compose(s.Number),
		Link:   e.Compose(s.Link),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Title:  style.Bold,
		Label:  style.Bold,
		Param:  style.Compose(style.Cyan.Bright, style.Underline),
		Flag:   style.Green.Bright,
		Bullet: style.Bold,
		Number: style.Bold,
		Link:   style.Compose(style.Blue.Bright, style.Underline),
	}},
	"ocean": theme{name: "ocean", styles: Styles{
		Title:  style.Compose(style.Bold, style.Cyan.Bright),
		Label:  style.Compose(style.Bold, style.Blue.Bright),
		Param:  style.Compose(style.Indexed(45), style.Underline),
		Flag:   style.Indexed(117).Func,
		Bullet: style.Cyan.Func,
		Number: style.Compose(style.Bold, style.Cyan),
		Link:   style.Compose(style.Indexed(39), style.Underline),
	}},
	"amber": theme{name: "amber", styles: Styles{
		Title:  style.Compose(style.Bold, style.Indexed(214)),
		Label:  style.Compose(style.Bold, style.Yellow),
		Param:  style.Compose(style.Indexed(208), style.Italic),
		Flag:   style.Yellow.Bright,
		Bullet: style.Indexed(214).Func,
		Number: style.Compose(style.Bold, style.Indexed(214)),
		Link:   style.Compose(style.Yellow, style.Underline),
	}},
	"boring": theme{name: "boring", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
