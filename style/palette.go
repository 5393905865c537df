package style

import "strconv"

// Color is a color family: a foreground Func plus its bright and background
// variants.
type Color struct {
	Func
	Bright   Func
	BG       Func
	BrightBG Func
}

// Palette holds the predefined attribute and color families of an engine.
type Palette struct {
	Bold      Func
	Dim       Func
	Italic    Func
	Underline Func

	Black   Color
	Red     Color
	Green   Color
	Yellow  Color
	Blue    Color
	Magenta Color
	Cyan    Color
	White   Color
}

const (
	fgReset = 39
	bgReset = 49
)

// Palette builds the predefined families bound to e.
func (e *Engine) Palette() Palette {
	return Palette{
		Bold:      e.Compose(Pair(1, 22)),
		Dim:       e.Compose(Pair(2, 22)),
		Italic:    e.Compose(Pair(3, 23)),
		Underline: e.Compose(Pair(4, 24)),
		Black:     e.basic(0),
		Red:       e.basic(1),
		Green:     e.basic(2),
		Yellow:    e.basic(3),
		Blue:      e.basic(4),
		Magenta:   e.basic(5),
		Cyan:      e.basic(6),
		White:     e.basic(7),
	}
}

func (e *Engine) basic(n int) Color {
	return Color{
		Func:     e.Compose(Pair(30+n, fgReset)),
		Bright:   e.Compose(Pair(90+n, fgReset)),
		BG:       e.Compose(Pair(40+n, bgReset)),
		BrightBG: e.Compose(Pair(100+n, bgReset)),
	}
}

// Indexed builds a 256-color family. Indexed colors have no bright variant,
// so Bright and BrightBG repeat the foreground and background Funcs.
func (e *Engine) Indexed(n uint8) Color {
	idx := strconv.Itoa(int(n))
	fg := e.Compose(Pair("38;5;"+idx, fgReset))
	bg := e.Compose(Pair("48;5;"+idx, bgReset))
	return Color{Func: fg, Bright: fg, BG: bg, BrightBG: bg}
}

// RGB builds a true-color family.
func (e *Engine) RGB(r, g, b uint8) Color {
	rgb := strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b))
	fg := e.Compose(Pair("38;2;"+rgb, fgReset))
	bg := e.Compose(Pair("48;2;"+rgb, bgReset))
	return Color{Func: fg, Bright: fg, BG: bg, BrightBG: bg}
}

var std = defaultEngine.Palette()

// Families of the Default engine.
var (
	Bold      = std.Bold
	Dim       = std.Dim
	Italic    = std.Italic
	Underline = std.Underline

	Black   = std.Black
	Red     = std.Red
	Green   = std.Green
	Yellow  = std.Yellow
	Blue    = std.Blue
	Magenta = std.Magenta
	Cyan    = std.Cyan
	White   = std.White
)

// Indexed builds a 256-color family on the Default engine.
func Indexed(n uint8) Color {
	return defaultEngine.Indexed(n)
}

// RGB builds a true-color family on the Default engine.
func RGB(r, g, b uint8) Color {
	return defaultEngine.RGB(r, g, b)
}
