package helptext

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"pkt.systems/helptext/style"
)

// Border draws a box around text. It is an immutable value: the modifier
// methods return a copy with one attribute changed.
//
//	fmt.Println(helptext.Border{}.Thickened().Bolded().Box(doc.String()))
type Border struct {
	Bold  bool
	Dim   bool
	Thick bool

	engine *style.Engine
}

type borderGlyphs struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
}

var (
	thinGlyphs  = borderGlyphs{"┌", "┐", "└", "┘", "─", "│"}
	thickGlyphs = borderGlyphs{"┏", "┓", "┗", "┛", "━", "┃"}
)

// Bolded returns b with bold border glyphs.
func (b Border) Bolded() Border {
	b.Bold = true
	return b
}

// Unbold returns b without bold.
func (b Border) Unbold() Border {
	b.Bold = false
	return b
}

// Dimmed returns b with dim border glyphs.
func (b Border) Dimmed() Border {
	b.Dim = true
	return b
}

// Undim returns b without dim.
func (b Border) Undim() Border {
	b.Dim = false
	return b
}

// Thickened returns b drawn with heavy lines.
func (b Border) Thickened() Border {
	b.Thick = true
	return b
}

// Thin returns b drawn with light lines.
func (b Border) Thin() Border {
	b.Thick = false
	return b
}

// WithEngine returns b styled by e instead of the default engine.
func (b Border) WithEngine(e *style.Engine) Border {
	b.engine = e
	return b
}

// Box frames text. Every line is padded to the widest visible line.
func (b Border) Box(text string) string {
	return b.TitledBox("", text, 0)
}

// TitledBox frames text with title set into the top edge. The box is at
// least width columns wide; a title that does not fit is cut short with an
// ellipsis.
func (b Border) TitledBox(title, text string, width int) string {
	g := thinGlyphs
	if b.Thick {
		g = thickGlyphs
	}
	paint := b.paint()

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	inner := 0
	for _, line := range lines {
		inner = max(inner, style.Len(line))
	}
	inner = max(inner, width-4)

	var out strings.Builder
	out.WriteString(paint(g.topLeft))
	if title != "" && inner > 1 {
		title = truncate.StringWithTail(title, uint(inner-1), "…")
		out.WriteString(paint(g.horizontal) + " " + title + " ")
		out.WriteString(paint(strings.Repeat(g.horizontal, inner-1-style.Len(title))))
	} else {
		out.WriteString(paint(strings.Repeat(g.horizontal, inner+2)))
	}
	out.WriteString(paint(g.topRight))
	out.WriteByte('\n')
	for _, line := range lines {
		out.WriteString(paint(g.vertical) + " " + style.PadEnd(line, inner) + " " + paint(g.vertical))
		out.WriteByte('\n')
	}
	out.WriteString(paint(g.bottomLeft + strings.Repeat(g.horizontal, inner+2) + g.bottomRight))
	return out.String()
}

func (b Border) paint() func(string) string {
	e := b.engine
	if e == nil {
		e = style.Default()
	}
	var items []any
	p := e.Palette()
	if b.Bold {
		items = append(items, p.Bold)
	}
	if b.Dim {
		items = append(items, p.Dim)
	}
	return e.Compose(items...).Apply
}
