package helptext

import (
	"strconv"
	"strings"
)

// Dict opens a dictionary. Text added until EndDict is buffered; keys and
// values are aligned when the dictionary closes.
func (b *Builder) Dict() *Builder {
	b.mode = ModeDict
	return b
}

// Key starts a dictionary key. Outside a dictionary it does nothing.
func (b *Builder) Key() *Builder {
	if b.inDict() {
		b.mode = ModeKey
	}
	return b
}

// Value starts a dictionary value. Outside a dictionary it does nothing.
func (b *Builder) Value() *Builder {
	if b.inDict() {
		b.mode = ModeValue
	}
	return b
}

// End closes the innermost structure: a key or value returns to the
// dictionary, a dictionary or list is closed.
func (b *Builder) End() *Builder {
	switch b.mode {
	case ModeKey, ModeValue:
		b.mode = ModeDict
	case ModeDict:
		return b.EndDict()
	case ModeUL, ModeOL:
		return b.EndList()
	}
	return b
}

func (b *Builder) inDict() bool {
	return b.mode == ModeDict || b.mode == ModeKey || b.mode == ModeValue
}

// EndDict closes the dictionary, padding every key to the widest key and
// indenting wrapped values past the key column.
//
// Wrapped value lines continue at column maxKey+4. Text written before a
// key, such as a leading Tab, is not added, so continuation lines of
// indented keys start left of the value column.
//
// Entries are replayed in the order they were added; key/value pairing is
// not checked.
func (b *Builder) EndDict() *Builder {
	if !b.inDict() {
		return b
	}
	b.mode = ModeNone
	entries := b.takeBuffer()

	maxKey := 0
	for _, e := range entries {
		if e.mode == ModeKey {
			maxKey = max(maxKey, b.measure(e.joined()))
		}
	}
	for _, e := range entries {
		switch e.mode {
		case ModeKey:
			b.route(e.text)
			if pad := maxKey - b.measure(e.joined()); pad > 0 {
				b.route([]string{strings.Repeat(" ", pad)})
			}
		case ModeValue:
			b.PushWrapIndent(maxKey + len(tabText))
			b.route([]string{tabText})
			b.route(e.text)
			b.PopWrapIndent()
		default:
			b.route(e.text)
		}
	}
	return b
}

// UL opens an unordered list.
func (b *Builder) UL() *Builder {
	b.mode = ModeUL
	return b
}

// OL opens an ordered list and restarts numbering.
func (b *Builder) OL() *Builder {
	b.mode = ModeOL
	b.counter = 0
	return b
}

// LI starts a list item with a bullet or the next number. Outside a list it
// does nothing.
func (b *Builder) LI() *Builder {
	switch b.mode {
	case ModeUL:
		b.mode = ModeULI
		b.Text(b.styles.Bullet.Apply(bulletText))
		b.mode = ModeUL
	case ModeOL:
		b.counter++
		b.mode = ModeOLI
		b.Text(b.styles.Number.Apply(strconv.Itoa(b.counter)))
		b.mode = ModeOL
	}
	return b
}

// EndList closes the list. Labels are aligned to the widest label and item
// text wraps to the column after the label.
func (b *Builder) EndList() *Builder {
	if b.mode != ModeUL && b.mode != ModeOL {
		return b
	}
	ordered := b.mode == ModeOL
	b.mode = ModeNone
	entries := b.takeBuffer()

	maxLabel := 0
	for _, e := range entries {
		if e.mode == ModeULI || e.mode == ModeOLI {
			maxLabel = max(maxLabel, b.measure(e.joined()))
		}
	}
	textOffset := 1
	if ordered {
		textOffset = 2
	}
	for _, e := range entries {
		label := e.joined()
		switch e.mode {
		case ModeULI:
			b.PushWrapIndent(maxLabel + e.marginIndent + 1)
			b.route([]string{label, b.padding(label, maxLabel), " "})
		case ModeOLI:
			b.PushWrapIndent(maxLabel + e.marginIndent + 2)
			b.route([]string{b.padding(label, maxLabel), label, ") "})
		default:
			b.PushWrapIndent(maxLabel + e.marginIndent + textOffset)
			b.route(e.text)
		}
		b.PopWrapIndent()
	}
	return b
}

// EndUL closes an unordered list.
func (b *Builder) EndUL() *Builder {
	return b.EndList()
}

// EndOL closes an ordered list.
func (b *Builder) EndOL() *Builder {
	return b.EndList()
}

func (b *Builder) takeBuffer() []bufferEntry {
	entries := b.buffer
	b.buffer = nil
	return entries
}

// padding returns the spaces that bring s up to width visible columns.
func (b *Builder) padding(s string, width int) string {
	n := width - b.measure(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
