package helptext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pkt.systems/helptext/style"
)

// Mode is the structured-content state of a Builder.
type Mode uint8

const (
	// ModeNone appends straight to the document.
	ModeNone Mode = iota
	// ModeDict buffers dictionary text between keys and values.
	ModeDict
	// ModeKey buffers a dictionary key.
	ModeKey
	// ModeValue buffers a dictionary value.
	ModeValue
	// ModeUL buffers unordered list text.
	ModeUL
	// ModeOL buffers ordered list text.
	ModeOL
	// ModeULI buffers an unordered item label.
	ModeULI
	// ModeOLI buffers an ordered item label.
	ModeOLI
)

var modeNames = [...]string{"none", "dict", "key", "value", "ul", "ol", "uli", "oli"}

// String returns the mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

const (
	tabText    = "    "
	bulletText = "•"
)

// fragment is a run of document text rendered with one wrap indent.
type fragment struct {
	wrapIndent int
	text       []string
}

// bufferEntry is a run of text captured while a dict or list is open.
type bufferEntry struct {
	mode         Mode
	text         []string
	marginIndent int
}

func (e bufferEntry) joined() string {
	return strings.Join(e.text, "")
}

// margin tracks the whitespace at the start of the current output line.
type margin struct {
	inMargin bool
	indent   int
}

func (m *margin) reset() {
	m.inMargin = true
	m.indent = 0
}

func (m *margin) update(text string) {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		m.reset()
		text = text[i+1:]
	}
	if text == "" || !m.inMargin {
		return
	}
	trimmed := strings.TrimLeft(text, " \t")
	m.indent += utf8.RuneCountInString(text) - utf8.RuneCountInString(trimmed)
	if trimmed != "" {
		m.inMargin = false
	}
}

// Builder assembles a help text document. Methods return the Builder so
// calls chain:
//
//	b := helptext.New("mytool")
//	b.Title().NL().NL().Usage().NL().Tab().Name().Space().Param("file").NL()
//	fmt.Print(b)
//
// A Builder is not safe for concurrent use.
type Builder struct {
	name   string
	cfg    renderConfig
	styles Styles

	mode      Mode
	fragments []fragment
	buffer    []bufferEntry
	indents   []int
	margin    margin
	counter   int
}

// New returns an empty Builder for a document titled name.
func New(name string, opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	b := &Builder{
		name:    name,
		cfg:     cfg,
		styles:  cfg.theme.Styles().bind(cfg.engine),
		indents: []int{0},
	}
	b.margin.reset()
	return b
}

// Mode returns the current structured-content mode.
func (b *Builder) Mode() Mode {
	return b.mode
}

// Wrap enables or disables word wrapping at render time.
func (b *Builder) Wrap(enabled bool) *Builder {
	b.cfg.wrap = enabled
	return b
}

// Append adds text. Pieces may be strings, string slices, nested []any,
// fmt.Stringers or any other value, which is formatted with fmt.Sprint.
// Nil pieces are skipped.
func (b *Builder) Append(pieces ...any) *Builder {
	return b.appendText(flatten(nil, pieces))
}

// Text adds strings.
func (b *Builder) Text(parts ...string) *Builder {
	return b.appendText(parts)
}

func flatten(dst []string, pieces []any) []string {
	for _, p := range pieces {
		switch v := p.(type) {
		case nil:
		case string:
			dst = append(dst, v)
		case []string:
			dst = append(dst, v...)
		case []any:
			dst = flatten(dst, v)
		case fmt.Stringer:
			dst = append(dst, v.String())
		default:
			dst = append(dst, fmt.Sprint(v))
		}
	}
	return dst
}

func (b *Builder) appendText(parts []string) *Builder {
	if len(parts) == 0 {
		return b
	}
	b.route(parts)
	b.margin.update(strings.Join(parts, ""))
	return b
}

// route stores parts according to the current mode, merging with the last
// fragment or buffer entry when it has the same wrap indent or mode.
func (b *Builder) route(parts []string) {
	if b.mode == ModeNone {
		indent := b.wrapIndent()
		if n := len(b.fragments); n > 0 && b.fragments[n-1].wrapIndent == indent {
			b.fragments[n-1].text = append(b.fragments[n-1].text, parts...)
			return
		}
		b.fragments = append(b.fragments, fragment{
			wrapIndent: indent,
			text:       append([]string(nil), parts...),
		})
		return
	}
	if n := len(b.buffer); n > 0 && b.buffer[n-1].mode == b.mode {
		b.buffer[n-1].text = append(b.buffer[n-1].text, parts...)
		return
	}
	b.buffer = append(b.buffer, bufferEntry{
		mode:         b.mode,
		text:         append([]string(nil), parts...),
		marginIndent: b.margin.indent,
	})
}

// PushWrapIndent sets the column continuation lines wrap to until the
// matching PopWrapIndent.
func (b *Builder) PushWrapIndent(n int) *Builder {
	if n < 0 {
		n = 0
	}
	b.indents = append(b.indents, n)
	return b
}

// PopWrapIndent restores the previous wrap indent. The base indent is never
// popped.
func (b *Builder) PopWrapIndent() *Builder {
	if len(b.indents) > 1 {
		b.indents = b.indents[:len(b.indents)-1]
	}
	return b
}

func (b *Builder) wrapIndent() int {
	return b.indents[len(b.indents)-1]
}

// Bold adds text in the theme's label style.
func (b *Builder) Bold(text string) *Builder {
	return b.Text(b.styles.Label.Apply(text))
}

// Title adds the document name in the title style.
func (b *Builder) Title() *Builder {
	return b.Text(b.styles.Title.Apply(b.name))
}

// Name adds the document name unstyled.
func (b *Builder) Name() *Builder {
	return b.Text(b.name)
}

// NL adds a newline.
func (b *Builder) NL() *Builder {
	return b.Text("\n")
}

// Tab adds four spaces.
func (b *Builder) Tab() *Builder {
	return b.Text(tabText)
}

// Space adds one space.
func (b *Builder) Space() *Builder {
	return b.Text(" ")
}

// Usage adds the "Usage:" label.
func (b *Builder) Usage() *Builder {
	return b.Bold("Usage:")
}

// Flags adds the "Flags:" label.
func (b *Builder) Flags() *Builder {
	return b.Bold("Flags:")
}

// Params adds the "Parameters:" label.
func (b *Builder) Params() *Builder {
	return b.Bold("Parameters:")
}

// Param adds a parameter name in the param style.
func (b *Builder) Param(text string) *Builder {
	return b.Text(b.styles.Param.Apply(text))
}

// Flag adds flag names in the flag style, separated by ", ".
func (b *Builder) Flag(names ...string) *Builder {
	styled := make([]string, len(names))
	for i, name := range names {
		styled[i] = b.styles.Flag.Apply(name)
	}
	return b.Text(strings.Join(styled, ", "))
}

// measure returns the visible width used for alignment and wrapping.
func (b *Builder) measure(s string) int {
	if b.cfg.cells {
		return style.Width(s)
	}
	return style.Len(s)
}
