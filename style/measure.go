package style

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
)

// ErrNotText reports a non-text value passed to StripValue.
var ErrNotText = errors.New("style: expected text")

// escapeRegexp matches CSI sequences introduced by ESC [ or the 8-bit CSI
// (U+009B), and OSC sequences terminated by BEL or ESC \.
var escapeRegexp = regexp.MustCompile(`[\x1b\x{9b}][\[\]()#;?]*(?:(?:(?:(?:;[-a-zA-Z\d/#&.:=?%@~_]+)*|[a-zA-Z\d]+(?:;[-a-zA-Z\d/#&.:=?%@~_]*)*)?(?:\x07|\x1b\\))|(?:(?:\d{1,4}(?:;\d{0,4})*)?[\dA-PR-TZcf-nq-uy=><~]))`)

// Clean strips every escape sequence from s.
func Clean(s string) string {
	if !strings.ContainsAny(s, "\x1b\u009b") {
		return s
	}
	return escapeRegexp.ReplaceAllString(s, "")
}

// StripValue is Clean for values of unknown type. Strings, byte slices and
// fmt.Stringers are accepted; anything else is a usage error.
func StripValue(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return Clean(s), nil
	case []byte:
		return Clean(string(s)), nil
	case fmt.Stringer:
		return Clean(s.String()), nil
	default:
		return "", fmt.Errorf("%w, got %T", ErrNotText, v)
	}
}

// Len returns the visible width of s: the number of characters left after
// stripping escape sequences.
func Len(s string) int {
	if s == "" {
		return 0
	}
	return utf8.RuneCountInString(Clean(s))
}

// Width returns the number of terminal cells s occupies, counting East Asian
// wide characters as two.
func Width(s string) int {
	if s == "" {
		return 0
	}
	return ansi.PrintableRuneWidth(Clean(s))
}

// Pad centers s within width visible characters. Extra fill goes after s.
// Text already at or beyond width is returned unchanged.
func Pad(s string, width int, fill ...rune) string {
	n := width - Len(s)
	if n <= 0 {
		return s
	}
	f := fillString(fill)
	left := n / 2
	return strings.Repeat(f, left) + s + strings.Repeat(f, n-left)
}

// PadStart right-aligns s within width visible characters.
func PadStart(s string, width int, fill ...rune) string {
	n := width - Len(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(fillString(fill), n) + s
}

// PadEnd left-aligns s within width visible characters.
func PadEnd(s string, width int, fill ...rune) string {
	n := width - Len(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(fillString(fill), n)
}

func fillString(fill []rune) string {
	if len(fill) == 0 || fill[0] == 0 {
		return " "
	}
	return string(fill[0])
}
