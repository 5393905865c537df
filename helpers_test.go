package helptext

import (
	"regexp"
	"testing"

	"pkt.systems/helptext/style"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = osc8Regexp.ReplaceAllString(s, "")
	s = ansiRegexp.ReplaceAllString(s, "")
	return s
}

func plainEngine() *style.Engine {
	return style.New(style.WithProbe(nil))
}

func colorEngine() *style.Engine {
	return style.New(style.WithProbe(nil), style.WithForce(true))
}

// newPlain returns a Builder that never styles and never wraps.
func newPlain(t *testing.T, name string, opts ...Option) *Builder {
	t.Helper()
	return New(name, append([]Option{WithEngine(plainEngine())}, opts...)...)
}

// newWrapped returns an unstyled Builder wrapping for a terminal of the given width.
func newWrapped(t *testing.T, width int, opts ...Option) *Builder {
	t.Helper()
	return newPlain(t, "doc", append([]Option{WithWrap(true), WithTerminal(FixedWidth(width))}, opts...)...)
}
