// Package termcap probes the terminal an output file is attached to.
package termcap

import (
	"os"
	"strconv"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorLevel is the depth of color a terminal accepts.
type ColorLevel int

const (
	// ColorNone means no color output.
	ColorNone ColorLevel = iota
	// ColorBasic is the 16 color ANSI palette.
	ColorBasic
	// Color256 is the indexed 256 color palette.
	Color256
	// ColorTrue is 24-bit color.
	ColorTrue
)

// String returns the level name.
func (l ColorLevel) String() string {
	switch l {
	case ColorBasic:
		return "basic"
	case Color256:
		return "256"
	case ColorTrue:
		return "truecolor"
	default:
		return "none"
	}
}

// Probe reports capabilities of one output file. Color detection runs once.
type Probe struct {
	f *os.File

	once  sync.Once
	level ColorLevel
}

// New returns a Probe for f.
func New(f *os.File) *Probe {
	return &Probe{f: f}
}

var (
	stdoutOnce  sync.Once
	stdoutProbe *Probe
)

// Stdout returns the shared Probe for os.Stdout.
func Stdout() *Probe {
	stdoutOnce.Do(func() {
		stdoutProbe = New(os.Stdout)
	})
	return stdoutProbe
}

// Interactive reports whether the file is a terminal.
func (p *Probe) Interactive() bool {
	if p == nil || p.f == nil {
		return false
	}
	fd := p.f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the terminal column count, falling back to $COLUMNS, or 0
// when neither is known.
func (p *Probe) Width() int {
	if p != nil && p.f != nil {
		fd := int(p.f.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

// ColorLevel returns the color depth derived from the environment
// (NO_COLOR, CLICOLOR_FORCE, TERM, COLORTERM) and the file's tty status.
func (p *Probe) ColorLevel() ColorLevel {
	if p == nil || p.f == nil {
		return ColorNone
	}
	p.once.Do(func() {
		p.level = levelOf(termenv.NewOutput(p.f).EnvColorProfile())
	})
	return p.level
}

// ColorSupported reports whether any color is available.
func (p *Probe) ColorSupported() bool {
	return p.ColorLevel() > ColorNone
}

func levelOf(profile termenv.Profile) ColorLevel {
	switch profile {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.ANSI256:
		return Color256
	case termenv.ANSI:
		return ColorBasic
	default:
		return ColorNone
	}
}

// Fixed is a Probe with preset answers, for piped output rendered at a
// requested width and for tests.
type Fixed struct {
	Columns int
	TTY     bool
	Level   ColorLevel
}

// Interactive returns f.TTY.
func (f Fixed) Interactive() bool { return f.TTY }

// Width returns f.Columns.
func (f Fixed) Width() int { return f.Columns }

// ColorLevel returns f.Level.
func (f Fixed) ColorLevel() ColorLevel { return f.Level }

// ColorSupported reports whether f.Level allows color.
func (f Fixed) ColorSupported() bool { return f.Level > ColorNone }
