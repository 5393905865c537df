package helptext

import (
	"pkt.systems/helptext/internal/termcap"
	"pkt.systems/helptext/style"
)

// Terminal describes the output a Builder renders for.
type Terminal interface {
	Width() int
	Interactive() bool
}

// Option configures a Builder.
type Option func(*renderConfig)

type renderConfig struct {
	wrap       bool
	cells      bool
	hyperlinks bool
	terminal   Terminal
	engine     *style.Engine
	theme      Theme
}

func defaultConfig() renderConfig {
	return renderConfig{
		terminal: termcap.Stdout(),
		engine:   style.Default(),
		theme:    DefaultTheme(),
	}
}

// WithWrap enables or disables word wrapping at render time.
func WithWrap(enabled bool) Option {
	return func(cfg *renderConfig) {
		cfg.wrap = enabled
	}
}

// WithTerminal sets the terminal consulted for the wrap width.
func WithTerminal(t Terminal) Option {
	return func(cfg *renderConfig) {
		cfg.terminal = t
	}
}

// WithEngine binds the theme's styles to e.
func WithEngine(e *style.Engine) Option {
	return func(cfg *renderConfig) {
		if e != nil {
			cfg.engine = e
		}
	}
}

// WithTheme sets the theme used by the labelled helpers (Title, Usage, Param, ...).
func WithTheme(t Theme) Option {
	return func(cfg *renderConfig) {
		if t != nil {
			cfg.theme = t
		}
	}
}

// WithCellWidth measures text in terminal cells instead of characters, so
// East Asian wide characters count as two columns when aligning and wrapping.
func WithCellWidth(enabled bool) Option {
	return func(cfg *renderConfig) {
		cfg.cells = enabled
	}
}

// WithHyperlinks enables or disables OSC 8 hyperlinks in Link.
func WithHyperlinks(enabled bool) Option {
	return func(cfg *renderConfig) {
		cfg.hyperlinks = enabled
	}
}

// FixedWidth returns an interactive Terminal of the given width. Use it to
// wrap output that is not going to a terminal.
func FixedWidth(columns int) Terminal {
	return termcap.Fixed{Columns: columns, TTY: true}
}
