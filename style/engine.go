package style

import (
	"sync/atomic"

	"pkt.systems/helptext/internal/termcap"
)

const (
	csi      = "\x1b["
	sgrFinal = "m"
)

// Probe reports whether the output supports color.
type Probe interface {
	ColorSupported() bool
}

// Engine decides whether composed Funcs emit escape sequences.
type Engine struct {
	forced atomic.Bool
	probe  Probe
}

// Option configures an Engine.
type Option func(*Engine)

// WithProbe sets the capability probe consulted when color is not forced.
// A nil probe means color is only emitted when forced.
func WithProbe(p Probe) Option {
	return func(e *Engine) {
		e.probe = p
	}
}

// WithForce starts the engine with color forced on or off.
func WithForce(force bool) Option {
	return func(e *Engine) {
		e.forced.Store(force)
	}
}

// New returns an Engine probing standard output unless WithProbe says otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{probe: termcap.Stdout()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

var defaultEngine = New()

// Default returns the shared engine used by the package-level helpers.
func Default() *Engine {
	return defaultEngine
}

// Force forces color output on, or returns the decision to the probe.
func (e *Engine) Force(force bool) {
	e.forced.Store(force)
}

// Forced reports whether color output is forced.
func (e *Engine) Forced() bool {
	return e.forced.Load()
}

// Enabled reports whether Funcs bound to this engine currently emit color.
func (e *Engine) Enabled() bool {
	if e.forced.Load() {
		return true
	}
	return e.probe != nil && e.probe.ColorSupported()
}

// Compose merges Funcs, Colors and Tokens (slices are flattened) into one
// Func bound to e. Malformed tokens are dropped and duplicates keep their
// first position.
func (e *Engine) Compose(items ...any) Func {
	tokens := dedupe(flattenTokens(nil, items))
	f := Func{engine: e, tokens: tokens}
	if len(tokens) > 0 {
		f.open = csi + joinCodes(tokens, func(t Token) Code { return t.Open }) + sgrFinal
		f.close = csi + joinCodes(tokens, func(t Token) Code { return t.Close }) + sgrFinal
	}
	return f
}

// Func applies a fixed set of SGR tokens to text. The zero Func is the
// identity.
type Func struct {
	engine *Engine
	tokens []Token
	open   string
	close  string
}

// Apply wraps s in the Func's escape sequences when its engine is enabled.
func (f Func) Apply(s string) string {
	if len(f.tokens) == 0 {
		return s
	}
	e := f.engine
	if e == nil {
		e = defaultEngine
	}
	if !e.Enabled() {
		return s
	}
	return f.open + s + f.close
}

// Tokens returns a copy of the de-duplicated token set.
func (f Func) Tokens() []Token {
	out := make([]Token, len(f.tokens))
	copy(out, f.tokens)
	return out
}

// Engine returns the engine f is bound to.
func (f Func) Engine() *Engine {
	if f.engine == nil {
		return defaultEngine
	}
	return f.engine
}

// With composes f with more items on f's engine.
func (f Func) With(items ...any) Func {
	return f.Engine().Compose(append([]any{f}, items...)...)
}

// Compose composes items on the Default engine.
func Compose(items ...any) Func {
	return defaultEngine.Compose(items...)
}

// Force forces color on the Default engine.
func Force(force bool) {
	defaultEngine.Force(force)
}

// Forced reports whether the Default engine forces color.
func Forced() bool {
	return defaultEngine.Forced()
}

// Enabled reports whether the Default engine emits color.
func Enabled() bool {
	return defaultEngine.Enabled()
}
