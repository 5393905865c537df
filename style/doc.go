// Package style composes ANSI SGR style functions and measures text by its
// visible width.
//
// A Func wraps text between the open codes and the close codes of a
// de-duplicated Token set. Funcs compose with each other and with raw Tokens:
//
//	heading := style.Compose(style.Bold, style.Cyan.Bright)
//	fmt.Println(heading.Apply("Usage:"))
//
// Whether a Func emits escape sequences is decided each time it is applied,
// by the Engine it is bound to: forcing or un-forcing color on an Engine
// affects Funcs that were composed earlier. Package-level helpers use the
// shared Default engine.
//
// Measurement helpers (Clean, Len, Width, Pad, PadStart, PadEnd) ignore
// embedded CSI and OSC escape sequences.
package style
