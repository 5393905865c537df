package docspec

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrTooLarge reports input over the read limit.
	ErrTooLarge = errors.New("input too large")
)

const (
	minBinarySample = 64
	maxControlPct   = 2

	// MaxDocumentSize is the largest document Read accepts.
	MaxDocumentSize = 1 << 20
	readChunk       = 4096
)

// Validate returns an error if src is not valid UTF-8 or appears binary.
func Validate(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

// readValidated reads r to the end, validating as it goes so binary input
// is rejected without reading all of it.
func readValidated(r io.Reader) ([]byte, error) {
	var (
		v       validator
		out     []byte
		pending []byte
	)
	buf := make([]byte, readChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if len(out)+n > MaxDocumentSize {
				return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, MaxDocumentSize)
			}
			out = append(out, buf[:n]...)
			pending = append(pending, buf[:n]...)
			rest, verr := v.addBytes(pending)
			if verr != nil {
				return nil, verr
			}
			pending = append(pending[:0], rest...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if len(pending) > 0 {
		return nil, ErrInvalidUTF8
	}
	return out, nil
}

type validator struct {
	total   int
	control int
}

// addBytes validates the complete runes in b and returns the trailing
// bytes of an incomplete rune.
func (v *validator) addBytes(b []byte) ([]byte, error) {
	i := 0
	for i < len(b) {
		if !utf8.FullRune(b[i:]) {
			break
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, ErrInvalidUTF8
		}
		if err := v.addRune(r, size); err != nil {
			return nil, err
		}
		i += size
	}
	return b[i:], nil
}

func (v *validator) addRune(r rune, size int) error {
	if r == 0 {
		return ErrBinaryInput
	}
	v.total += size
	if isControlRune(r) {
		v.control++
		if v.total >= minBinarySample && v.control*100 >= v.total*maxControlPct {
			return ErrBinaryInput
		}
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}

// sanitize drops control characters other than newline and tab, so text
// from a document cannot carry its own escape sequences into the layout.
func sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == '\r' || isControlRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	dst := make([]byte, 0, len(s))
	for _, r := range s {
		if r == '\r' || isControlRune(r) {
			continue
		}
		dst = utf8.AppendRune(dst, r)
	}
	return string(dst)
}
