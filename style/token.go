package style

import (
	"strconv"
	"strings"
)

// Code is an SGR parameter, for example "1" or "38;5;208".
type Code string

// Token is a single open/close SGR pair.
type Token struct {
	Open  Code
	Close Code
}

// Pair builds a Token from two codes, each given as a Code, a string or any
// integer type. Negative integers and other types yield an invalid Token,
// which Compose drops.
func Pair(open, close any) Token {
	return Token{Open: toCode(open), Close: toCode(close)}
}

// Valid reports whether both halves of the pair are present.
func (t Token) Valid() bool {
	return t.Open != "" && t.Close != ""
}

func toCode(v any) Code {
	switch c := v.(type) {
	case Code:
		return c
	case string:
		return Code(strings.TrimSpace(c))
	case int:
		return signedCode(int64(c))
	case int8:
		return signedCode(int64(c))
	case int16:
		return signedCode(int64(c))
	case int32:
		return signedCode(int64(c))
	case int64:
		return signedCode(c)
	case uint:
		return Code(strconv.FormatUint(uint64(c), 10))
	case uint8:
		return Code(strconv.FormatUint(uint64(c), 10))
	case uint16:
		return Code(strconv.FormatUint(uint64(c), 10))
	case uint32:
		return Code(strconv.FormatUint(uint64(c), 10))
	case uint64:
		return Code(strconv.FormatUint(c, 10))
	default:
		return ""
	}
}

func signedCode(n int64) Code {
	if n < 0 {
		return ""
	}
	return Code(strconv.FormatInt(n, 10))
}

// flattenTokens expands items into raw tokens. Funcs and Colors contribute
// their carried token set, slices are walked recursively and anything else
// is ignored.
func flattenTokens(dst []Token, items []any) []Token {
	for _, item := range items {
		switch v := item.(type) {
		case Token:
			dst = append(dst, v)
		case *Token:
			if v != nil {
				dst = append(dst, *v)
			}
		case []Token:
			dst = append(dst, v...)
		case Func:
			dst = append(dst, v.tokens...)
		case *Func:
			if v != nil {
				dst = append(dst, v.tokens...)
			}
		case []Func:
			for _, f := range v {
				dst = append(dst, f.tokens...)
			}
		case Color:
			dst = append(dst, v.Func.tokens...)
		case []any:
			dst = flattenTokens(dst, v)
		}
	}
	return dst
}

// dedupe drops invalid tokens and repeated tokens, keeping first-seen order.
func dedupe(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	seen := make(map[Token]struct{}, len(tokens))
	for _, t := range tokens {
		if !t.Valid() {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// joinCodes joins codes with ';', skipping repeats (bold and dim share the
// close code 22).
func joinCodes(tokens []Token, pick func(Token) Code) string {
	var b strings.Builder
	seen := make(map[Code]struct{}, len(tokens))
	for _, t := range tokens {
		c := pick(t)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(string(c))
	}
	return b.String()
}
