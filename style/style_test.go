package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProbe bool

func (p fakeProbe) ColorSupported() bool { return bool(p) }

func forcedEngine() *Engine {
	return New(WithProbe(nil), WithForce(true))
}

func TestComposeJoinsCodes(t *testing.T) {
	e := forcedEngine()
	f := e.Compose(Pair(1, 22), Pair(4, 24))
	assert.Equal(t, "\x1b[1;4mhi\x1b[22;24m", f.Apply("hi"))
}

func TestComposeDedupesAcrossFuncs(t *testing.T) {
	e := forcedEngine()
	a, b, c := Pair(1, 22), Pair(4, 24), Pair(36, 39)
	ab := e.Compose(a, b)
	bc := e.Compose(b, c)

	abc := e.Compose(ab, bc)
	assert.Equal(t, []Token{a, b, c}, abc.Tokens())
	assert.Equal(t, "\x1b[1;4;36mx\x1b[22;24;39m", abc.Apply("x"))

	cba := e.Compose(bc, ab)
	assert.ElementsMatch(t, abc.Tokens(), cba.Tokens())
}

func TestComposeSharesCloseCodes(t *testing.T) {
	e := forcedEngine()
	p := e.Palette()
	assert.Equal(t, "\x1b[1;2mx\x1b[22m", e.Compose(p.Bold, p.Dim).Apply("x"))
}

func TestComposeFiltersMalformed(t *testing.T) {
	e := forcedEngine()
	f := e.Compose(
		Pair(1, 22),
		Token{Open: "3"},
		Pair(1.5, 22),
		"not a token",
		nil,
		[]any{[]Token{Pair("38;5;208", 39)}, 42},
	)
	assert.Equal(t, []Token{Pair(1, 22), Pair("38;5;208", 39)}, f.Tokens())
}

func TestPairAcceptsIntegerKinds(t *testing.T) {
	want := Token{Open: "1", Close: "22"}
	for _, tok := range []Token{
		Pair(int8(1), int16(22)),
		Pair(int32(1), int64(22)),
		Pair(uint(1), uint16(22)),
		Pair(uint32(1), uint64(22)),
		Pair(uint8(1), 22),
	} {
		assert.Equal(t, want, tok)
	}
	assert.False(t, Pair(int64(-1), 22).Valid())

	e := forcedEngine()
	assert.Equal(t, "\x1b[1mx\x1b[22m", e.Compose(Pair(int64(1), uint(22))).Apply("x"))
}

func TestEmptyFuncIsIdentity(t *testing.T) {
	e := forcedEngine()
	assert.Equal(t, "plain", e.Compose().Apply("plain"))
	assert.Equal(t, "plain", Func{}.Apply("plain"))
}

func TestEnablementIsCheckedAtCallTime(t *testing.T) {
	e := New(WithProbe(nil))
	bold := e.Palette().Bold
	assert.Equal(t, "x", bold.Apply("x"))

	e.Force(true)
	assert.True(t, e.Forced())
	assert.Equal(t, "\x1b[1mx\x1b[22m", bold.Apply("x"))

	e.Force(false)
	assert.Equal(t, "x", bold.Apply("x"))
}

func TestEnabledFollowsProbe(t *testing.T) {
	assert.True(t, New(WithProbe(fakeProbe(true))).Enabled())
	assert.False(t, New(WithProbe(fakeProbe(false))).Enabled())
	assert.True(t, New(WithProbe(fakeProbe(false)), WithForce(true)).Enabled())
}

func TestComposeRebindsToEngine(t *testing.T) {
	off := New(WithProbe(nil))
	on := forcedEngine()
	bold := off.Palette().Bold
	assert.Equal(t, "x", bold.Apply("x"))
	assert.Equal(t, "\x1b[1mx\x1b[22m", on.Compose(bold).Apply("x"))
	assert.Same(t, on, on.Compose(bold).Engine())
}

func TestColorFamilies(t *testing.T) {
	e := forcedEngine()
	p := e.Palette()
	assert.Equal(t, "\x1b[36mx\x1b[39m", p.Cyan.Apply("x"))
	assert.Equal(t, "\x1b[96mx\x1b[39m", p.Cyan.Bright.Apply("x"))
	assert.Equal(t, "\x1b[46mx\x1b[49m", p.Cyan.BG.Apply("x"))
	assert.Equal(t, "\x1b[106mx\x1b[49m", p.Cyan.BrightBG.Apply("x"))
	assert.Equal(t, "\x1b[30mx\x1b[39m", p.Black.Apply("x"))
	assert.Equal(t, "\x1b[97mx\x1b[39m", p.White.Bright.Apply("x"))

	param := e.Compose(p.Cyan.Bright, p.Underline)
	assert.Equal(t, "\x1b[96;4mx\x1b[39;24m", param.Apply("x"))
}

func TestIndexedAndRGB(t *testing.T) {
	e := forcedEngine()
	orange := e.Indexed(208)
	assert.Equal(t, "\x1b[38;5;208mx\x1b[39m", orange.Apply("x"))
	assert.Equal(t, "\x1b[48;5;208mx\x1b[49m", orange.BG.Apply("x"))
	assert.Equal(t, "\x1b[38;2;1;2;3mx\x1b[39m", e.RGB(1, 2, 3).Apply("x"))
}

func TestWithExtendsFunc(t *testing.T) {
	e := forcedEngine()
	p := e.Palette()
	f := p.Bold.With(p.Red, p.Bold)
	assert.Equal(t, []Token{Pair(1, 22), Pair(31, 39)}, f.Tokens())
}

func TestStylingThenCleaningRoundTrips(t *testing.T) {
	e := forcedEngine()
	p := e.Palette()
	funcs := []Func{p.Bold, p.Dim, p.Underline, p.Green.Bright, e.Indexed(99).BG, e.Compose(p.Bold, p.Magenta)}
	for _, text := range []string{"", "a", "hello world", "tab\there", "ünïcode ✓"} {
		for _, f := range funcs {
			assert.Equal(t, text, Clean(f.Apply(text)))
		}
	}
}
