package helptext

import (
	"fmt"
	"strings"
	"testing"
)

func TestDictPadsKeysToWidest(t *testing.T) {
	b := newPlain(t, "doc")
	b.Dict().
		Key().Text("a").End().Value().Text("one").End().NL().
		Key().Text("bbb").End().Value().Text("three").End().NL().
		EndDict()
	want := "a      one\nbbb    three\n"
	if got := b.String(); got != want {
		t.Fatalf("unexpected dict\nwant: %q\n got: %q", want, got)
	}
	if b.Mode() != ModeNone || len(b.buffer) != 0 {
		t.Fatalf("dict not closed: mode=%s buffer=%d", b.Mode(), len(b.buffer))
	}
}

func TestDictAlignsStyledKeys(t *testing.T) {
	b := New("doc", WithEngine(colorEngine()))
	b.Dict().
		Tab().Key().Flag("-a").End().Value().Text("short").End().NL().
		Tab().Key().Flag("-b", "--bee").End().Value().Text("long").End().NL().
		End()
	lines := strings.Split(stripANSI(b.String()), "\n")
	want := []string{
		"    -a           short",
		"    -b, --bee    long",
		"",
	}
	if len(lines) != len(want) {
		t.Fatalf("unexpected line count %d: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d mismatch\nwant: %q\n got: %q", i+1, want[i], lines[i])
		}
	}
}

func TestDictValuesWrapPastKeys(t *testing.T) {
	b := newWrapped(t, 20)
	b.Dict().
		Key().Text("a").End().Value().Text("one two three four five").End().NL().
		Key().Text("bbb").End().Value().Text("six").End().NL().
		EndDict()
	want := "a      one two three\n       four five\nbbb    six\n"
	if got := b.Render(-1); got != want {
		t.Fatalf("unexpected wrap\nwant: %q\n got: %q", want, got)
	}
}

func TestDictStateMachine(t *testing.T) {
	b := newPlain(t, "doc")
	b.Key().Value()
	if b.Mode() != ModeNone {
		t.Fatalf("key/value outside dict changed mode to %s", b.Mode())
	}
	b.Dict().Key()
	if b.Mode() != ModeKey {
		t.Fatalf("expected key mode, got %s", b.Mode())
	}
	b.End()
	if b.Mode() != ModeDict {
		t.Fatalf("expected dict mode after end, got %s", b.Mode())
	}
	b.Value().End().End()
	if b.Mode() != ModeNone {
		t.Fatalf("expected dict closed, got %s", b.Mode())
	}
	b.End().EndDict().EndList()
	if b.Mode() != ModeNone {
		t.Fatalf("stray end changed mode to %s", b.Mode())
	}
}

func TestDictKeepsInterleavedText(t *testing.T) {
	b := newPlain(t, "doc")
	b.Dict().Text("[").Key().Text("k").End().Text("|").Value().Text("v").End().Text("]").EndDict()
	if got := b.String(); got != "[k|    v]" {
		t.Fatalf("unexpected interleaved dict: %q", got)
	}
}

func TestDictNotRenderedUntilClosed(t *testing.T) {
	b := newPlain(t, "doc")
	b.Text("head ").Dict().Key().Text("k").End().Value().Text("v")
	if got := b.String(); got != "head " {
		t.Fatalf("open dict leaked into render: %q", got)
	}
}

func TestOrderedListLabels(t *testing.T) {
	b := newPlain(t, "doc")
	b.OL().
		LI().Text("first").NL().
		LI().Text("second").NL().
		LI().Text("third").NL().
		EndList()
	want := "1) first\n2) second\n3) third\n"
	if got := b.String(); got != want {
		t.Fatalf("unexpected list\nwant: %q\n got: %q", want, got)
	}
}

func TestOrderedListRightAlignsNumbers(t *testing.T) {
	b := newPlain(t, "doc")
	b.OL()
	for i := 1; i <= 10; i++ {
		b.LI().Text(fmt.Sprintf("item %d", i)).NL()
	}
	b.EndOL()
	lines := strings.Split(b.String(), "\n")
	if lines[0] != " 1) item 1" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[9] != "10) item 10" {
		t.Fatalf("unexpected tenth line: %q", lines[9])
	}
}

func TestOrderedListRestartsNumbering(t *testing.T) {
	b := newPlain(t, "doc")
	b.OL().LI().Text("a").NL().LI().Text("b").NL().EndList()
	b.OL().LI().Text("c").NL().EndList()
	want := "1) a\n2) b\n1) c\n"
	if got := b.String(); got != want {
		t.Fatalf("unexpected list\nwant: %q\n got: %q", want, got)
	}
}

func TestUnorderedListInMargin(t *testing.T) {
	b := newPlain(t, "doc")
	b.UL().
		Tab().LI().Text("one").NL().
		Tab().LI().Text("two").NL().
		EndUL()
	want := "    • one\n    • two\n"
	if got := b.String(); got != want {
		t.Fatalf("unexpected list\nwant: %q\n got: %q", want, got)
	}
}

func TestListItemsWrapAfterLabel(t *testing.T) {
	b := newWrapped(t, 16)
	b.OL().LI().Text("aaa bbb ccc ddd eee").NL().EndList()
	want := "1) aaa bbb ccc\n   ddd eee\n"
	if got := b.Render(-1); got != want {
		t.Fatalf("unexpected wrap\nwant: %q\n got: %q", want, got)
	}

	b = newWrapped(t, 14)
	b.UL().Tab().LI().Text("aaa bbb ccc ddd").NL().EndList()
	want = "    • aaa bbb\n      ccc ddd\n"
	if got := b.Render(-1); got != want {
		t.Fatalf("unexpected wrap\nwant: %q\n got: %q", want, got)
	}
}

func TestListItemOutsideListIsNoop(t *testing.T) {
	b := newPlain(t, "doc")
	b.LI().Text("x")
	if got := b.String(); got != "x" {
		t.Fatalf("stray LI rendered: %q", got)
	}
	b.Dict().LI()
	if b.Mode() != ModeDict || len(b.buffer) != 0 {
		t.Fatalf("LI inside dict had effect: mode=%s buffer=%d", b.Mode(), len(b.buffer))
	}
}

func TestStyledListLabels(t *testing.T) {
	b := New("doc", WithEngine(colorEngine()))
	b.OL().LI().Text("x").EndList()
	if got := b.String(); got != "\x1b[1m1\x1b[22m) x" {
		t.Fatalf("unexpected styled label: %q", got)
	}
}

func TestDictValueContinuationIgnoresKeyMargin(t *testing.T) {
	b := newWrapped(t, 14)
	b.Dict().Tab().Key().Text("-a").End().Value().Text("one two three four").End().NL().EndDict()
	want := "    -a    one\n      two\n      three\n      four\n"
	if got := b.Render(-1); got != want {
		t.Fatalf("unexpected dict wrap:\n%q\nwant:\n%q", got, want)
	}
}
