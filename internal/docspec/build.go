package docspec

import (
	"strings"

	"pkt.systems/helptext"
)

// Build lays the document out on a new Builder:
//
//	name - summary
//
//	Usage:
//	    name [flags] <file>
//
//	Description paragraphs.
//
//	Flags:
//	    -v, --verbose    log more
//
//	Parameters:
//	    file    input file
//
// followed by one list per section and the links.
func (d *Document) Build(opts ...helptext.Option) *helptext.Builder {
	b := helptext.New(d.Name, opts...)

	b.Title()
	if d.Summary != "" {
		b.PushWrapIndent(len([]rune(d.Name)) + 3).Text(" - ", d.Summary).PopWrapIndent()
	}
	b.NL()

	if len(d.Usage) > 0 {
		b.NL().Usage().NL()
		for _, line := range d.Usage {
			d.usageLine(b, line)
		}
	}

	for _, p := range d.Description {
		b.NL().Text(strings.TrimRight(p, "\n")).NL()
	}

	if len(d.Flags) > 0 {
		b.NL().Flags().NL().Dict()
		for _, f := range d.Flags {
			b.Tab().Key().Flag(f.Names...)
			if f.Arg != "" {
				b.Space().Param(f.Arg)
			}
			b.End().Value().Text(f.Description).End().NL()
		}
		b.EndDict()
	}

	if len(d.Params) > 0 {
		b.NL().Params().NL().Dict()
		for _, p := range d.Params {
			b.Tab().Key().Param(p.Name).End().Value().Text(p.Description).End().NL()
		}
		b.EndDict()
	}

	for _, s := range d.Sections {
		b.NL().Bold(s.Title + ":").NL()
		if s.Ordered {
			b.OL()
		} else {
			b.UL()
		}
		for _, item := range s.Items {
			b.Tab().LI().Text(item).NL()
		}
		b.EndList()
	}

	if len(d.Links) > 0 {
		b.NL().Bold("Links:").NL()
		for _, l := range d.Links {
			b.Tab().Link(l.Text, l.URL).NL()
		}
	}
	return b
}

// usageLine writes one indented usage line. Words in angle brackets are
// parameters.
func (d *Document) usageLine(b *helptext.Builder, line string) {
	b.Tab().Name()
	b.PushWrapIndent(4 + len([]rune(d.Name)) + 1)
	for _, word := range strings.Fields(line) {
		b.Space()
		if len(word) > 2 && strings.HasPrefix(word, "<") && strings.HasSuffix(word, ">") {
			b.Param(word[1 : len(word)-1])
			continue
		}
		b.Text(word)
	}
	b.PopWrapIndent()
	b.NL()
}
