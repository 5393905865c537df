package helptext

import (
	"io"
	"strings"
)

// String renders the document at the default width.
func (b *Builder) String() string {
	return b.Render(-1)
}

// WriteTo writes the rendered document to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Render(-1))
	return int64(n), err
}

// Render returns the document as one string. Text still buffered in an
// open dict or list is not included.
//
// Wrapping happens only when enabled on the Builder and the terminal is
// interactive. width is used when it is positive and fits the terminal,
// otherwise the terminal width is used.
func (b *Builder) Render(width int) string {
	width = b.effectiveWidth(width)
	var out strings.Builder
	if width <= 0 {
		for _, f := range b.fragments {
			for _, part := range f.text {
				out.WriteString(part)
			}
		}
		return out.String()
	}

	lastLineLength := 0
	for _, f := range b.fragments {
		lines := strings.Split(strings.Join(f.text, ""), "\n")
		for i, line := range lines {
			if i > 0 {
				out.WriteByte('\n')
				lastLineLength = 0
			}
			wrapped := b.wrapLine(line, f.wrapIndent, width, lastLineLength)
			out.WriteString(wrapped)
			if nl := strings.LastIndexByte(wrapped, '\n'); nl >= 0 {
				lastLineLength = b.measure(wrapped[nl+1:])
			} else {
				lastLineLength += b.measure(wrapped)
			}
		}
	}
	return out.String()
}

func (b *Builder) effectiveWidth(width int) int {
	if !b.cfg.wrap || b.cfg.terminal == nil || !b.cfg.terminal.Interactive() {
		return -1
	}
	columns := b.cfg.terminal.Width()
	if width > 0 && (columns <= 0 || width <= columns) {
		return width
	}
	return columns
}

// wrapLine greedily fills rows of at most width columns with the
// space-separated words of line. The first row continues a line that
// already holds carry columns. Continuation rows start with indent empty
// cells so that joining with spaces yields indent leading spaces.
//
// A word wider than a fresh row is placed on it anyway. Whitespace that
// falls on a wrap point is dropped; an escape-only word there is kept on
// the current row without a separator.
func (b *Builder) wrapLine(line string, indent, width, carry int) string {
	words := strings.Split(line, " ")
	rows := [][]string{nil}
	rowWidth := carry
	fresh := carry == 0
	for _, word := range words {
		row := rows[len(rows)-1]
		wordWidth := b.measure(word)
		sep := 0
		if len(row) > 0 {
			sep = 1
		}
		if rowWidth+sep+wordWidth > width && !fresh {
			if word == "" {
				continue
			}
			if wordWidth == 0 {
				// Escape sequences stay on the row, joined to its last cell.
				if n := len(row); n > 0 {
					row[n-1] += word
				} else {
					rows[len(rows)-1] = append(row, word)
				}
				continue
			}
			row = make([]string, indent, indent+1)
			rows = append(rows, row)
			rowWidth = max(indent-1, 0)
			sep = 0
			if indent > 0 {
				sep = 1
			}
		}
		rows[len(rows)-1] = append(row, word)
		rowWidth += sep + wordWidth
		fresh = false
	}

	joined := make([]string, len(rows))
	for i, row := range rows {
		joined[i] = strings.Join(row, " ")
	}
	return strings.Join(joined, "\n")
}
