package docspec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
name: tool
summary: does things
usage:
  - "[flags] <file>"
description:
  - First paragraph.
flags:
  - names: ["-v", "--verbose"]
    description: log more
  - names: ["-o"]
    arg: path
    description: output
params:
  - name: file
    description: input file
sections:
  - title: Notes
    ordered: true
    items: [a, b]
links:
  - text: docs
    url: https://example.com
`

const sampleTOML = `
name = "tool"
summary = "does things"
usage = ["[flags] <file>"]
description = ["First paragraph."]

[[flags]]
names = ["-v", "--verbose"]
description = "log more"

[[flags]]
names = ["-o"]
arg = "path"
description = "output"

[[params]]
name = "file"
description = "input file"

[[sections]]
title = "Notes"
ordered = true
items = ["a", "b"]

[[links]]
text = "docs"
url = "https://example.com"
`

func TestParseYAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	fromTOML, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, "tool", fromYAML.Name)
	require.Len(t, fromYAML.Flags, 2)
	assert.Equal(t, []string{"-v", "--verbose"}, fromYAML.Flags[0].Names)
	assert.Equal(t, "path", fromYAML.Flags[1].Arg)
	assert.True(t, fromYAML.Sections[0].Ordered)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("summary: x\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrNoName)

	_, err = Parse(nil, FormatYAML)
	assert.ErrorIs(t, err, ErrNoName)

	_, err = Parse([]byte("name: x\ncolour: red\n"), FormatYAML)
	assert.Error(t, err, "unknown yaml fields are rejected")

	_, err = Parse([]byte("name = \"x\"\ncolour = \"red\"\n"), FormatTOML)
	assert.Error(t, err, "unknown toml fields are rejected")

	_, err = Parse([]byte("name: x\n"), Format("json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Parse([]byte{0xff, 0xfe}, FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestParseStripsControlCharacters(t *testing.T) {
	doc, err := Parse([]byte("name: \"to\\e[31mol\"\nsummary: \"a\\rb\"\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "to[31mol", doc.Name)
	assert.Equal(t, "ab", doc.Summary)
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"help.yaml", FormatYAML},
		{"help.YML", FormatYAML},
		{"dir/help.toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	for _, path := range []string{"help.json", "help"} {
		_, err := FormatFromPath(path)
		assert.ErrorIs(t, err, ErrUnknownFormat, path)
	}
}

func TestReadOneByteAtATime(t *testing.T) {
	doc, err := Read(iotest.OneByteReader(strings.NewReader("name: wérk\nsummary: 日本\n")), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "wérk", doc.Name)
	assert.Equal(t, "日本", doc.Summary)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o644))

	doc, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "tool", doc.Name)

	// An explicit format overrides the extension.
	odd := filepath.Join(dir, "tool.txt")
	require.NoError(t, os.WriteFile(odd, []byte(sampleYAML), 0o644))
	doc, err = Load(odd, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "does things", doc.Summary)

	_, err = Load(odd, "")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
