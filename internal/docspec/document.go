// Package docspec reads declarative help documents written in YAML or TOML
// and lays them out with a helptext.Builder.
//
// A document looks like:
//
//	name: mytool
//	summary: does things
//	usage:
//	  - "[flags] <file>"
//	flags:
//	  - names: ["-v", "--verbose"]
//	    description: log more
//	params:
//	  - name: file
//	    description: input file
package docspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pkt.systems/helptext/internal/logging"
)

var (
	// ErrUnknownFormat reports a document format other than YAML or TOML.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrNoName reports a document without a name.
	ErrNoName = errors.New("document has no name")
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath detects the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Document is a help page.
type Document struct {
	Name        string    `yaml:"name" toml:"name"`
	Summary     string    `yaml:"summary" toml:"summary"`
	Usage       []string  `yaml:"usage" toml:"usage"`
	Description []string  `yaml:"description" toml:"description"`
	Flags       []Flag    `yaml:"flags" toml:"flags"`
	Params      []Param   `yaml:"params" toml:"params"`
	Sections    []Section `yaml:"sections" toml:"sections"`
	Links       []Link    `yaml:"links" toml:"links"`
}

// Flag is a command-line flag.
type Flag struct {
	Names       []string `yaml:"names" toml:"names"`
	Arg         string   `yaml:"arg" toml:"arg"`
	Description string   `yaml:"description" toml:"description"`
}

// Param is a positional parameter.
type Param struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
}

// Section is a titled list.
type Section struct {
	Title   string   `yaml:"title" toml:"title"`
	Ordered bool     `yaml:"ordered" toml:"ordered"`
	Items   []string `yaml:"items" toml:"items"`
}

// Link is a reference printed at the end of the page.
type Link struct {
	Text string `yaml:"text" toml:"text"`
	URL  string `yaml:"url" toml:"url"`
}

// Parse decodes a document. Unknown fields are errors.
func Parse(data []byte, format Format) (*Document, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml document: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	doc.sanitize()
	if strings.TrimSpace(doc.Name) == "" {
		return nil, ErrNoName
	}
	return &doc, nil
}

// Read reads and decodes a document from r.
func Read(r io.Reader, format Format) (*Document, error) {
	data, err := readValidated(r)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("docspec")
	logger.Debug().Int("bytes", len(data)).Str("format", string(format)).Msg("Read document")
	return Parse(data, format)
}

// Load reads the document at path, detecting the format from its extension
// unless format is set.
func Load(path string, format Format) (*Document, error) {
	logger := logging.GetLogger("docspec")
	if format == "" {
		detected, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	done := logging.LogOperationStart(logger, "load "+path)
	defer done()
	doc, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (d *Document) sanitize() {
	d.Name = sanitize(d.Name)
	d.Summary = sanitize(d.Summary)
	sanitizeAll(d.Usage)
	sanitizeAll(d.Description)
	for i := range d.Flags {
		sanitizeAll(d.Flags[i].Names)
		d.Flags[i].Arg = sanitize(d.Flags[i].Arg)
		d.Flags[i].Description = sanitize(d.Flags[i].Description)
	}
	for i := range d.Params {
		d.Params[i].Name = sanitize(d.Params[i].Name)
		d.Params[i].Description = sanitize(d.Params[i].Description)
	}
	for i := range d.Sections {
		d.Sections[i].Title = sanitize(d.Sections[i].Title)
		sanitizeAll(d.Sections[i].Items)
	}
	for i := range d.Links {
		d.Links[i].Text = sanitize(d.Links[i].Text)
		d.Links[i].URL = sanitize(d.Links[i].URL)
	}
}

func sanitizeAll(ss []string) {
	for i, s := range ss {
		ss[i] = sanitize(s)
	}
}
