// Package config loads the helptext command's settings. Values are layered:
// built-in defaults, then a config file, then HELPTEXT_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"pkt.systems/helptext/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "HELPTEXT_"

var (
	// ErrInvalidColorMode is returned for a color setting other than auto, always or never.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidHyperlinkMode is returned for a hyperlinks setting other than auto, on or off.
	ErrInvalidHyperlinkMode = errors.New("invalid hyperlink mode")
	// ErrUnsupportedFile is returned for a config file that is neither TOML nor YAML.
	ErrUnsupportedFile = errors.New("unsupported config file type")
)

// Config holds the command settings.
type Config struct {
	Color      string `koanf:"color"`
	Width      int    `koanf:"width"`
	Wrap       bool   `koanf:"wrap"`
	Cells      bool   `koanf:"cells"`
	Theme      string `koanf:"theme"`
	Box        bool   `koanf:"box"`
	Hyperlinks string `koanf:"hyperlinks"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"color":      string(ColorAuto),
		"width":      0,
		"wrap":       true,
		"cells":      false,
		"theme":      "default",
		"box":        false,
		"hyperlinks": string(HyperlinksAuto),
	}
}

// Load reads the configuration. An empty path searches the XDG config
// directories for helptext/config.toml, then helptext/config.yaml; a missing
// file there is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = Locate()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Locate returns the first helptext config file found in the XDG config
// directories, or "" when there is none.
func Locate() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path, err := xdg.SearchConfigFile(filepath.Join("helptext", name))
		if err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := ParseColorMode(c.Color); err != nil {
		return err
	}
	if _, err := ParseHyperlinkMode(c.Hyperlinks); err != nil {
		return err
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d: must not be negative", c.Width)
	}
	return nil
}
