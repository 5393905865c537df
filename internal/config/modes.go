package config

import (
	"fmt"
	"strings"
)

// ColorMode selects when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses auto, always or never. The empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColorMode, s)
	}
}

// Enabled resolves the mode against the detected color support.
func (m ColorMode) Enabled(supported bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return supported
	}
}

// HyperlinkMode selects when OSC 8 hyperlinks are written.
type HyperlinkMode string

const (
	HyperlinksAuto HyperlinkMode = "auto"
	HyperlinksOn   HyperlinkMode = "on"
	HyperlinksOff  HyperlinkMode = "off"
)

// ParseHyperlinkMode parses auto, on or off. The empty string is auto.
func ParseHyperlinkMode(s string) (HyperlinkMode, error) {
	switch HyperlinkMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", HyperlinksAuto:
		return HyperlinksAuto, nil
	case HyperlinksOn:
		return HyperlinksOn, nil
	case HyperlinksOff:
		return HyperlinksOff, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, on or off)", ErrInvalidHyperlinkMode, s)
	}
}

// Enabled resolves the mode, calling detect only for auto.
func (m HyperlinkMode) Enabled(detect func() bool) bool {
	switch m {
	case HyperlinksOn:
		return true
	case HyperlinksOff:
		return false
	default:
		return detect != nil && detect()
	}
}

// ColorMode returns the parsed color setting.
func (c *Config) ColorMode() ColorMode {
	m, err := ParseColorMode(c.Color)
	if err != nil {
		return ColorAuto
	}
	return m
}

// HyperlinkMode returns the parsed hyperlinks setting.
func (c *Config) HyperlinkMode() HyperlinkMode {
	m, err := ParseHyperlinkMode(c.Hyperlinks)
	if err != nil {
		return HyperlinksAuto
	}
	return m
}
