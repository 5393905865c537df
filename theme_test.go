package helptext

import (
	"strings"
	"testing"
)

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{"amber", "boring", "default", "ocean"}
	for _, name := range expected {
		theme, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if theme.Name() != name {
			t.Fatalf("expected theme name %q, got %q", name, theme.Name())
		}
	}

	available := AvailableThemes()
	if strings.Join(available, ",") != strings.Join(expected, ",") {
		t.Fatalf("unexpected available themes: %v", available)
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	theme, ok := ThemeByName("  OCEAN ")
	if !ok || theme.Name() != "ocean" {
		t.Fatalf("expected ocean theme, got %v %v", theme, ok)
	}
	theme, ok = ThemeByName("")
	if !ok || theme.Name() != DefaultTheme().Name() {
		t.Fatalf("expected empty name to select the default theme")
	}
	if _, ok := ThemeByName("solarized"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}
}

func TestBoringThemeIsUnstyled(t *testing.T) {
	boring, _ := ThemeByName("boring")
	b := New("doc", WithEngine(colorEngine()), WithTheme(boring))
	b.Usage().Space().Flag("-v", "--verbose").Space().Param("file")
	got := b.String()
	if got != "Usage: -v, --verbose file" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestThemeStylesFollowBuilderEngine(t *testing.T) {
	ocean, _ := ThemeByName("ocean")

	styled := New("doc", WithEngine(colorEngine()), WithTheme(ocean)).Param("x").String()
	if !strings.Contains(styled, "\x1b[38;5;45;4m") {
		t.Fatalf("expected indexed param style, got %q", styled)
	}

	plain := New("doc", WithEngine(plainEngine()), WithTheme(ocean)).Param("x").String()
	if plain != "x" {
		t.Fatalf("expected unstyled param, got %q", plain)
	}
}

func TestNewTheme(t *testing.T) {
	custom := NewTheme("custom", Styles{Title: colorEngine().Palette().Bold})
	if custom.Name() != "custom" {
		t.Fatalf("unexpected name %q", custom.Name())
	}
	got := New("Hi", WithEngine(colorEngine()), WithTheme(custom)).Title().String()
	if got != "\x1b[1mHi\x1b[22m" {
		t.Fatalf("unexpected title: %q", got)
	}
}
