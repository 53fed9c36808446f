package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadThemeWithNoPathReturnsDefault(t *testing.T) {
	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme(\"\"): %v", err)
	}
	if theme.Background == theme.Foreground {
		t.Fatalf("default theme background and foreground look unset")
	}
}

func TestLoadThemeOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	content := `
foreground = { L = 0.9, C = 0, H = 0 }
background = { L = 0.1, C = 0, H = 0 }
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Foreground.L != 0.9 || theme.Background.L != 0.1 {
		t.Fatalf("Foreground = %+v, Background = %+v, want overridden L values", theme.Foreground, theme.Background)
	}
}
