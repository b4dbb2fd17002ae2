package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrollbox.toml")
	body := `
width = 200
foreground = "#22AA44"
easing = "linear"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 200 {
		t.Errorf("Width = %d, want 200", cfg.Width)
	}
	if cfg.Foreground != "#22AA44" {
		t.Errorf("Foreground = %q", cfg.Foreground)
	}
	if cfg.Height != Default().Height {
		t.Errorf("Height = %d, want default %d", cfg.Height, Default().Height)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", `width = 0`},
		{"bad color", `foreground = "red"`},
		{"bad easing", `easing = "bounce"`},
		{"negative duration", `animation_ms = -5`},
		{"malformed toml", `width = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scrollbox.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#FF8000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if got != 0xFF8000 {
		t.Errorf("got %#06x, want 0xFF8000", got)
	}

	if _, err := ParseColor("nope"); err == nil {
		t.Error("expected an error for a non-hex color")
	}
}

func TestEasingFunction(t *testing.T) {
	for _, name := range []string{"", "expo", "linear", "quad", "cubic", "LINEAR"} {
		fn, err := EasingFunction(name)
		if err != nil {
			t.Errorf("EasingFunction(%q): %v", name, err)
			continue
		}
		if fn == nil {
			t.Errorf("EasingFunction(%q) returned nil", name)
		}
	}
	if _, err := EasingFunction("bounce"); err == nil {
		t.Error("expected an error for an unknown easing name")
	}
}
