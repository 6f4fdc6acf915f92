package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/ukaji3/voicecheck-go/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, exists, err := config.Load(filepath.Join(t.TempDir(), config.DefaultPath))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}
	if *cfg != config.Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.LanguageTag() != language.Japanese {
		t.Errorf("expected Japanese operator language, got %v", cfg.LanguageTag())
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	overrides := map[string]any{
		"workbook_path": " data/script.xlsx ",
		"audio_ext":     "wav",
		"header_rows":   1,
		"language":      "en",
		"log_format":    "JSON",
	}
	data, err := toml.Marshal(overrides)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be read")
	}
	if cfg.WorkbookPath != "data/script.xlsx" {
		t.Errorf("WorkbookPath = %q", cfg.WorkbookPath)
	}
	if cfg.AudioExt != ".wav" {
		t.Errorf("AudioExt = %q, expected .wav", cfg.AudioExt)
	}
	if cfg.HeaderRows != 1 || cfg.LogFormat != "json" {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
	if cfg.DatasetPath != "scenario_voiced.json" {
		t.Errorf("expected untouched default dataset path, got %q", cfg.DatasetPath)
	}
	if cfg.LanguageTag() != language.English {
		t.Errorf("expected English, got %v", cfg.LanguageTag())
	}
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"syntax", "workbook_path = ", "parse config"},
		{"unknown key", "colour = \"red\"", "parse config"},
		{"empty path", "dataset_path = \"\"", "dataset_path"},
		{"negative header", "header_rows = -1", "header_rows"},
		{"zero preview", "fix_preview = 0", "fix_preview"},
		{"bad format", "log_format = \"xml\"", "log_format"},
		{"bad language", "language = \"not a tag!\"", "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.DefaultPath)
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
