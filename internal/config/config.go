// Package config loads the voicecheck run configuration.
//
// Every value has a default matching the conventional project layout, so a run
// needs no configuration file at all. When DefaultPath exists in the working
// directory it overrides the defaults key by key.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// DefaultPath is the fixed, working-directory relative config location.
const DefaultPath = "voicecheck.toml"

// Config holds every path and knob a voicecheck job uses.
type Config struct {
	WorkbookPath   string `toml:"workbook_path"`
	DatasetPath    string `toml:"dataset_path"`
	AudioDir       string `toml:"audio_dir"`
	AudioExt       string `toml:"audio_ext"`
	IDPrefix       string `toml:"id_prefix"`
	HeaderRows     int    `toml:"header_rows"`
	MismatchReport string `toml:"mismatch_report"`
	OrphanReport   string `toml:"orphan_report"`
	CheckPreview   int    `toml:"check_preview"`
	FixPreview     int    `toml:"fix_preview"`
	OrphanPreview  int    `toml:"orphan_preview"`
	Language       string `toml:"language"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
}

// Load reads the configuration at path on top of Default. A missing file is not
// an error; exists reports whether one was read.
func Load(path string) (cfg *Config, exists bool, err error) {
	c := Default()

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		exists = true
		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&c); err != nil {
			return nil, false, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, false, fmt.Errorf("open config: %w", err)
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, exists, err
	}
	return &c, exists, nil
}

// LanguageTag returns the parsed operator language.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Japanese
	}
	return tag
}

func (c *Config) normalize() {
	c.WorkbookPath = strings.TrimSpace(c.WorkbookPath)
	c.DatasetPath = strings.TrimSpace(c.DatasetPath)
	c.AudioDir = strings.TrimSpace(c.AudioDir)
	c.AudioExt = strings.TrimSpace(c.AudioExt)
	if c.AudioExt != "" && !strings.HasPrefix(c.AudioExt, ".") {
		c.AudioExt = "." + c.AudioExt
	}
	c.MismatchReport = strings.TrimSpace(c.MismatchReport)
	c.OrphanReport = strings.TrimSpace(c.OrphanReport)
	c.Language = strings.TrimSpace(c.Language)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}
