package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if c.HeaderRows < 0 {
		return errors.New("header_rows must be >= 0")
	}
	if err := c.validatePreviews(); err != nil {
		return err
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}

func (c *Config) validatePaths() error {
	required := []struct {
		key   string
		value string
	}{
		{"workbook_path", c.WorkbookPath},
		{"dataset_path", c.DatasetPath},
		{"audio_dir", c.AudioDir},
		{"audio_ext", c.AudioExt},
		{"mismatch_report", c.MismatchReport},
		{"orphan_report", c.OrphanReport},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s must be set", r.key)
		}
	}
	if c.AudioExt == "." {
		return errors.New("audio_ext must name an extension")
	}
	return nil
}

func (c *Config) validatePreviews() error {
	for key, value := range map[string]int{
		"check_preview":  c.CheckPreview,
		"fix_preview":    c.FixPreview,
		"orphan_preview": c.OrphanPreview,
	} {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
