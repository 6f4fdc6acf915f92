package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ukaji3/voicecheck-go/internal/config"
	"github.com/ukaji3/voicecheck-go/internal/logging"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/report"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/scenario"
)

// commandContext carries the per-run state shared by subcommands.
type commandContext struct {
	stdout io.Writer
	stderr io.Writer

	cfg     *config.Config
	logger  *slog.Logger
	console *report.Console
}

func (c *commandContext) setup(command string) error {
	cfg, exists, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: c.stderr,
	})
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger.With("run_id", uuid.NewString(), "command", command)
	c.console = report.NewConsole(c.stdout, cfg.LanguageTag())

	if exists {
		c.logger.Debug("config loaded", "path", config.DefaultPath)
	}
	return nil
}

func (c *commandContext) mappingOptions() voicecheck.MappingOptions {
	return voicecheck.MappingOptions{
		Prefix:     c.cfg.IDPrefix,
		HeaderRows: c.cfg.HeaderRows,
	}
}

// loadMapping reads the workbook mapping, falling back to an empty mapping when
// the workbook cannot be read so the run still completes with zero matches.
func (c *commandContext) loadMapping() *voicecheck.Mapping {
	m, warnings, err := voicecheck.LoadMapping(c.cfg.WorkbookPath, c.mappingOptions())
	for _, w := range warnings {
		c.logger.Warn("workbook read warning", "path", c.cfg.WorkbookPath, "detail", w)
	}
	if err != nil {
		c.logger.Error("workbook unreadable, continuing with empty mapping",
			"path", c.cfg.WorkbookPath,
			"error", err,
		)
		return voicecheck.NewMapping()
	}
	c.logger.Debug("voice mapping loaded", "path", c.cfg.WorkbookPath, "entries", m.Len())
	return m
}

// loadDataset reads the dialogue dataset. A nil result ends the run.
func (c *commandContext) loadDataset() *scenario.Dataset {
	ds, err := scenario.Load(c.cfg.DatasetPath)
	if err != nil {
		c.logger.Error("dataset load failed", "path", c.cfg.DatasetPath, "error", err)
		c.console.Error("Dataset could not be read: %s", c.cfg.DatasetPath)
		return nil
	}
	return ds
}

func (c *commandContext) writeReport(path string, written bool, err error) {
	if err != nil {
		c.logger.Error("report write failed", "path", path, "error", err)
		return
	}
	if written {
		c.console.Blank()
		c.console.Line("Report saved to %s", path)
	}
}
