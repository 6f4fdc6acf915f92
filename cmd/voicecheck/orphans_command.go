package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/report"
)

func newOrphansCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "orphans",
		Short: "List audio files that no dataset line references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runOrphans(ctx)
			return nil
		},
	}
}

func runOrphans(ctx *commandContext) {
	out := ctx.console
	out.Header("=== Unused voice files ===")

	m := ctx.loadMapping()
	ds := ctx.loadDataset()
	if ds == nil {
		return
	}

	used := voicecheck.UsedVoiceIDs(ds)
	available, err := voicecheck.AvailableVoiceIDs(ctx.cfg.AudioDir, ctx.cfg.AudioExt)
	if err != nil {
		ctx.logger.Error("audio directory unreadable", "path", ctx.cfg.AudioDir, "error", err)
		out.Error("Audio directory could not be read: %s", ctx.cfg.AudioDir)
		return
	}
	orphans := voicecheck.FindOrphans(available, used)

	out.Line("Voice ids in use: %d", len(used))
	out.Line("Audio files available: %d", len(available))
	out.Line("Unused files: %d", len(orphans))
	out.Line("Workbook voice mappings: %d", m.Len())

	withText, withoutText := voicecheck.PartitionOrphans(orphans, m)
	out.Blank()
	out.Line("With workbook text: %d", len(withText))
	out.Line("Without workbook text: %d", len(withoutText))

	if len(withText) > 0 {
		out.Blank()
		out.Header("Unused voice files with text")
		out.UnusedWithText(withText, ctx.cfg.OrphanPreview)
	}
	if len(withoutText) > 0 {
		out.Blank()
		out.Header("Voice files without text")
		out.UnusedWithoutText(withoutText)
	}

	written, err := report.WriteJSONIfNotEmpty(ctx.cfg.OrphanReport, withText)
	ctx.writeReport(ctx.cfg.OrphanReport, written, err)
	ctx.logger.Info("orphan scan complete",
		"used", len(used),
		"available", len(available),
		"orphans", len(orphans),
	)
}
