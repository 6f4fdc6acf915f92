package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/report"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report dataset lines whose text differs from the workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCheck(ctx)
			return nil
		},
	}
}

func runCheck(ctx *commandContext) {
	out := ctx.console
	out.Header("=== Voice ID mismatch check ===")

	m := ctx.loadMapping()
	out.Line("Workbook voice mappings: %d", m.Len())

	ds := ctx.loadDataset()
	if ds == nil {
		return
	}

	result := voicecheck.DetectMismatches(m, ds)
	out.Line("Checked lines: %d", result.Checked)
	out.Line("Mismatches: %d", len(result.Mismatches))
	out.Blank()
	ctx.logger.Info("mismatch check complete",
		"checked", result.Checked,
		"mismatches", len(result.Mismatches),
	)

	if len(result.Mismatches) == 0 {
		out.OK("No mismatches detected")
		return
	}
	out.Warn("Mismatches detected")
	out.Mismatches(result.Mismatches, ctx.cfg.CheckPreview)

	written, err := report.WriteJSONIfNotEmpty(ctx.cfg.MismatchReport, result.Mismatches)
	ctx.writeReport(ctx.cfg.MismatchReport, written, err)
}
