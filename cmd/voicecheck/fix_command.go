package main

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck"
)

func newFixCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Rewrite dataset voice ids to the id the workbook gives each line's text",
		Long: `fix rewrites the dataset in place, without a backup. When several workbook
rows share the same text the last row's id is used for all of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(ctx)
		},
	}
}

func runFix(ctx *commandContext) error {
	out := ctx.console
	out.Header("=== Voice ID mismatch repair ===")

	m := ctx.loadMapping()
	out.Line("Workbook voice mappings: %d", m.Len())

	if dups := m.DuplicateTexts(); len(dups) > 0 {
		out.Warn("Workbook texts shared by several ids: %d", len(dups))
		texts := make([]string, 0, len(dups))
		for text := range dups {
			texts = append(texts, text)
		}
		sort.Strings(texts)
		for _, text := range texts {
			ids := dups[text]
			ctx.logger.Warn("duplicate workbook text",
				"ids", ids,
				"uses", ids[len(ids)-1],
				"text", text,
			)
		}
	}

	result, err := voicecheck.FixFile(ctx.cfg.DatasetPath, m.Inverse(), ctx.logger)
	if err != nil {
		if errors.Is(err, voicecheck.ErrDatasetLoad) {
			ctx.logger.Error("dataset load failed", "path", ctx.cfg.DatasetPath, "error", err)
			out.Error("Dataset could not be read: %s", ctx.cfg.DatasetPath)
			return nil
		}
		return err
	}

	if len(result.Fixes) > 0 {
		out.Blank()
		out.Line("Voice id changes")
		out.Fixes(result.Fixes, ctx.cfg.FixPreview)
	}
	if len(result.Unmatched) > 0 {
		out.Blank()
		out.Warn("Texts not found in workbook: %d", len(result.Unmatched))
		out.Unmatched(result.Unmatched, ctx.cfg.FixPreview)
	}

	out.Blank()
	out.Line("Checked lines: %d", result.Checked)
	out.Line("Fixes applied: %d", len(result.Fixes))
	out.Blank()
	if result.Saved {
		out.OK("Fixed %d voice ids and updated %s", len(result.Fixes), ctx.cfg.DatasetPath)
	} else {
		out.OK("Nothing to fix")
	}
	return nil
}
