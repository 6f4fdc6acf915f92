package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/parser"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/report"
)

func newRowsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rows",
		Short: "Print the workbook rows the reader sees, as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := parser.ReadTable(ctx.cfg.WorkbookPath)
			if err != nil {
				return fmt.Errorf("read workbook: %w", err)
			}
			for _, w := range table.Warnings {
				ctx.logger.Warn("workbook read warning", "path", ctx.cfg.WorkbookPath, "detail", w)
			}
			data, err := report.MarshalIndent(table)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(ctx.stdout, string(data))
			return nil
		},
	}
}
