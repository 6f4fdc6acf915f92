// Package report writes JSON side-files and renders the console run report.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// Console renders the human-readable run report in the operator language.
type Console struct {
	w        io.Writer
	p        *message.Printer
	colorize bool
}

// NewConsole returns a console writing to w. Color is used only when w is a terminal.
func NewConsole(w io.Writer, tag language.Tag) *Console {
	return &Console{
		w:        w,
		p:        NewPrinter(tag),
		colorize: shouldColorize(w),
	}
}

// Header prints a section title.
func (c *Console) Header(format string, args ...any) {
	c.print(ansiBlue, "", format, args...)
}

// Line prints one translated line.
func (c *Console) Line(format string, args ...any) {
	c.print("", "", format, args...)
}

// OK prints a success line.
func (c *Console) OK(format string, args ...any) {
	c.print(ansiGreen, "[OK] ", format, args...)
}

// Warn prints a warning line.
func (c *Console) Warn(format string, args ...any) {
	c.print(ansiYellow, "[WARN] ", format, args...)
}

// Error prints an error line.
func (c *Console) Error(format string, args ...any) {
	c.print(ansiRed, "[ERROR] ", format, args...)
}

// Blank prints an empty line.
func (c *Console) Blank() {
	fmt.Fprintln(c.w)
}

// Mismatches lists mismatching lines with text previews cut at limit characters.
func (c *Console) Mismatches(items []models.Mismatch, limit int) {
	rows := make([][]string, 0, len(items))
	for i, m := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.VoiceID,
			m.Location,
			quote(Preview(m.ScenarioText, limit)),
			quote(Preview(m.ExcelText, limit)),
		})
	}
	c.table([]string{"#", "Voice ID", "Location", "Scenario", "Workbook"}, rows)
}

// Fixes lists rewritten voice ids.
func (c *Console) Fixes(items []models.Fix, limit int) {
	rows := make([][]string, 0, len(items))
	for i, f := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			f.Location,
			f.From,
			f.To,
			quote(Preview(f.Text, limit)),
		})
	}
	c.table([]string{"#", "Location", "From", "To", "Text"}, rows)
}

// Unmatched lists lines whose text has no workbook voice id.
func (c *Console) Unmatched(items []models.UnmatchedText, limit int) {
	rows := make([][]string, 0, len(items))
	for i, u := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			u.Location,
			u.VoiceID,
			quote(Preview(u.Text, limit)),
		})
	}
	c.table([]string{"#", "Location", "Voice ID", "Text"}, rows)
}

// UnusedWithText lists orphan audio files the workbook describes.
func (c *Console) UnusedWithText(items []models.UnusedVoice, limit int) {
	rows := make([][]string, 0, len(items))
	for i, u := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			u.VoiceID,
			u.Speaker,
			quote(Preview(u.Text, limit)),
		})
	}
	c.table([]string{"#", "Voice ID", "Speaker", "Text"}, rows)
}

// UnusedWithoutText lists orphan audio files the workbook does not describe.
func (c *Console) UnusedWithoutText(ids []string) {
	for _, id := range ids {
		fmt.Fprintf(c.w, "  %s\n", id)
	}
}

func (c *Console) print(color, prefix, format string, args ...any) {
	line := prefix + c.p.Sprintf(format, args...)
	if c.colorize && color != "" {
		line = color + line + ansiReset
	}
	fmt.Fprintln(c.w, line)
}

func (c *Console) table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = c.p.Sprintf(h)
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	fmt.Fprintln(c.w, tw.Render())
}

func quote(s string) string {
	return "「" + s + "」"
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
