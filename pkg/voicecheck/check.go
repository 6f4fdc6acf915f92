package voicecheck

import (
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/scenario"
)

// CheckResult is the outcome of a mismatch scan.
type CheckResult struct {
	// Checked counts single-voice lines whose identifier is in the mapping.
	Checked int
	// Mismatches lists lines whose text differs from the workbook, in dataset order.
	Mismatches []models.Mismatch
}

// DetectMismatches compares every single-voice line with the workbook text for
// its identifier. Text is compared exactly, without trimming or normalization.
// Multi-voice lines are exempt, and lines whose identifier is missing from the
// mapping are neither checked nor reported. Lines whose text is not a string
// (null included) are voice-only and never compared.
func DetectMismatches(m *Mapping, ds *scenario.Dataset) CheckResult {
	var result CheckResult
	ds.Walk(func(e scenario.Entry) {
		line, ok := e.Line.(scenario.SingleVoiceLine)
		if !ok {
			return
		}
		entry, ok := m.Lookup(line.ID)
		if !ok {
			return
		}
		result.Checked++
		if line.Text != entry.Text {
			result.Mismatches = append(result.Mismatches, models.Mismatch{
				VoiceID:      line.ID,
				Location:     e.Location(),
				ScenarioText: line.Text,
				ExcelText:    entry.Text,
			})
		}
	})
	return result
}
