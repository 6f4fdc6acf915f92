package voicecheck

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/flock"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/scenario"
)

// FixResult is the outcome of a repair pass.
type FixResult struct {
	// Checked counts every single-voice line visited.
	Checked int
	// Fixes lists the identifiers rewritten, in dataset order.
	Fixes []models.Fix
	// Unmatched lists non-blank lines whose text has no workbook identifier.
	Unmatched []models.UnmatchedText
	// DigestBefore and DigestAfter are canonical dataset digests around the pass.
	DigestBefore string
	DigestAfter  string
	// Saved reports whether the dataset file was rewritten.
	Saved bool
}

// FixMismatches rewrites, in memory, the identifier of every single-voice line
// whose text maps to a different identifier in inverse. Lines whose text is not
// in inverse are left alone; non-blank ones are reported as unmatched.
func FixMismatches(inverse map[string]string, ds *scenario.Dataset) FixResult {
	var result FixResult
	ds.Walk(func(e scenario.Entry) {
		line, ok := e.Line.(scenario.SingleVoiceLine)
		if !ok {
			return
		}
		result.Checked++

		correct, ok := inverse[line.Text]
		if !ok {
			if strings.TrimSpace(line.Text) != "" {
				result.Unmatched = append(result.Unmatched, models.UnmatchedText{
					Location: e.Location(),
					VoiceID:  line.ID,
					Text:     line.Text,
				})
			}
			return
		}
		if correct == line.ID {
			return
		}

		e.SetVoice(correct)
		result.Fixes = append(result.Fixes, models.Fix{
			Location: e.Location(),
			From:     line.ID,
			To:       correct,
			Text:     line.Text,
		})
	})
	return result
}

// FixFile repairs the dataset at path in place. It holds an exclusive lock on
// path+".lock" for the whole read-modify-write and rewrites the file only when
// at least one identifier changed. There is no backup.
func FixFile(path string, inverse map[string]string, logger *slog.Logger) (FixResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return FixResult{}, fmt.Errorf("lock dataset: %w", err)
	}
	if !locked {
		return FixResult{}, ErrLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("dataset unlock failed", "error", err)
		}
	}()

	ds, err := scenario.Load(path)
	if err != nil {
		return FixResult{}, fmt.Errorf("%w: %w", ErrDatasetLoad, err)
	}
	before, err := ds.Digest()
	if err != nil {
		return FixResult{}, err
	}

	result := FixMismatches(inverse, ds)
	result.DigestBefore = before
	result.DigestAfter = before

	for _, fix := range result.Fixes {
		logger.Debug("voice id rewritten",
			"location", fix.Location,
			"from", fix.From,
			"to", fix.To,
		)
	}
	for _, u := range result.Unmatched {
		logger.Debug("text has no workbook voice id", "location", u.Location, "voice_id", u.VoiceID)
	}

	if len(result.Fixes) == 0 {
		return result, nil
	}

	if err := ds.Save(path); err != nil {
		return result, err
	}
	result.Saved = true
	if result.DigestAfter, err = ds.Digest(); err != nil {
		return result, err
	}
	logger.Info("dataset rewritten",
		"path", path,
		"fixes", len(result.Fixes),
		"digest_before", result.DigestBefore,
		"digest_after", result.DigestAfter,
	)
	return result, nil
}
