package voicecheck

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/scenario"
)

var digitRun = regexp.MustCompile(`\d+`)

// UsedVoiceIDs collects every identifier referenced by a dataset line,
// including each element of multi-voice lines and lines without text.
func UsedVoiceIDs(ds *scenario.Dataset) map[string]struct{} {
	used := make(map[string]struct{})
	ds.Walk(func(e scenario.Entry) {
		for _, id := range e.Line.VoiceIDs() {
			used[id] = struct{}{}
		}
	})
	return used
}

// AvailableVoiceIDs lists the identifiers of the audio files directly inside
// dir: names ending in ext, with ext removed. A missing dir yields an empty set.
func AvailableVoiceIDs(dir, ext string) (map[string]struct{}, error) {
	available := make(map[string]struct{})
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return available, nil
		}
		return nil, fmt.Errorf("read audio dir: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		available[strings.TrimSuffix(name, ext)] = struct{}{}
	}
	return available, nil
}

// FindOrphans returns the identifiers in available but not in used, ordered by
// the first run of digits in each identifier (0 when there is none), then by
// identifier.
func FindOrphans(available, used map[string]struct{}) []string {
	var orphans []string
	for id := range available {
		if _, ok := used[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	sort.Slice(orphans, func(i, j int) bool {
		ki, kj := voiceSortKey(orphans[i]), voiceSortKey(orphans[j])
		if ki != kj {
			return ki < kj
		}
		return orphans[i] < orphans[j]
	})
	return orphans
}

// voiceSortKey is the numeric value of the first digit run in id.
func voiceSortKey(id string) uint64 {
	run := digitRun.FindString(id)
	if run == "" {
		return 0
	}
	n, err := strconv.ParseUint(run, 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	return n
}

// PartitionOrphans splits orphans into those the workbook describes, carrying
// speaker and text, and those it does not. Both keep the input order.
func PartitionOrphans(orphans []string, m *Mapping) ([]models.UnusedVoice, []string) {
	var withText []models.UnusedVoice
	var withoutText []string
	for _, id := range orphans {
		entry, ok := m.Lookup(id)
		if !ok {
			withoutText = append(withoutText, id)
			continue
		}
		withText = append(withText, models.UnusedVoice{
			VoiceID: id,
			Speaker: entry.Speaker,
			Text:    entry.Text,
		})
	}
	return withText, withoutText
}
