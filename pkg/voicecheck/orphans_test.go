package voicecheck

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/voicecheck-go/pkg/voicecheck/models"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindOrphansNumericOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "L2.mp3", "L10.mp3", "L1.mp3")

	available, err := AvailableVoiceIDs(dir, ".mp3")
	if err != nil {
		t.Fatalf("AvailableVoiceIDs failed: %v", err)
	}
	got := FindOrphans(available, map[string]struct{}{})

	expected := []string{"L1", "L2", "L10"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FindOrphans = %v, expected %v", got, expected)
	}
}

func TestAvailableVoiceIDs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "L001.mp3", "L002.wav", "notes.txt", "L003.mp3.bak")
	if err := os.Mkdir(filepath.Join(dir, "nested.mp3"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := AvailableVoiceIDs(dir, ".mp3")
	if err != nil {
		t.Fatalf("AvailableVoiceIDs failed: %v", err)
	}
	expected := map[string]struct{}{"L001": {}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("AvailableVoiceIDs = %v, expected %v", got, expected)
	}

	missing, err := AvailableVoiceIDs(filepath.Join(dir, "absent"), ".mp3")
	if err != nil {
		t.Fatalf("Expected missing dir to be empty, got %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("Expected empty set, got %v", missing)
	}
}

func TestUsedVoiceIDs(t *testing.T) {
	ds := parseDataset(t, `{"p": {"b": [
	  {"voice": "L001", "text": "a"},
	  {"voice": ["L002", "L003"], "text": "b"},
	  {"voice": "L004"},
	  {"text": "no voice"},
	  {"voice": 7}
	]}}`)

	got := UsedVoiceIDs(ds)
	expected := map[string]struct{}{"L001": {}, "L002": {}, "L003": {}, "L004": {}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("UsedVoiceIDs = %v, expected %v", got, expected)
	}
}

func TestFindOrphansExcludesUsed(t *testing.T) {
	available := map[string]struct{}{"L001": {}, "L002": {}, "intro": {}, "B3": {}, "L0003": {}}
	used := map[string]struct{}{"L002": {}}

	got := FindOrphans(available, used)
	expected := []string{"intro", "L001", "B3", "L0003"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FindOrphans = %v, expected %v", got, expected)
	}
}

func TestVoiceSortKey(t *testing.T) {
	tests := []struct {
		id       string
		expected uint64
	}{
		{"L001", 1},
		{"L12_3", 12},
		{"ch2_L40", 2},
		{"none", 0},
	}
	for _, tt := range tests {
		if got := voiceSortKey(tt.id); got != tt.expected {
			t.Errorf("voiceSortKey(%q) = %d, expected %d", tt.id, got, tt.expected)
		}
	}
}

func TestPartitionOrphans(t *testing.T) {
	m := NewMapping()
	m.Add(MappingEntry{ID: "L001", Speaker: "ハル", Text: "こんにちは"})
	m.Add(MappingEntry{ID: "L003", Text: "さようなら"})

	withText, withoutText := PartitionOrphans([]string{"L001", "L002", "L003"}, m)

	expectedWith := []models.UnusedVoice{
		{VoiceID: "L001", Speaker: "ハル", Text: "こんにちは"},
		{VoiceID: "L003", Text: "さようなら"},
	}
	if !reflect.DeepEqual(withText, expectedWith) {
		t.Errorf("withText = %+v, expected %+v", withText, expectedWith)
	}
	if !reflect.DeepEqual(withoutText, []string{"L002"}) {
		t.Errorf("withoutText = %v, expected [L002]", withoutText)
	}
}
