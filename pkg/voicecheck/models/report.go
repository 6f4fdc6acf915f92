package models

// Mismatch records a dataset line whose text differs from the workbook text for its voice id.
type Mismatch struct {
	// VoiceID is the voice identifier assigned to the line.
	VoiceID string `json:"voice_id"`
	// Location is the line path, formatted as "protagonist/block[index]".
	Location string `json:"location"`
	// ScenarioText is the text recorded in the dataset.
	ScenarioText string `json:"scenario_text"`
	// ExcelText is the text the workbook associates with VoiceID.
	ExcelText string `json:"excel_text"`
}

// Fix records a voice id rewritten by the fixer.
type Fix struct {
	// Location is the line path, formatted as "protagonist/block[index]".
	Location string `json:"location"`
	// From is the voice id the line carried before the rewrite.
	From string `json:"from"`
	// To is the voice id implied by the line's text.
	To string `json:"to"`
	// Text is the line's text.
	Text string `json:"text"`
}

// UnmatchedText records a non-blank dataset line whose text has no workbook voice id.
type UnmatchedText struct {
	Location string `json:"location"`
	VoiceID  string `json:"voice_id"`
	Text     string `json:"text"`
}

// UnusedVoice is an audio file that no dataset line references but the workbook describes.
type UnusedVoice struct {
	// VoiceID is the identifier recovered from the audio file name.
	VoiceID string `json:"voice_id"`
	// Speaker is the workbook speaker label (column B), possibly empty.
	Speaker string `json:"speaker"`
	// Text is the workbook transcript (column C).
	Text string `json:"text"`
}
