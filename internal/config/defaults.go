package config

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		WorkbookPath:   "sound/audio_script.xlsx",
		DatasetPath:    "scenario_voiced.json",
		AudioDir:       "output_audio",
		AudioExt:       ".mp3",
		IDPrefix:       "L",
		HeaderRows:     2,
		MismatchReport: "voice_mismatches.json",
		OrphanReport:   "unused_voice_with_text.json",
		CheckPreview:   100,
		FixPreview:     50,
		OrphanPreview:  80,
		Language:       "ja",
		LogLevel:       "info",
		LogFormat:      "console",
	}
}
