// Command voicecheck reconciles the voice-acting script workbook with the
// voiced dialogue dataset.
//
// Every subcommand is a parameterless batch job run from the project root:
//
//	voicecheck check    report lines whose text differs from the workbook
//	voicecheck fix      rewrite voice ids to match each line's text
//	voicecheck orphans  list audio files no line references
//	voicecheck rows     dump the workbook rows as JSON
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
