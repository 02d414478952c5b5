// Package editor launches the user's editor on a note file.
package editor

import (
	"os"
	"os/exec"
)

// Resolve picks the editor command from $EDITOR, then $VISUAL, defaulting
// to vi.
func Resolve() string {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}
	return editor
}

// Launch opens path in the resolved editor, wired to the current terminal.
// Callers fall back to printing the file's raw content when Launch fails.
func Launch(path string) error {
	cmd := exec.Command(Resolve(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
