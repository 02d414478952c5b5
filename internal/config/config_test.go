package config

import (
	"path/filepath"
	"testing"
)

func TestGetNotesDirWithExplicitEnv(t *testing.T) {
	tmpDir := t.TempDir()
	customDir := filepath.Join(tmpDir, "custom")

	t.Setenv("MDNOTES_DIR", customDir)
	t.Setenv("XDG_DATA_HOME", "")

	got := GetNotesDir()
	if got != customDir {
		t.Fatalf("expected %q, got %q", customDir, got)
	}
}

func TestGetNotesDirFallsBackToXDG(t *testing.T) {
	tmpDir := t.TempDir()
	xdgDir := filepath.Join(tmpDir, "xdg")

	t.Setenv("MDNOTES_DIR", "")
	t.Setenv("XDG_DATA_HOME", xdgDir)

	got := GetNotesDir()
	want := filepath.Join(xdgDir, "mdnotes")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
