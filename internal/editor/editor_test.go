package editor

import "testing"

func TestResolve(t *testing.T) {
	t.Setenv("EDITOR", "nano")
	t.Setenv("VISUAL", "emacs")
	if got := Resolve(); got != "nano" {
		t.Fatalf("expected EDITOR to win, got %q", got)
	}

	t.Setenv("EDITOR", "")
	if got := Resolve(); got != "emacs" {
		t.Fatalf("expected VISUAL fallback, got %q", got)
	}

	t.Setenv("VISUAL", "")
	if got := Resolve(); got != "vi" {
		t.Fatalf("expected vi default, got %q", got)
	}
}
