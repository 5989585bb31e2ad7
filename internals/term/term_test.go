package term

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TERM", "")
	for _, key := range hyperlinkEnvVars {
		t.Setenv(key, "")
	}
}

func TestSupportsHyperlinks(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERM", "dumb")
	if SupportsHyperlinks() {
		t.Fatalf("expected hyperlinks unsupported for dumb term")
	}

	clearEnv(t)
	t.Setenv("TERM", "alacritty")
	t.Setenv("TERM_PROGRAM", "iTerm")
	if SupportsHyperlinks() {
		t.Fatalf("expected hyperlinks unsupported for alacritty")
	}

	clearEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERM_PROGRAM", "iTerm")
	if !SupportsHyperlinks() {
		t.Fatalf("expected hyperlinks supported")
	}
}

func TestClickableLink(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERM", "dumb")
	if got := ClickableLink("run1.mp4", "http://localhost:8000/videos/run1.mp4"); got != "run1.mp4" {
		t.Fatalf("expected plain label, got %q", got)
	}

	clearEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERM_PROGRAM", "iTerm")
	got := ClickableLink("run1.mp4", "http://localhost:8000/videos/run1.mp4")
	if got == "run1.mp4" {
		t.Fatalf("expected clickable link escape sequence")
	}
}
