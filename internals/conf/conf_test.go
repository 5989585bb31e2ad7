package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	original := config
	config = nil
	t.Cleanup(func() { config = original })

	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	got := GetConfig()
	if got.Server.DataDir != filepath.Join(tmp, ".webpilot") {
		t.Fatalf("expected default data dir, got %q", got.Server.DataDir)
	}
	if got.Videos.Dir != filepath.Join(tmp, ".webpilot", "videos") {
		t.Fatalf("expected default videos dir, got %q", got.Videos.Dir)
	}
	if got.Backend.BaseURL != "" {
		t.Fatalf("expected empty backend base url by default, got %q", got.Backend.BaseURL)
	}
	if got.Version == "" {
		t.Fatalf("expected version to be set")
	}
}

func TestConfigFileOverridesBackend(t *testing.T) {
	original := config
	config = nil
	t.Cleanup(func() { config = original })

	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	dataDir := filepath.Join(tmp, ".webpilot")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `{"backend": {"base_url": "http://automation.lan:8010"}}`
	if err := os.WriteFile(filepath.Join(dataDir, "webpilot.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got := GetConfig()
	if got.Backend.BaseURL != "http://automation.lan:8010" {
		t.Fatalf("expected configured backend base url, got %q", got.Backend.BaseURL)
	}
}
