package version

import (
	"strings"
	"testing"
)

func TestVersionDefaultsWhenSemVerEmpty(t *testing.T) {
	old := SemVer
	defer func() { SemVer = old }()

	SemVer = "   "
	if got := Version(); !strings.HasPrefix(got, "0.0.0-dev") {
		t.Fatalf("expected dev default, got %q", got)
	}
}

func TestVersionKeepsSemVer(t *testing.T) {
	old := SemVer
	defer func() { SemVer = old }()

	SemVer = "1.2.3"
	if got := Version(); !strings.HasPrefix(got, "1.2.3") {
		t.Fatalf("expected 1.2.3 prefix, got %q", got)
	}
}
