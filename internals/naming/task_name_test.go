package naming

import "testing"

func TestTaskNameFromInstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Book me a flight to Paris next week", "book-me-a-flight-to"},
		{"Login", "login"},
		{"search: cheap hotels!!!", "search-cheap-hotels"},
		{"line1\nline2", "line1"},
		{"---Leading and trailing---", "leading-and-trailing"},
		{"café near me", "caf-near-me"},
	}

	for _, tt := range tests {
		if got := TaskNameFromInstruction(tt.in); got != tt.want {
			t.Fatalf("TaskNameFromInstruction(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
