package naming

import "strings"

const maxNameWords = 5

// TaskNameFromInstruction turns free-form instruction text into a short
// task name. Output uses only [a-z0-9-], never a leading/trailing '-', and
// keeps at most the first few words. Non-ASCII characters are treated as
// separators.
func TaskNameFromInstruction(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	words := 1
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		isAZ := r >= 'a' && r <= 'z'
		is09 := r >= '0' && r <= '9'
		if isAZ || is09 {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if prevDash {
			continue
		}
		if words == maxNameWords {
			break
		}
		b.WriteByte('-')
		prevDash = true
		words++
	}

	return strings.Trim(b.String(), "-")
}
