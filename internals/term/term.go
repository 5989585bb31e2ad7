package term

import "os"

var hyperlinkEnvVars = []string{
	"WT_SESSION",
	"VTE_VERSION",
	"KONSOLE_VERSION",
	"KITTY_WINDOW_ID",
	"WEZTERM_EXECUTABLE",
	"DOMTERM",
	"TERM_PROGRAM",
}

func SupportsHyperlinks() bool {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" || term == "alacritty" {
		return false
	}
	for _, key := range hyperlinkEnvVars {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ClickableLink wraps a label in an OSC 8 hyperlink when the terminal
// supports it, used for video addresses in CLI output.
func ClickableLink(label string, url string) string {
	if url == "" {
		return label
	}
	if label == "" {
		label = url
	}
	if !SupportsHyperlinks() {
		return label
	}
	return "\x1b]8;;" + url + "\x1b\\" + label + "\x1b]8;;\x1b\\"
}
