package desktop

import (
	"errors"
	"os/exec"
	"runtime"
)

// Seams for tests.
var ExecCommand = exec.Command
var RuntimeGOOS = runtime.GOOS

// OpenURL opens a viewing context for the given address, e.g. the browser tab
// that plays a recorded execution video.
func OpenURL(url string) error {
	if url == "" {
		return errors.New("url is empty")
	}

	var cmd *exec.Cmd
	switch RuntimeGOOS {
	case "darwin":
		cmd = ExecCommand("open", url)
	case "linux":
		cmd = ExecCommand("xdg-open", url)
	case "windows":
		cmd = ExecCommand("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return errors.New("unsupported platform")
	}

	return cmd.Start()
}
