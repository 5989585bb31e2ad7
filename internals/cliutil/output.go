package cliutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/marover/webpilot/internals/schemas"
	"github.com/marover/webpilot/internals/term"
)

// PrintPlan writes a plan summary with its stepwise rendering. Sensitive
// values are masked by the schema layer before they reach the writer.
func PrintPlan(w io.Writer, plan *schemas.Plan) {
	fmt.Fprintf(w, "task: %s\n", plan.Task)
	readable := plan.ReadableText
	if readable == "" {
		readable = plan.Readable()
	}
	if readable != "" {
		fmt.Fprintln(w, strings.TrimRight(readable, "\n"))
	}
}

func PrintTaskList(w io.Writer, tasks []string) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	for _, name := range tasks {
		fmt.Fprintln(w, name)
	}
}

func PrintVideoReady(w io.Writer, videoURL string) {
	fmt.Fprintf(w, "video: %s\n", term.ClickableLink(videoURL, videoURL))
}
