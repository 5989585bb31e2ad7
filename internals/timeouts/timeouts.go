package timeouts

import "time"

const (
	Probe         = 300 * time.Millisecond
	SecondShort   = 2 * time.Second
	SecondDefault = 10 * time.Second
	// Plan generation and execution go through an LLM and a real browser on
	// the backend; those calls get minutes, not seconds.
	MinuteExecute  = 5 * time.Minute
	MinuteGenerate = 2 * time.Minute
)
