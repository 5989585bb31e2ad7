package schemas

// Status tracks the outcome of the most recent backend interaction. It is
// client-side only and never persisted.
type Status string

const (
	StatusIdle           Status = "idle"
	StatusGenerating     Status = "generating"
	StatusModifying      Status = "modifying"
	StatusExecuting      Status = "executing"
	StatusExecutingVideo Status = "executing-video"
	StatusVideoReady     Status = "video-ready"
	StatusError          Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// Busy reports whether a request is in flight. video-ready and error are
// resting states: every action is re-triggerable from them.
func (s Status) Busy() bool {
	switch s {
	case StatusGenerating, StatusModifying, StatusExecuting, StatusExecutingVideo:
		return true
	default:
		return false
	}
}
