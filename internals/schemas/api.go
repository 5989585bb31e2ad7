package schemas

import "encoding/json"

// Wire shapes for the backend's JSON-over-HTTP contract. The backend reports
// logical failures as HTTP 200 bodies carrying a status field, so the shapes
// here mirror that convention rather than rely on HTTP status codes.

type GenerateRequest struct {
	Instruction string `json:"instruction"`
}

type ModifyRequest struct {
	Task         string `json:"task"`
	Modification string `json:"modification"`
}

type ExecuteRequest struct {
	Task string `json:"task"`
}

type ListTasksResponse struct {
	Tasks []string `json:"tasks"`
}

type DeveloperTaskResponse struct {
	ReadableText string `json:"readable_text"`
	Plan         Plan   `json:"plan"`
}

// VideoResult is the one response the client branches on: a success status
// carries a video filename, anything else carries a message.
type VideoResult struct {
	Status  string `json:"status"`
	Video   string `json:"video,omitempty"`
	Message string `json:"message,omitempty"`
}

const (
	ResultStatusSuccess = "success"
	ResultStatusFailed  = "failed"
	ResultStatusError   = "error"
)

func (v VideoResult) Success() bool {
	return v.Status == ResultStatusSuccess
}

// ExecuteResult is an arbitrary result object, kept verbatim for display.
type ExecuteResult struct {
	Raw json.RawMessage
}

func (r ExecuteResult) String() string {
	if len(r.Raw) == 0 {
		return ""
	}
	var buf any
	if err := json.Unmarshal(r.Raw, &buf); err != nil {
		return string(r.Raw)
	}
	pretty, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return string(r.Raw)
	}
	return string(pretty)
}
