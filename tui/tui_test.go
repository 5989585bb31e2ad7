package tui

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marover/webpilot/internals/schemas"
	"github.com/marover/webpilot/sdk"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	client := sdk.NewClient(sdk.WithBaseURL("http://localhost:8000"))
	return newModel(client)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return result, cmd
}

func TestGenerateReplacesCurrentPlan(t *testing.T) {
	m := newTestModel(t)
	m.focus = focusInstruction
	m.instruction.SetValue("book a flight")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.status != schemas.StatusGenerating {
		t.Fatalf("expected generating status, got %s", m.status)
	}
	if cmd == nil {
		t.Fatalf("expected a request command")
	}

	plan := &schemas.Plan{
		Task:  "book-a-flight",
		Steps: []schemas.Step{{Action: "goto", Target: "flights.example.com"}},
	}
	m, cmd = update(t, m, planMsg{plan: plan})
	if m.status != schemas.StatusIdle {
		t.Fatalf("expected idle after success, got %s", m.status)
	}
	if m.current == nil || m.current.Task != "book-a-flight" || !reflect.DeepEqual(m.current.Steps, plan.Steps) {
		t.Fatalf("expected current plan to equal response, got %+v", m.current)
	}
	if cmd == nil {
		t.Fatalf("expected list refresh command")
	}
}

func TestGenerateRequiresInstruction(t *testing.T) {
	m := newTestModel(t)
	m.focus = focusInstruction

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected no request for empty instruction")
	}
	if m.inputErr == "" {
		t.Fatalf("expected input error")
	}
	if m.status != schemas.StatusIdle {
		t.Fatalf("status must stay idle, got %s", m.status)
	}
}

func TestGenerateFailureLeavesStateUntouched(t *testing.T) {
	m := newTestModel(t)
	prior := &schemas.Plan{Task: "prior", Steps: []schemas.Step{{Action: "goto", Target: "a"}}}
	m.setCurrentPlan(prior)

	m, _ = update(t, m, planMsg{err: errors.New("boom")})
	if m.status != schemas.StatusError {
		t.Fatalf("expected error status, got %s", m.status)
	}
	if m.current != prior {
		t.Fatalf("prior plan must remain current")
	}

	// Re-invoking after an error must be able to reach idle again.
	m, _ = update(t, m, planMsg{plan: prior})
	if m.status != schemas.StatusIdle {
		t.Fatalf("expected no lockout after error, got %s", m.status)
	}
}

func TestDetailSeedsEditorWithParseableJSON(t *testing.T) {
	m := newTestModel(t)
	plan := schemas.Plan{
		Task: "login",
		Steps: []schemas.Step{
			{Action: "goto", Target: "example.com/login"},
			{Action: "enter", Target: "input[name=password]", Value: "hunter2"},
		},
	}
	m, _ = update(t, m, detailMsg{name: "login", detail: &schemas.DeveloperTaskResponse{
		ReadableText: plan.Readable(),
		Plan:         plan,
	}})

	if m.current == nil || m.current.Task != "login" {
		t.Fatalf("expected current plan set, got %+v", m.current)
	}

	var decoded schemas.Plan
	if err := json.Unmarshal([]byte(m.editor.Value()), &decoded); err != nil {
		t.Fatalf("editor buffer must re-parse: %v", err)
	}
	if decoded.Task != plan.Task || !reflect.DeepEqual(decoded.Steps, plan.Steps) {
		t.Fatalf("re-parsed buffer differs from the plan: %+v", decoded)
	}
}

func TestExecuteJSONRejectsMalformedBuffer(t *testing.T) {
	m := newTestModel(t)
	m.showEditor = true
	m.editor.SetValue("{not json")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if cmd != nil {
		t.Fatalf("malformed JSON must not issue a request")
	}
	if !strings.Contains(m.inputErr, "invalid JSON") {
		t.Fatalf("expected visible invalid-input indication, got %q", m.inputErr)
	}
}

func TestExecuteJSONReplacesPlanWithEditedObject(t *testing.T) {
	m := newTestModel(t)
	edited := schemas.Plan{Task: "renamed", Steps: []schemas.Step{{Action: "goto", Target: "x"}}}

	m, cmd := update(t, m, execJSONMsg{plan: edited, result: schemas.ExecuteResult{Raw: json.RawMessage(`{"status":"success"}`)}})
	if m.current == nil || m.current.Task != "renamed" {
		t.Fatalf("expected locally edited plan to become current, got %+v", m.current)
	}
	if m.status != schemas.StatusIdle {
		t.Fatalf("expected idle, got %s", m.status)
	}
	if cmd == nil {
		t.Fatalf("expected refresh + detail re-fetch commands")
	}
}

func TestVideoExecutionBranches(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, videoMsg{result: &schemas.VideoResult{Status: "success", Video: "run1.mp4"}})
	if m.status != schemas.StatusVideoReady {
		t.Fatalf("expected video-ready, got %s", m.status)
	}
	if !strings.Contains(m.videoURL, "run1.mp4") {
		t.Fatalf("expected playable address containing run1.mp4, got %q", m.videoURL)
	}
	if cmd == nil {
		t.Fatalf("expected open-video command")
	}

	m = newTestModel(t)
	m, _ = update(t, m, videoMsg{result: &schemas.VideoResult{Status: "failed", Message: "x"}})
	if m.status != schemas.StatusError {
		t.Fatalf("expected error status, got %s", m.status)
	}
	if m.videoURL != "" {
		t.Fatalf("expected no playable address on failure, got %q", m.videoURL)
	}
	if !strings.Contains(m.result, "x") {
		t.Fatalf("expected failure message in result, got %q", m.result)
	}

	m = newTestModel(t)
	m, _ = update(t, m, videoMsg{err: errors.New("connection refused")})
	if m.status != schemas.StatusError {
		t.Fatalf("expected error status on transport failure, got %s", m.status)
	}
	if !strings.Contains(m.result, "connection refused") {
		t.Fatalf("transport failure must reach the result viewport, got %q", m.result)
	}
}

func TestViewMasksPasswordValues(t *testing.T) {
	m := newTestModel(t)
	m.setCurrentPlan(&schemas.Plan{
		Task: "login",
		Steps: []schemas.Step{
			{Action: "enter", Target: "input[name=Password]", Value: "hunter2"},
		},
	})

	view := m.View()
	if !strings.Contains(view, "********") {
		t.Fatalf("expected masked value in view")
	}
	if strings.Contains(view, "hunter2") {
		t.Fatalf("password leaked into view")
	}
}

func TestExecuteResultResetsToIdle(t *testing.T) {
	m := newTestModel(t)
	m.status = schemas.StatusExecuting

	m, _ = update(t, m, execMsg{result: schemas.ExecuteResult{Raw: json.RawMessage(`{"anything":"goes"}`)}})
	if m.status != schemas.StatusIdle {
		t.Fatalf("expected idle after parsed response, got %s", m.status)
	}
	if !strings.Contains(m.result, "anything") {
		t.Fatalf("expected verbatim result dump, got %q", m.result)
	}

	m.status = schemas.StatusExecuting
	m, _ = update(t, m, execMsg{err: errors.New("backend reported failed: element not found")})
	if m.status != schemas.StatusError {
		t.Fatalf("expected error status for reported failure, got %s", m.status)
	}
}
