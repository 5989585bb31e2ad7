package tui

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marover/webpilot/internals/schemas"
	"github.com/marover/webpilot/sdk"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusInstruction
	focusModification
	focusEditor
)

// model holds the whole client-side state: the task list, the current
// plan, the free-text inputs, the raw-JSON editor, and the status flag.
// Nothing here is persisted.
type model struct {
	client *sdk.Client

	tasks  []string
	cursor int

	current      *schemas.Plan
	readableText string

	instruction  textinput.Model
	modification textinput.Model
	editor       textarea.Model
	spinner      spinner.Model

	status     schemas.Status
	showEditor bool
	focus      focusArea

	result   string
	videoURL string
	// inputErr is local validation feedback (malformed editor JSON); it
	// never involves the network.
	inputErr string
	errText  string

	width  int
	height int
}

func Run(client *sdk.Client) error {
	program := tea.NewProgram(newModel(client), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newModel(client *sdk.Client) model {
	instruction := textinput.New()
	instruction.Prompt = "Instruction: "
	instruction.Placeholder = "book me a flight to Paris"

	modification := textinput.New()
	modification.Prompt = "Modification: "
	modification.Placeholder = "use the staging site instead"

	editor := textarea.New()
	editor.Placeholder = "{ }"
	// Seeded plans can exceed the textarea's default character limit.
	editor.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		client:       client,
		instruction:  instruction,
		modification: modification,
		editor:       editor,
		spinner:      sp,
		status:       schemas.StatusIdle,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, loadTasks(m.client))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(msg.Width - 4)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tasksMsg:
		if msg.err != nil {
			m.status = schemas.StatusError
			m.errText = msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = 0
		}
		return m, nil

	case planMsg:
		// Failure leaves the prior plan untouched.
		if msg.err != nil {
			m.status = schemas.StatusError
			m.errText = msg.err.Error()
			return m, nil
		}
		m.setCurrentPlan(msg.plan)
		m.status = schemas.StatusIdle
		m.errText = ""
		return m, loadTasks(m.client)

	case detailMsg:
		if msg.err != nil {
			m.status = schemas.StatusError
			m.errText = msg.err.Error()
			return m, nil
		}
		plan := msg.detail.Plan
		m.current = &plan
		m.readableText = msg.detail.ReadableText
		if m.readableText == "" {
			m.readableText = plan.Readable()
		}
		m.seedEditor()
		m.errText = ""
		return m, nil

	case execMsg:
		m.result = msg.result.String()
		if msg.err != nil {
			m.status = schemas.StatusError
			m.errText = msg.err.Error()
			return m, nil
		}
		m.status = schemas.StatusIdle
		m.errText = ""
		return m, nil

	case execJSONMsg:
		m.result = msg.result.String()
		if msg.err != nil {
			m.status = schemas.StatusError
			m.errText = msg.err.Error()
			return m, nil
		}
		// The locally edited plan becomes current, not anything the
		// backend returned.
		m.setCurrentPlan(&msg.plan)
		m.status = schemas.StatusIdle
		m.errText = ""
		return m, tea.Batch(loadTasks(m.client), loadDetail(m.client, msg.plan.Task))

	case videoMsg:
		if msg.err != nil {
			m.status = schemas.StatusError
			m.errText = msg.err.Error()
			m.result = "video execution failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.result.Success() {
			m.status = schemas.StatusError
			m.errText = "execution failed: " + msg.result.Message
			m.result = "video execution failed: " + msg.result.Message
			return m, nil
		}
		m.videoURL = m.client.VideoURL(msg.result.Video)
		m.status = schemas.StatusVideoReady
		m.errText = ""
		m.result = "video ready: " + m.videoURL
		return m, openVideo(m.videoURL)

	case videoOpenedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.moveFocus(1), nil
	case "shift+tab":
		return m.moveFocus(-1), nil
	case "ctrl+r":
		return m, loadTasks(m.client)
	case "ctrl+d":
		m.showEditor = !m.showEditor
		if !m.showEditor && m.focus == focusEditor {
			return m.moveFocus(1), nil
		}
		return m, nil
	case "ctrl+e":
		return m.startExecute()
	case "ctrl+v":
		return m.startExecuteWithVideo()
	case "ctrl+x":
		return m.startExecuteJSON()
	case "enter":
		switch m.focus {
		case focusSidebar:
			return m.selectTask()
		case focusInstruction:
			return m.startGenerate()
		case focusModification:
			return m.startModify()
		}
	case "up", "k":
		if m.focus == focusSidebar {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
	case "down", "j":
		if m.focus == focusSidebar {
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// selectTask issues exactly one developer-detail request for the
// highlighted name. No cache: re-selecting re-fetches.
func (m model) selectTask() (tea.Model, tea.Cmd) {
	if len(m.tasks) == 0 || m.cursor >= len(m.tasks) {
		return m, nil
	}
	return m, loadDetail(m.client, m.tasks[m.cursor])
}

func (m model) startGenerate() (tea.Model, tea.Cmd) {
	instruction := strings.TrimSpace(m.instruction.Value())
	if instruction == "" {
		m.inputErr = "instruction is required"
		return m, nil
	}
	m.inputErr = ""
	m.status = schemas.StatusGenerating
	return m, generatePlan(m.client, instruction)
}

func (m model) startModify() (tea.Model, tea.Cmd) {
	modification := strings.TrimSpace(m.modification.Value())
	if m.current == nil || modification == "" {
		m.inputErr = "select a task and enter a modification"
		return m, nil
	}
	m.inputErr = ""
	m.status = schemas.StatusModifying
	return m, modifyPlan(m.client, m.current.Task, modification)
}

func (m model) startExecute() (tea.Model, tea.Cmd) {
	if m.current == nil {
		m.inputErr = "select a task first"
		return m, nil
	}
	m.inputErr = ""
	m.status = schemas.StatusExecuting
	return m, executePlan(m.client, m.current.Task)
}

func (m model) startExecuteWithVideo() (tea.Model, tea.Cmd) {
	if m.current == nil {
		m.inputErr = "select a task first"
		return m, nil
	}
	m.inputErr = ""
	m.status = schemas.StatusExecutingVideo
	return m, executePlanWithVideo(m.client, m.current.Task)
}

// startExecuteJSON validates the editor buffer locally. A malformed buffer
// never reaches the network.
func (m model) startExecuteJSON() (tea.Model, tea.Cmd) {
	var plan schemas.Plan
	if err := json.Unmarshal([]byte(m.editor.Value()), &plan); err != nil {
		m.inputErr = "invalid JSON: " + err.Error()
		return m, nil
	}
	if err := schemas.ValidatePlan(&plan); err != nil {
		m.inputErr = err.Error()
		return m, nil
	}
	m.inputErr = ""
	m.status = schemas.StatusExecuting
	return m, executeJSON(m.client, plan)
}

func (m *model) setCurrentPlan(plan *schemas.Plan) {
	m.current = plan
	m.readableText = plan.ReadableText
	if m.readableText == "" {
		m.readableText = plan.Readable()
	}
	m.seedEditor()
}

// seedEditor pretty-prints the current plan into the editable buffer.
func (m *model) seedEditor() {
	if m.current == nil {
		return
	}
	pretty, err := json.MarshalIndent(m.current, "", "  ")
	if err != nil {
		return
	}
	m.editor.SetValue(string(pretty))
}

func (m model) moveFocus(delta int) model {
	areas := []focusArea{focusSidebar, focusInstruction, focusModification}
	if m.showEditor {
		areas = append(areas, focusEditor)
	}
	idx := 0
	for i, area := range areas {
		if area == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(areas)) % len(areas)
	m.focus = areas[idx]

	m.instruction.Blur()
	m.modification.Blur()
	m.editor.Blur()
	switch m.focus {
	case focusInstruction:
		m.instruction.Focus()
	case focusModification:
		m.modification.Focus()
	case focusEditor:
		m.editor.Focus()
	}
	return m
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInstruction:
		m.instruction, cmd = m.instruction.Update(msg)
	case focusModification:
		m.modification, cmd = m.modification.Update(msg)
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}
