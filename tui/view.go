package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marover/webpilot/internals/schemas"
)

func (m model) View() string {
	sidebar := m.viewSidebar()
	main := m.viewMain()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)

	sections := []string{
		titleStyle.Render("webpilot"),
		body,
		m.viewStatus(),
		helpStyle.Render("tab: focus  enter: select/submit  ctrl+e: run  ctrl+v: run+video  ctrl+d: editor  ctrl+x: run JSON  ctrl+r: refresh  ctrl+c: quit"),
	}
	return strings.Join(sections, "\n")
}

func (m model) viewSidebar() string {
	lines := []string{"Tasks", ""}
	if len(m.tasks) == 0 {
		lines = append(lines, "(none)")
	}
	for i, name := range m.tasks {
		marker := "  "
		if i == m.cursor && m.focus == focusSidebar {
			marker = "> "
		}
		line := marker + name
		if m.current != nil && name == m.current.Task {
			line = selectedTaskStyle.Render(line)
		}
		lines = append(lines, line)
	}

	style := sidebarStyle
	if m.focus == focusSidebar {
		style = sidebarFocusedStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.instruction.View())
	b.WriteString("\n")
	b.WriteString(m.modification.View())
	b.WriteString("\n\n")

	if m.current != nil {
		fmt.Fprintf(&b, "Plan: %s\n", m.current.Task)
		for i, step := range m.current.Steps {
			value := step.DisplayValue()
			if value != "" {
				fmt.Fprintf(&b, "  %d. %s %s (value: %s)\n", i+1, step.Action, step.Target, value)
			} else {
				fmt.Fprintf(&b, "  %d. %s %s\n", i+1, step.Action, step.Target)
			}
		}
		if m.readableText != "" {
			b.WriteString("\n")
			b.WriteString(m.readableText)
		}
	} else {
		b.WriteString("No task selected. Generate one or pick from the list.\n")
	}

	if m.showEditor {
		b.WriteString("\nRaw JSON\n")
		b.WriteString(m.editor.View())
		b.WriteString("\n")
	}

	if m.result != "" {
		b.WriteString("\nLast result\n")
		b.WriteString(m.result)
		b.WriteString("\n")
	}

	return panelStyle.Render(b.String())
}

func (m model) viewStatus() string {
	var parts []string
	if m.status.Busy() {
		parts = append(parts, m.spinner.View())
	}
	parts = append(parts, "status: "+m.status.String())
	line := statusStyle.Render(strings.Join(parts, " "))

	if m.inputErr != "" {
		line += "  " + errorStyle.Render(m.inputErr)
	}
	if m.status == schemas.StatusError && m.errText != "" {
		line += "  " + errorStyle.Render(m.errText)
	}
	return line
}
