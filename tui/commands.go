package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marover/webpilot/internals/desktop"
	"github.com/marover/webpilot/internals/schemas"
	"github.com/marover/webpilot/internals/timeouts"
	"github.com/marover/webpilot/sdk"
)

// Requests run as plain commands with no coordination: a second trigger
// while one is in flight issues a second concurrent request, and the last
// response to land wins.

type tasksMsg struct {
	tasks []string
	err   error
}

type planMsg struct {
	plan *schemas.Plan
	err  error
}

type detailMsg struct {
	name   string
	detail *schemas.DeveloperTaskResponse
	err    error
}

type execMsg struct {
	result schemas.ExecuteResult
	err    error
}

type execJSONMsg struct {
	plan   schemas.Plan
	result schemas.ExecuteResult
	err    error
}

type videoMsg struct {
	result *schemas.VideoResult
	err    error
}

type videoOpenedMsg struct {
	err error
}

func loadTasks(client *sdk.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.SecondDefault)
		defer cancel()
		payload, err := client.ListTasks(ctx)
		if err != nil {
			return tasksMsg{err: err}
		}
		return tasksMsg{tasks: payload.Tasks}
	}
}

func loadDetail(client *sdk.Client, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.SecondDefault)
		defer cancel()
		detail, err := client.DeveloperTask(ctx, name)
		return detailMsg{name: name, detail: detail, err: err}
	}
}

func generatePlan(client *sdk.Client, instruction string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.MinuteGenerate)
		defer cancel()
		plan, err := client.GenerateTask(ctx, instruction)
		return planMsg{plan: plan, err: err}
	}
}

func modifyPlan(client *sdk.Client, task string, modification string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.MinuteGenerate)
		defer cancel()
		plan, err := client.ModifyTask(ctx, task, modification)
		return planMsg{plan: plan, err: err}
	}
}

func executePlan(client *sdk.Client, task string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.MinuteExecute)
		defer cancel()
		result, err := client.ExecuteTask(ctx, task)
		return execMsg{result: result, err: err}
	}
}

func executePlanWithVideo(client *sdk.Client, task string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.MinuteExecute)
		defer cancel()
		result, err := client.ExecuteTaskWithVideo(ctx, task)
		return videoMsg{result: result, err: err}
	}
}

func executeJSON(client *sdk.Client, plan schemas.Plan) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.MinuteExecute)
		defer cancel()
		result, err := client.ExecuteJSON(ctx, plan)
		return execJSONMsg{plan: plan, result: result, err: err}
	}
}

func openVideo(url string) tea.Cmd {
	return func() tea.Msg {
		return videoOpenedMsg{err: desktop.OpenURL(url)}
	}
}
