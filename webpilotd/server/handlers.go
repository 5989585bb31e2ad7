package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/marover/webpilot/internals/naming"
	"github.com/marover/webpilot/internals/schemas"
)

func (s *Server) HandlerListTasks(w http.ResponseWriter, r *http.Request) {
	names, err := s.plans.names(r.Context())
	if err != nil {
		RenderJSON(w, r, JsonResponseError("failed to list tasks"), Render.Status(http.StatusInternalServerError))
		return
	}
	RenderJSON(w, r, schemas.ListTasksResponse{Tasks: names})
}

// HandlerGenerateTask stands in for the LLM planner: it derives a task name
// from the instruction and stores a placeholder plan so the rest of the
// client flow can be exercised offline.
func (s *Server) HandlerGenerateTask(w http.ResponseWriter, r *http.Request) {
	var request schemas.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		RenderJSON(w, r, JsonResponseError("invalid json"), Render.Status(http.StatusBadRequest))
		return
	}

	instruction := strings.TrimSpace(request.Instruction)
	if instruction == "" {
		RenderJSON(w, r, JsonResponseError("instruction required"))
		return
	}

	name := naming.TaskNameFromInstruction(instruction)
	if name == "" {
		name = "task"
	}
	plan := schemas.Plan{
		Task: name,
		Steps: []schemas.Step{
			{Action: "goto", Target: "<website>"},
			{Action: "note", Target: "instruction", Value: instruction},
		},
	}
	plan.ReadableText = plan.Readable()

	if err := s.plans.save(r.Context(), plan, plan.ReadableText); err != nil {
		RenderJSON(w, r, JsonResponseError("failed to save plan"), Render.Status(http.StatusInternalServerError))
		return
	}
	RenderJSON(w, r, plan)
}

// HandlerModifyTask appends the modification as a note step. A real backend
// would re-plan; the stub only needs to return a changed plan.
func (s *Server) HandlerModifyTask(w http.ResponseWriter, r *http.Request) {
	var request schemas.ModifyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		RenderJSON(w, r, JsonResponseError("invalid json"), Render.Status(http.StatusBadRequest))
		return
	}

	taskName := strings.TrimSpace(request.Task)
	modification := strings.TrimSpace(request.Modification)
	if taskName == "" || modification == "" {
		RenderJSON(w, r, JsonResponseError("task & modification required"))
		return
	}

	plan, _, err := s.plans.plan(r.Context(), taskName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RenderJSON(w, r, JsonResponseError("task not found"))
			return
		}
		RenderJSON(w, r, JsonResponseError("failed to load plan"), Render.Status(http.StatusInternalServerError))
		return
	}

	plan.Steps = append(plan.Steps, schemas.Step{Action: "note", Target: "modification", Value: modification})
	plan.ReadableText = plan.Readable()

	if err := s.plans.save(r.Context(), *plan, plan.ReadableText); err != nil {
		RenderJSON(w, r, JsonResponseError("failed to save plan"), Render.Status(http.StatusInternalServerError))
		return
	}
	RenderJSON(w, r, plan)
}

func (s *Server) HandlerExecuteTask(w http.ResponseWriter, r *http.Request) {
	var request schemas.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		RenderJSON(w, r, JsonResponseError("invalid json"), Render.Status(http.StatusBadRequest))
		return
	}

	taskName := strings.TrimSpace(request.Task)
	if taskName == "" {
		RenderJSON(w, r, JsonResponseError("task required"))
		return
	}

	plan, _, err := s.plans.plan(r.Context(), taskName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RenderJSON(w, r, JsonResponseError("task not found"))
			return
		}
		RenderJSON(w, r, JsonResponseError("failed to load plan"), Render.Status(http.StatusInternalServerError))
		return
	}

	// No automation engine here: report each step as skipped.
	steps := make([]map[string]string, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		steps = append(steps, map[string]string{
			"action": step.Action,
			"target": step.Target,
			"result": "skipped (dev backend)",
		})
	}
	RenderJSON(w, r, map[string]any{
		"status":      "success",
		"task":        plan.Task,
		"steps":       steps,
		"executed_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) HandlerExecuteTaskWithVideo(w http.ResponseWriter, r *http.Request) {
	var request schemas.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		RenderJSON(w, r, JsonResponseError("invalid json"), Render.Status(http.StatusBadRequest))
		return
	}

	taskName := strings.TrimSpace(request.Task)
	if taskName == "" {
		RenderJSON(w, r, JsonResponseError("task required"))
		return
	}

	if _, _, err := s.plans.plan(r.Context(), taskName); err != nil {
		RenderJSON(w, r, StatusResponse{Status: JsonResponseStatusFailed, Message: "task not found"})
		return
	}

	// Videos only exist when a fixture has been dropped in the videos dir.
	filename := taskName + ".mp4"
	if _, err := os.Stat(filepath.Join(s.videosDir, filename)); err != nil {
		RenderJSON(w, r, StatusResponse{
			Status:  JsonResponseStatusFailed,
			Message: "no video recording available on the dev backend",
		})
		return
	}

	RenderJSON(w, r, StatusResponse{Status: JsonResponseStatusSuccess, Video: filename})
}

func (s *Server) HandlerDeveloperTask(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		RenderJSON(w, r, JsonResponseError("task name is required"), Render.Status(http.StatusBadRequest))
		return
	}

	plan, readableText, err := s.plans.plan(r.Context(), name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RenderJSON(w, r, JsonResponseError("task not found"))
			return
		}
		RenderJSON(w, r, JsonResponseError("failed to load plan"), Render.Status(http.StatusInternalServerError))
		return
	}

	RenderJSON(w, r, schemas.DeveloperTaskResponse{ReadableText: readableText, Plan: *plan})
}

func (s *Server) HandlerExecuteJSON(w http.ResponseWriter, r *http.Request) {
	var plan schemas.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		RenderJSON(w, r, JsonResponseError("invalid json"), Render.Status(http.StatusBadRequest))
		return
	}

	if err := schemas.ValidatePlan(&plan); err != nil {
		RenderJSON(w, r, JsonResponseError("task or steps missing"))
		return
	}

	plan.ReadableText = plan.Readable()
	if err := s.plans.save(r.Context(), plan, plan.ReadableText); err != nil {
		RenderJSON(w, r, JsonResponseError("failed to save plan"), Render.Status(http.StatusInternalServerError))
		return
	}

	RenderJSON(w, r, StatusResponse{
		Status:  JsonResponseStatusSuccess,
		Message: fmt.Sprintf("%s saved and executed", plan.Task),
	})
}

func (s *Server) HandlerVideo(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	if file == "" || file != filepath.Base(file) {
		RenderJSON(w, r, JsonResponseError("invalid video name"), Render.Status(http.StatusBadRequest))
		return
	}
	http.ServeFile(w, r, filepath.Join(s.videosDir, file))
}
