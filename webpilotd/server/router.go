package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.MiddlewareLogger)
	r.Get("/list-tasks", s.HandlerListTasks)
	r.Post("/generate-task", s.HandlerGenerateTask)
	r.Post("/modify-task", s.HandlerModifyTask)
	r.Post("/execute-task", s.HandlerExecuteTask)
	r.Post("/execute-task-with-video", s.HandlerExecuteTaskWithVideo)
	r.Get("/developer-task/{name}", s.HandlerDeveloperTask)
	r.Post("/execute-json", s.HandlerExecuteJSON)
	r.Get("/videos/{file}", s.HandlerVideo)
	return r
}
