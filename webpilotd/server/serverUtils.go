package server

import (
	"encoding/json"
	"net/http"
)

// The reference backend reports logical failures inside HTTP 200 bodies, so
// the render helpers default to 200 and callers opt into other codes.

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFailed  JsonResponseStatus = "failed"
	JsonResponseStatusError   JsonResponseStatus = "error"
)

type StatusResponse struct {
	Status  JsonResponseStatus `json:"status"`
	Message string             `json:"message,omitempty"`
	Video   string             `json:"video,omitempty"`
}

func JsonResponseError(message string) *StatusResponse {
	return &StatusResponse{
		Status:  JsonResponseStatusError,
		Message: message,
	}
}

type RenderOption = func(w http.ResponseWriter, r *http.Request)

type Renderer struct {
}

func (r *Renderer) Status(status int) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

var Render = Renderer{}

func RenderJSON(w http.ResponseWriter, r *http.Request, payload any, opts ...RenderOption) {
	w.Header().Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(w, r)
	}
	_ = json.NewEncoder(w).Encode(payload)
}
