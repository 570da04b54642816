package dto

import "github.com/spec-kit/exam-portal/internal/routes"

// ViewResponse tells the UI which view to render for an allowed path.
type ViewResponse struct {
	View   string        `json:"view"`
	Name   string        `json:"name"`
	Path   string        `json:"path"`
	Params routes.Params `json:"params,omitempty"`
}
