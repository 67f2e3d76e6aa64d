package models

// LaunchRequest asks the platform to start a job from a template.
// ExtraVars is interpreted entirely by the platform.
type LaunchRequest struct {
	TemplateID int            `json:"template_id" binding:"required"`
	ExtraVars  map[string]any `json:"extra_vars"`
}
