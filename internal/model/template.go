package model

// TaskTemplate seeds new tasks from a reusable preset. Built-in defaults
// are reconstructed from code on every load; only custom templates are
// persisted. IsDefault is immutable once created and blocks deletion.
type TaskTemplate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	IsDefault bool            `json:"is_default"`
	Payload   TemplatePayload `json:"payload"`
}

// TemplatePayload is the persisted partial-task seed
type TemplatePayload struct {
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Priority         Priority `json:"priority,omitempty"`
	Labels           []string `json:"labels,omitempty"`
	Subtasks         []string `json:"subtasks,omitempty"`
	EstimatedMinutes *int     `json:"estimated_minutes,omitempty"`
	CodeSnippet      string   `json:"code_snippet,omitempty"`
}

// Draft converts the payload into a TaskDraft for the kanban store
func (t *TaskTemplate) Draft() TaskDraft {
	return TaskDraft{
		Title:            t.Payload.Title,
		Description:      t.Payload.Description,
		Priority:         t.Payload.Priority,
		Labels:           append([]string(nil), t.Payload.Labels...),
		Subtasks:         append([]string(nil), t.Payload.Subtasks...),
		EstimatedMinutes: t.Payload.EstimatedMinutes,
		CodeSnippet:      t.Payload.CodeSnippet,
	}
}
