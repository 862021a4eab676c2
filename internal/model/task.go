package model

import (
	"time"
)

// Status represents the kanban column a task lives in
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Statuses lists every column in board order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusComplete}

// Priority represents task priority level, p0 being the most urgent
type Priority string

const (
	PriorityP0 Priority = "p0"
	PriorityP1 Priority = "p1"
	PriorityP2 Priority = "p2"
	PriorityP3 Priority = "p3"
)

// Weight returns a numeric weight for sorting, higher is more urgent
func (p Priority) Weight() int {
	switch p {
	case PriorityP0:
		return 4
	case PriorityP1:
		return 3
	case PriorityP2:
		return 2
	case PriorityP3:
		return 1
	default:
		return 2
	}
}

// Task represents a kanban board item
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Status           Status     `json:"status"`
	Priority         Priority   `json:"priority"`
	Labels           []string   `json:"labels"` // label ids, soft references
	Subtasks         []Subtask  `json:"subtasks"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	EstimatedMinutes *int       `json:"estimated_minutes,omitempty"`
	AIGenerated      bool       `json:"ai_generated,omitempty"`
	CodeSnippet      string     `json:"code_snippet,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsOverdue returns true if the task is past its due date and not complete
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Status == StatusComplete {
		return false
	}
	return time.Now().After(*t.DueDate)
}

// HasLabel reports whether the task references the given label id
func (t *Task) HasLabel(labelID string) bool {
	for _, id := range t.Labels {
		if id == labelID {
			return true
		}
	}
	return false
}

// SubtaskProgress returns completed and total subtask counts
func (t *Task) SubtaskProgress() (done, total int) {
	for _, st := range t.Subtasks {
		if st.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// Subtask is a checklist line owned by its parent task
type Subtask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Label represents a colored tag referenced by tasks
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex string like "#BF616A"
}

// TaskDraft holds the caller-supplied fields for a new task; zero values
// fall back to store defaults
type TaskDraft struct {
	Title            string
	Description      string
	Status           Status
	Priority         Priority
	Labels           []string
	Subtasks         []string // subtask texts
	DueDate          *time.Time
	EstimatedMinutes *int
	AIGenerated      bool
	CodeSnippet      string
}

// TaskPatch holds optional field updates; nil means leave unchanged
type TaskPatch struct {
	Title            *string
	Description      *string
	Status           *Status
	Priority         *Priority
	Labels           *[]string
	DueDate          **time.Time
	EstimatedMinutes **int
	AIGenerated      *bool
	CodeSnippet      *string
}

// FilterState narrows the visible task set. It is transient and never
// persisted; the zero value matches everything.
type FilterState struct {
	Search      string
	Statuses    []Status
	Priorities  []Priority
	Labels      []string
	AIGenerated *bool // tri-state: nil means no filter
	DueAfter    *time.Time
	DueBefore   *time.Time
}

// IsEmpty reports whether the filter matches everything
func (f FilterState) IsEmpty() bool {
	return f.Search == "" &&
		len(f.Statuses) == 0 &&
		len(f.Priorities) == 0 &&
		len(f.Labels) == 0 &&
		f.AIGenerated == nil &&
		f.DueAfter == nil &&
		f.DueBefore == nil
}
