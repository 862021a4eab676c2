package model

import (
	"time"
)

// Phase represents the pomodoro countdown state
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// IsBreak reports whether the phase is one of the two break kinds
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// PomodoroSession is one completed (or abandoned) timer run.
// History is append-only and capped to the last 100 entries on persistence.
type PomodoroSession struct {
	ID           string     `json:"id"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Phase        Phase      `json:"phase"`    // phase kind at completion time
	Duration     int        `json:"duration"` // minutes
	LinkedTaskID string     `json:"linked_task_id,omitempty"`
}
