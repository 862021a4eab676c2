package model

// DateKey is the calendar-day format used to bucket analytics records
const DateKey = "2006-01-02"

// DailyStats aggregates one calendar day of productive activity.
// One record per day, created lazily on the first event of that day,
// persisted truncated to the last 30 days.
type DailyStats struct {
	Date             string `json:"date"` // DateKey format
	TasksCompleted   int    `json:"tasks_completed"`
	TodosCompleted   int    `json:"todos_completed"`
	PomodoroSessions int    `json:"pomodoro_sessions"`
	FocusMinutes     int    `json:"focus_minutes"`
}

// HasActivity reports whether the day counts toward a streak
func (d *DailyStats) HasActivity() bool {
	return d.TasksCompleted > 0 || d.TodosCompleted > 0 || d.PomodoroSessions > 0
}
