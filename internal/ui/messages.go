package ui

// View represents the current active view
type View int

const (
	ViewBoard View = iota
	ViewTodos
	ViewNotes
	ViewPomodoro
	ViewStats
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewBoard:
		return "Board"
	case ViewTodos:
		return "Todos"
	case ViewNotes:
		return "Notes"
	case ViewPomodoro:
		return "Pomodoro"
	case ViewStats:
		return "Stats"
	default:
		return "Unknown"
	}
}

// ViewFromName maps a --view flag value onto a view
func ViewFromName(name string) View {
	switch name {
	case "todos":
		return ViewTodos
	case "notes":
		return ViewNotes
	case "pomodoro":
		return ViewPomodoro
	case "stats":
		return ViewStats
	default:
		return ViewBoard
	}
}

// StatusMsg contains a status message to display in the footer
type StatusMsg struct {
	Message string
}
