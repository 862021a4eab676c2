package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/store"
	"github.com/adilev/focusboard/internal/ui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pomodoroTickMsg struct{}

// tickCmd drives the store's one-second countdown
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return pomodoroTickMsg{}
	})
}

// PomodoroView renders the timer and the focus-task picker. It is the
// wiring point between the pomodoro store and analytics: completed work
// transitions are recorded here.
type PomodoroView struct {
	pomodoro  *store.PomodoroStore
	kanban    *store.KanbanStore
	analytics *store.AnalyticsStore
	width     int
	height    int

	taskCursor int
	taskID     string
	statusMsg  string
}

// NewPomodoroView creates the pomodoro view
func NewPomodoroView(pomodoro *store.PomodoroStore, kanban *store.KanbanStore, analytics *store.AnalyticsStore) PomodoroView {
	return PomodoroView{pomodoro: pomodoro, kanban: kanban, analytics: analytics}
}

// Init starts the tick loop; ticks are no-ops while the timer is idle
func (v PomodoroView) Init() tea.Cmd {
	return tickCmd()
}

// SetSize sets the view dimensions
func (v PomodoroView) SetSize(width, height int) PomodoroView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v PomodoroView) IsInputMode() bool {
	return false
}

// pickableTasks lists open tasks for the focus picker
func (v PomodoroView) pickableTasks() []model.Task {
	var out []model.Task
	for _, t := range v.kanban.Tasks() {
		if t.Status != model.StatusComplete {
			out = append(out, t)
		}
	}
	return out
}

func (v *PomodoroView) apply(tr *store.PhaseTransition) {
	if tr == nil {
		return
	}
	if tr.Session != nil {
		v.analytics.RecordPomodoroSession(tr.Session.Duration)
		v.statusMsg = fmt.Sprintf("Pomodoro #%d complete! Take a break.", v.pomodoro.SessionsCompleted())
	} else if tr.From.IsBreak() {
		v.statusMsg = "Break over! Ready for the next pomodoro."
	}
}

// Update handles messages
func (v PomodoroView) Update(msg tea.Msg) (PomodoroView, tea.Cmd) {
	switch msg := msg.(type) {
	case pomodoroTickMsg:
		v.apply(v.pomodoro.Tick())
		return v, tickCmd()

	case tea.KeyMsg:
		tasks := v.pickableTasks()
		switch msg.String() {
		case "j", "down":
			if v.pomodoro.Phase() == model.PhaseIdle && v.taskCursor < len(tasks)-1 {
				v.taskCursor++
			}
		case "k", "up":
			if v.pomodoro.Phase() == model.PhaseIdle && v.taskCursor > 0 {
				v.taskCursor--
			}
		case "enter":
			if v.pomodoro.Phase() == model.PhaseIdle && len(tasks) > 0 {
				v.taskID = tasks[v.taskCursor].ID
			}
		case "s", " ":
			switch {
			case v.pomodoro.Phase() == model.PhaseIdle:
				v.pomodoro.Start(v.taskID)
				v.statusMsg = "Focus time started!"
			case v.pomodoro.IsRunning():
				v.pomodoro.Pause()
				v.statusMsg = "Paused"
			default:
				v.pomodoro.Resume()
				v.statusMsg = "Resumed"
			}
		case "n":
			if tr := v.pomodoro.Skip(); tr != nil {
				v.statusMsg = fmt.Sprintf("Skipped to %s", phaseLabel(tr.To))
			}
		case "r":
			v.pomodoro.Reset()
			v.taskID = ""
			v.statusMsg = "Timer reset"
		case "c":
			v.taskID = ""
			v.statusMsg = "Task cleared"
		}
	}
	return v, nil
}

// View renders the timer
func (v PomodoroView) View() string {
	if v.width == 0 {
		return "Loading..."
	}
	t := theme.Current

	var sections []string
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1)
	sections = append(sections, titleStyle.Render("Pomodoro"))
	sections = append(sections, v.renderTimer())

	if v.taskID != "" {
		if task := v.kanban.Task(v.taskID); task != nil {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(t.Info).MarginTop(1).
				Render(fmt.Sprintf("Working on: %s", task.Title)))
		}
	}

	count, minutes := v.pomodoro.TodayStats()
	sections = append(sections, lipgloss.NewStyle().
		Foreground(t.Subtle).MarginTop(1).
		Render(fmt.Sprintf("Today: %d sessions, %d focus minutes", count, minutes)))

	if v.pomodoro.Phase() == model.PhaseIdle {
		if list := v.renderTaskList(); list != "" {
			sections = append(sections, list)
		}
	}

	if v.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(t.Success).MarginTop(1).Render(v.statusMsg))
	}

	sections = append(sections, v.renderControls())
	return strings.Join(sections, "\n")
}

func (v PomodoroView) renderTimer() string {
	t := theme.Current

	remaining := v.pomodoro.TimeRemaining()
	timeStr := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)

	var color lipgloss.Color
	switch {
	case v.pomodoro.Phase() == model.PhaseWork && v.pomodoro.IsRunning():
		color = t.Error
	case v.pomodoro.Phase().IsBreak():
		color = t.Success
	case !v.pomodoro.IsRunning() && v.pomodoro.Phase() != model.PhaseIdle:
		color = t.Warning
	default:
		color = t.Foreground
	}

	label := phaseLabel(v.pomodoro.Phase())
	if v.pomodoro.Phase() != model.PhaseIdle && !v.pomodoro.IsRunning() {
		label = "PAUSED"
	}

	box := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)

	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(label),
		box.Render(timeStr),
	)
}

func (v PomodoroView) renderTaskList() string {
	t := theme.Current
	tasks := v.pickableTasks()
	if len(tasks) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Bold(true).Foreground(t.Secondary).MarginTop(1).
		Render("Select a task to focus on:"))

	maxShow := 8
	for i, task := range tasks {
		if i >= maxShow {
			lines = append(lines, lipgloss.NewStyle().Foreground(t.Subtle).
				Render(fmt.Sprintf("  … +%d more", len(tasks)-maxShow)))
			break
		}
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == v.taskCursor {
			cursor = "> "
			style = style.Background(t.Highlight).Bold(true)
		}
		if task.ID == v.taskID {
			style = style.Foreground(t.Success)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%s %s", cursor, task.Priority, task.Title)))
	}
	return strings.Join(lines, "\n")
}

func (v PomodoroView) renderControls() string {
	t := theme.Current
	var controls string
	switch {
	case v.pomodoro.Phase() == model.PhaseIdle:
		controls = "s/space start • j/k select task • enter pick • c clear task"
	case v.pomodoro.IsRunning():
		controls = "s/space pause • n skip phase • r reset"
	default:
		controls = "s/space resume • n skip phase • r reset"
	}
	return lipgloss.NewStyle().Foreground(t.Subtle).MarginTop(2).Render(controls)
}

func phaseLabel(p model.Phase) string {
	switch p {
	case model.PhaseWork:
		return "FOCUS"
	case model.PhaseShortBreak:
		return "SHORT BREAK"
	case model.PhaseLongBreak:
		return "LONG BREAK"
	default:
		return "READY"
	}
}
