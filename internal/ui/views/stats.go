package views

import (
	"fmt"
	"strings"

	"github.com/adilev/focusboard/internal/store"
	"github.com/adilev/focusboard/internal/ui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatsView renders today's counters, the streak and the productivity
// score. It reads store snapshots on every render; accuracy depends on
// the other views calling the analytics record methods.
type StatsView struct {
	analytics *store.AnalyticsStore
	pomodoro  *store.PomodoroStore
	settings  *store.SettingsStore
	width     int
	height    int
}

// NewStatsView creates the stats view
func NewStatsView(analytics *store.AnalyticsStore, pomodoro *store.PomodoroStore, settings *store.SettingsStore) StatsView {
	return StatsView{analytics: analytics, pomodoro: pomodoro, settings: settings}
}

// Init initializes the stats view
func (v StatsView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v StatsView) SetSize(width, height int) StatsView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v StatsView) IsInputMode() bool {
	return false
}

// Update handles messages
func (v StatsView) Update(msg tea.Msg) (StatsView, tea.Cmd) {
	return v, nil
}

// View renders the statistics
func (v StatsView) View() string {
	if v.width == 0 {
		return "Loading..."
	}
	t := theme.Current

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Statistics"))
	lines = append(lines, "")

	today := v.analytics.TodayStats()
	goal := v.settings.Settings().DailyGoal

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("Today"))
	lines = append(lines, fmt.Sprintf("  Tasks completed:    %d", today.TasksCompleted))
	lines = append(lines, fmt.Sprintf("  Todos completed:    %d", today.TodosCompleted))
	lines = append(lines, fmt.Sprintf("  Pomodoro sessions:  %d", today.PomodoroSessions))
	lines = append(lines, fmt.Sprintf("  Focus minutes:      %d", today.FocusMinutes))
	if goal > 0 {
		done := today.TasksCompleted + today.TodosCompleted
		lines = append(lines, fmt.Sprintf("  Daily goal:         %s", progressBar(done, goal, 20, t.Success, t.Subtle)))
	}
	lines = append(lines, "")

	score := v.analytics.ProductivityScore()
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("Productivity score"))
	lines = append(lines, fmt.Sprintf("  %s %d/100", progressBar(score, 100, 25, scoreColor(score, t), t.Subtle), score))
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("Streak"))
	flames := strings.Repeat("🔥", min(v.analytics.CurrentStreak(), 14))
	if flames == "" {
		flames = lipgloss.NewStyle().Foreground(t.Subtle).Render("(none yet)")
	}
	lines = append(lines, fmt.Sprintf("  Current: %d %s", v.analytics.CurrentStreak(), flames))
	lines = append(lines, fmt.Sprintf("  Longest: %d", v.analytics.LongestStreak()))
	lines = append(lines, "")

	weekSessions, weekMinutes := v.pomodoro.WeekStats()
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("This week"))
	lines = append(lines, fmt.Sprintf("  Pomodoro sessions:  %d", weekSessions))
	lines = append(lines, fmt.Sprintf("  Focus minutes:      %d", weekMinutes))
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("All time"))
	lines = append(lines, fmt.Sprintf("  Tasks completed:    %d", v.analytics.TotalTasksCompleted()))
	lines = append(lines, fmt.Sprintf("  Focus minutes:      %d", v.analytics.TotalFocusMinutes()))

	return strings.Join(lines, "\n")
}

func progressBar(value, total, width int, fg, bg lipgloss.Color) string {
	if total <= 0 {
		total = 1
	}
	filled := value * width / total
	if filled > width {
		filled = width
	}
	bar := lipgloss.NewStyle().Foreground(fg).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(bg).Render(strings.Repeat("░", width-filled))
	return bar
}

func scoreColor(score int, t theme.Theme) lipgloss.Color {
	switch {
	case score >= 70:
		return t.Success
	case score >= 40:
		return t.Warning
	default:
		return t.Error
	}
}
