// Package views contains the bubbletea models for each screen. Views are
// the wiring layer between stores: completing a task here is what feeds
// the analytics store.
package views

import (
	"fmt"
	"strings"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/store"
	"github.com/adilev/focusboard/internal/ui/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type boardMode int

const (
	boardModeNormal boardMode = iota
	boardModeAdd
	boardModeSearch
	boardModeTemplates
)

// BoardView renders the kanban columns
type BoardView struct {
	kanban    *store.KanbanStore
	analytics *store.AnalyticsStore
	templates *store.TemplateStore
	width     int
	height    int

	mode       boardMode
	col        int // column cursor, indexes model.Statuses
	row        int
	tplCursor  int
	input      textinput.Model
	statusMsg  string
}

// NewBoardView creates the board view
func NewBoardView(kanban *store.KanbanStore, analytics *store.AnalyticsStore, templates *store.TemplateStore) BoardView {
	ti := textinput.New()
	ti.Placeholder = "Task title…"
	ti.CharLimit = 200
	return BoardView{
		kanban:    kanban,
		analytics: analytics,
		templates: templates,
		input:     ti,
	}
}

// Init initializes the board view
func (v BoardView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v BoardView) SetSize(width, height int) BoardView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v BoardView) IsInputMode() bool {
	return v.mode == boardModeAdd || v.mode == boardModeSearch
}

func (v BoardView) column() model.Status {
	return model.Statuses[v.col]
}

func (v BoardView) columnTasks() []model.Task {
	return v.kanban.TasksByStatus(v.column())
}

// Update handles messages
func (v BoardView) Update(msg tea.Msg) (BoardView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case boardModeAdd:
			switch msg.String() {
			case "enter":
				title := strings.TrimSpace(v.input.Value())
				if title != "" {
					v.kanban.AddTask(model.TaskDraft{Title: title, Status: v.column()})
					v.statusMsg = "Task added"
				}
				v.input.Reset()
				v.mode = boardModeNormal
				return v, nil
			case "esc":
				v.input.Reset()
				v.mode = boardModeNormal
				return v, nil
			default:
				var cmd tea.Cmd
				v.input, cmd = v.input.Update(msg)
				return v, cmd
			}

		case boardModeSearch:
			switch msg.String() {
			case "enter", "esc":
				if msg.String() == "esc" {
					v.input.Reset()
					v.kanban.ResetFilter()
				}
				v.mode = boardModeNormal
				return v, nil
			default:
				var cmd tea.Cmd
				v.input, cmd = v.input.Update(msg)
				v.kanban.SetFilter(model.FilterState{Search: v.input.Value()})
				v.row = 0
				return v, cmd
			}

		case boardModeTemplates:
			tpls := v.templates.Templates()
			switch msg.String() {
			case "j", "down":
				if v.tplCursor < len(tpls)-1 {
					v.tplCursor++
				}
			case "k", "up":
				if v.tplCursor > 0 {
					v.tplCursor--
				}
			case "enter":
				if v.tplCursor < len(tpls) {
					tpl := tpls[v.tplCursor]
					v.kanban.AddTask(tpl.Draft())
					v.statusMsg = fmt.Sprintf("Created from %s", tpl.Name)
				}
				v.mode = boardModeNormal
			case "esc":
				v.mode = boardModeNormal
			}
			return v, nil
		}

		// Normal mode
		tasks := v.columnTasks()
		switch msg.String() {
		case "j", "down":
			if v.row < len(tasks)-1 {
				v.row++
			}
		case "k", "up":
			if v.row > 0 {
				v.row--
			}
		case "h", "left":
			if v.col > 0 {
				v.col--
				v.row = 0
			}
		case "l", "right":
			if v.col < len(model.Statuses)-1 {
				v.col++
				v.row = 0
			}
		case "g":
			v.row = 0
		case "G":
			if len(tasks) > 0 {
				v.row = len(tasks) - 1
			}
		case "a":
			v.mode = boardModeAdd
			v.input.Focus()
			return v, textinput.Blink
		case "/":
			v.mode = boardModeSearch
			v.input.SetValue(v.kanban.Filter().Search)
			v.input.Focus()
			return v, textinput.Blink
		case "t":
			v.mode = boardModeTemplates
			v.tplCursor = 0
		case "d":
			if v.row < len(tasks) {
				v.kanban.DeleteTask(tasks[v.row].ID)
				if v.row > 0 {
					v.row--
				}
				v.statusMsg = "Task deleted"
			}
		case "m":
			// Move right one column; completing a task feeds analytics
			if v.row < len(tasks) && v.col < len(model.Statuses)-1 {
				next := model.Statuses[v.col+1]
				v.kanban.MoveTask(tasks[v.row].ID, next)
				if next == model.StatusComplete {
					v.analytics.RecordTaskCompletion()
				}
				if v.row > 0 {
					v.row--
				}
			}
		case "tab":
			if v.row < len(tasks) {
				t := tasks[v.row]
				if t.Status != model.StatusComplete {
					v.kanban.MoveTask(t.ID, model.StatusComplete)
					v.analytics.RecordTaskCompletion()
				} else {
					v.kanban.MoveTask(t.ID, model.StatusTodo)
				}
			}
		case "p":
			if v.row < len(tasks) {
				v.kanban.UpdateTask(tasks[v.row].ID, model.TaskPatch{Priority: nextPriority(tasks[v.row].Priority)})
			}
		}
	}
	return v, nil
}

func nextPriority(p model.Priority) *model.Priority {
	var next model.Priority
	switch p {
	case model.PriorityP0:
		next = model.PriorityP1
	case model.PriorityP1:
		next = model.PriorityP2
	case model.PriorityP2:
		next = model.PriorityP3
	default:
		next = model.PriorityP0
	}
	return &next
}

// View renders the board
func (v BoardView) View() string {
	if v.width == 0 {
		return "Loading..."
	}
	t := theme.Current

	colWidth := v.width/len(model.Statuses) - 2
	if colWidth < 16 {
		colWidth = 16
	}

	var cols []string
	for ci, status := range model.Statuses {
		tasks := v.kanban.TasksByStatus(status)

		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.ForStatus(status)).
			Render(fmt.Sprintf("%s (%d)", columnTitle(status), len(tasks)))

		var lines []string
		lines = append(lines, header)
		for ti, task := range tasks {
			style := lipgloss.NewStyle().Width(colWidth)
			if ci == v.col && ti == v.row && v.mode == boardModeNormal {
				style = style.Background(t.Highlight).Bold(true)
			}
			prio := lipgloss.NewStyle().
				Foreground(theme.ForPriority(task.Priority)).
				Render(string(task.Priority))
			title := task.Title
			if len([]rune(title)) > colWidth-6 {
				title = string([]rune(title)[:colWidth-6]) + "…"
			}
			line := fmt.Sprintf("%s %s", prio, title)
			if done, total := task.SubtaskProgress(); total > 0 {
				line += lipgloss.NewStyle().Foreground(t.Subtle).
					Render(fmt.Sprintf(" %d/%d", done, total))
			}
			if task.IsOverdue() {
				line += lipgloss.NewStyle().Foreground(t.Error).Render(" !")
			}
			lines = append(lines, style.Render(line))
		}

		border := lipgloss.NewStyle().
			Width(colWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border)
		if ci == v.col {
			border = border.BorderForeground(t.Primary)
		}
		cols = append(cols, border.Render(strings.Join(lines, "\n")))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	switch v.mode {
	case boardModeAdd:
		out += "\n" + lipgloss.NewStyle().Foreground(t.Primary).Render("New task: ") + v.input.View()
	case boardModeSearch:
		out += "\n" + lipgloss.NewStyle().Foreground(t.Primary).Render("Search: ") + v.input.View()
	case boardModeTemplates:
		out += "\n" + v.renderTemplatePicker()
	default:
		hint := "a add • t template • m move • tab done • p priority • d delete • / search"
		out += "\n" + lipgloss.NewStyle().Foreground(t.Subtle).Render(hint)
	}
	if v.statusMsg != "" {
		out += "\n" + lipgloss.NewStyle().Foreground(t.Success).Render(v.statusMsg)
	}
	return out
}

func (v BoardView) renderTemplatePicker() string {
	t := theme.Current
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("Create from template:"))
	for i, tpl := range v.templates.Templates() {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == v.tplCursor {
			cursor = "> "
			style = style.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%s %s", cursor, tpl.Icon, tpl.Name)))
	}
	return strings.Join(lines, "\n")
}

func columnTitle(s model.Status) string {
	switch s {
	case model.StatusTodo:
		return "To do"
	case model.StatusInProgress:
		return "In progress"
	case model.StatusComplete:
		return "Done"
	default:
		return string(s)
	}
}
