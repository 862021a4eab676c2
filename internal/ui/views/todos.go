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

// TodosView renders the quick-todo list
type TodosView struct {
	todos     *store.TodoStore
	analytics *store.AnalyticsStore
	width     int
	height    int

	cursor    int
	adding    bool
	input     textinput.Model
	statusMsg string
}

// NewTodosView creates the todos view
func NewTodosView(todos *store.TodoStore, analytics *store.AnalyticsStore) TodosView {
	ti := textinput.New()
	ti.Placeholder = "Quick todo…"
	ti.CharLimit = 200
	return TodosView{todos: todos, analytics: analytics, input: ti}
}

// Init initializes the todos view
func (v TodosView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v TodosView) SetSize(width, height int) TodosView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v TodosView) IsInputMode() bool {
	return v.adding
}

// Update handles messages
func (v TodosView) Update(msg tea.Msg) (TodosView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.adding {
			switch msg.String() {
			case "enter":
				text := strings.TrimSpace(v.input.Value())
				if text != "" {
					v.todos.Add(text, nil)
					v.cursor = 0
				}
				v.input.Reset()
				v.adding = false
				return v, nil
			case "esc":
				v.input.Reset()
				v.adding = false
				return v, nil
			default:
				var cmd tea.Cmd
				v.input, cmd = v.input.Update(msg)
				return v, cmd
			}
		}

		todos := v.todos.Todos()
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(todos)-1 {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		case "g":
			v.cursor = 0
		case "G":
			if len(todos) > 0 {
				v.cursor = len(todos) - 1
			}
		case "a":
			v.adding = true
			v.input.Focus()
			return v, textinput.Blink
		case "tab", " ":
			if v.cursor < len(todos) {
				wasDone := todos[v.cursor].Completed
				v.todos.Toggle(todos[v.cursor].ID)
				if !wasDone {
					v.analytics.RecordTodoCompletion()
				}
			}
		case "d":
			if v.cursor < len(todos) {
				v.todos.Delete(todos[v.cursor].ID)
				if v.cursor > 0 {
					v.cursor--
				}
			}
		case "c":
			v.todos.ClearCompleted()
			v.cursor = 0
			v.statusMsg = "Cleared completed todos"
		case "J":
			// Swap downward; the store replaces the whole order
			if v.cursor < len(todos)-1 {
				ids := todoIDs(todos)
				ids[v.cursor], ids[v.cursor+1] = ids[v.cursor+1], ids[v.cursor]
				v.todos.Reorder(ids)
				v.cursor++
			}
		case "K":
			if v.cursor > 0 {
				ids := todoIDs(todos)
				ids[v.cursor], ids[v.cursor-1] = ids[v.cursor-1], ids[v.cursor]
				v.todos.Reorder(ids)
				v.cursor--
			}
		}
	}
	return v, nil
}

// View renders the todo list
func (v TodosView) View() string {
	if v.width == 0 {
		return "Loading..."
	}
	t := theme.Current

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Quick todos")
	lines := []string{title, ""}

	todos := v.todos.Todos()
	if len(todos) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Subtle).Render("Nothing here. Press 'a' to add."))
	}
	for i, todo := range todos {
		mark := "☐"
		style := lipgloss.NewStyle()
		if todo.Completed {
			mark = "☑"
			style = style.Foreground(t.Subtle).Strikethrough(true)
		}
		if i == v.cursor && !v.adding {
			style = style.Background(t.Highlight).Bold(true)
		}
		line := fmt.Sprintf("%s %s", mark, todo.Text)
		if todo.Priority != nil {
			line += " " + lipgloss.NewStyle().
				Foreground(theme.ForPriority(*todo.Priority)).
				Render(string(*todo.Priority))
		}
		lines = append(lines, style.Render(line))
	}

	if v.adding {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(t.Primary).Render("New: ")+v.input.View())
	} else {
		hint := "a add • tab toggle • J/K reorder • c clear done • d delete"
		lines = append(lines, "", lipgloss.NewStyle().Foreground(t.Subtle).Render(hint))
	}
	if v.statusMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Success).Render(v.statusMsg))
	}

	return strings.Join(lines, "\n")
}

func todoIDs(todos []model.Todo) []string {
	ids := make([]string, len(todos))
	for i, t := range todos {
		ids[i] = t.ID
	}
	return ids
}
