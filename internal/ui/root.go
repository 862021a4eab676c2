// Package ui holds the bubbletea root model that owns the views and the
// global keybindings.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adilev/focusboard/internal/app"
	"github.com/adilev/focusboard/internal/export"
	"github.com/adilev/focusboard/internal/ui/theme"
	"github.com/adilev/focusboard/internal/ui/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel is the main application model that manages views
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView  View
	boardView    views.BoardView
	todosView    views.TodosView
	notesView    views.NotesView
	pomodoroView views.PomodoroView
	statsView    views.StatsView
	helpVisible  bool

	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App, startView View) RootModel {
	h := help.New()
	h.ShowAll = false

	theme.SetMode(application.Settings.Settings().Theme)

	return RootModel{
		app:          application,
		keys:         DefaultKeyMap(),
		help:         h,
		currentView:  startView,
		boardView:    views.NewBoardView(application.Kanban, application.Analytics, application.Templates),
		todosView:    views.NewTodosView(application.Todos, application.Analytics),
		notesView:    views.NewNotesView(application.Notes),
		pomodoroView: views.NewPomodoroView(application.Pomodoro, application.Kanban, application.Analytics),
		statsView:    views.NewStatsView(application.Analytics, application.Pomodoro, application.Settings),
	}
}

// Init initializes the model. The pomodoro tick loop runs regardless of
// the visible view so the countdown survives view switches.
func (m RootModel) Init() tea.Cmd {
	return m.pomodoroView.Init()
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header and footer
		contentHeight := m.height - 4
		m.boardView = m.boardView.SetSize(m.width, contentHeight)
		m.todosView = m.todosView.SetSize(m.width, contentHeight)
		m.notesView = m.notesView.SetSize(m.width, contentHeight)
		m.pomodoroView = m.pomodoroView.SetSize(m.width, contentHeight)
		m.statsView = m.statsView.SetSize(m.width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := false
		switch m.currentView {
		case ViewBoard:
			isInputMode = m.boardView.IsInputMode()
		case ViewTodos:
			isInputMode = m.todosView.IsInputMode()
		case ViewNotes:
			isInputMode = m.notesView.IsInputMode()
		case ViewPomodoro:
			isInputMode = m.pomodoroView.IsInputMode()
		case ViewStats:
			isInputMode = m.statsView.IsInputMode()
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits; 'q' only outside input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			mode := m.app.Settings.ToggleTheme()
			theme.SetMode(mode)
			m.statusMsg = fmt.Sprintf("Theme: %s", mode)
			return m, nil

		case key.Matches(msg, m.keys.Help):
			if !isInputMode {
				m.helpVisible = !m.helpVisible
				m.help.ShowAll = m.helpVisible
				return m, nil
			}

		case msg.String() == "ctrl+e":
			m.exportAll()
			return m, nil
		}

		if !isInputMode {
			switch {
			case key.Matches(msg, m.keys.BoardView):
				m.currentView = ViewBoard
				return m, nil
			case key.Matches(msg, m.keys.TodosView):
				m.currentView = ViewTodos
				return m, nil
			case key.Matches(msg, m.keys.NotesView):
				m.currentView = ViewNotes
				return m, nil
			case key.Matches(msg, m.keys.PomodoroView):
				m.currentView = ViewPomodoro
				return m, nil
			case key.Matches(msg, m.keys.StatsView):
				m.currentView = ViewStats
				return m, nil
			}
		}

		// Route keys to the active view
		var cmd tea.Cmd
		switch m.currentView {
		case ViewBoard:
			m.boardView, cmd = m.boardView.Update(msg)
		case ViewTodos:
			m.todosView, cmd = m.todosView.Update(msg)
		case ViewNotes:
			m.notesView, cmd = m.notesView.Update(msg)
		case ViewPomodoro:
			m.pomodoroView, cmd = m.pomodoroView.Update(msg)
		case ViewStats:
			m.statsView, cmd = m.statsView.Update(msg)
		}
		return m, cmd

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil
	}

	// Non-key messages (ticks) always reach the pomodoro view
	var cmd tea.Cmd
	m.pomodoroView, cmd = m.pomodoroView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// exportAll writes a markdown export of every collection to the data dir
func (m *RootModel) exportAll() {
	result, err := export.Export(export.Options{
		Format:           export.FormatMarkdown,
		IncludeTasks:     true,
		IncludeTodos:     true,
		IncludeNotes:     true,
		IncludeCompleted: true,
	}, m.app.Kanban.Tasks(), m.app.Todos.Todos(), m.app.Notes.Notes(), m.app.Kanban.Labels())
	if err != nil {
		m.errorMsg = fmt.Sprintf("Export failed: %v", err)
		return
	}

	dir := filepath.Join(m.app.Config.DataDir, "exports")
	if err := os.MkdirAll(dir, 0755); err != nil {
		m.errorMsg = fmt.Sprintf("Export failed: %v", err)
		return
	}
	for _, f := range result.Files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0644); err != nil {
			m.errorMsg = fmt.Sprintf("Export failed: %v", err)
			return
		}
	}
	m.statusMsg = fmt.Sprintf("Exported %d file(s) to %s", result.FileCount(), dir)
}

// View renders the application
func (m RootModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	t := theme.Current

	// Header: view tabs
	var tabs []string
	for v := ViewBoard; v <= ViewStats; v++ {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(t.Subtle)
		if v == m.currentView {
			style = style.Foreground(t.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", int(v)+1, v)))
	}
	header := strings.Join(tabs, " ")

	var content string
	switch m.currentView {
	case ViewBoard:
		content = m.boardView.View()
	case ViewTodos:
		content = m.todosView.View()
	case ViewNotes:
		content = m.notesView.View()
	case ViewPomodoro:
		content = m.pomodoroView.View()
	case ViewStats:
		content = m.statsView.View()
	}

	footer := m.help.View(m.keys)
	if m.errorMsg != "" {
		footer = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		footer = lipgloss.NewStyle().Foreground(t.Success).Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", content, "", footer)
}
