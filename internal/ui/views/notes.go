package views

import (
	"fmt"
	"strings"

	"github.com/adilev/focusboard/internal/store"
	"github.com/adilev/focusboard/internal/ui/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotesView renders the notes list with a preview pane for the active note
type NotesView struct {
	notes  *store.NotesStore
	width  int
	height int

	cursor int
	adding bool
	input  textinput.Model
}

// NewNotesView creates the notes view
func NewNotesView(notes *store.NotesStore) NotesView {
	ti := textinput.New()
	ti.Placeholder = "Note title…"
	ti.CharLimit = 120
	return NotesView{notes: notes, input: ti}
}

// Init initializes the notes view
func (v NotesView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v NotesView) SetSize(width, height int) NotesView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v NotesView) IsInputMode() bool {
	return v.adding
}

// Update handles messages
func (v NotesView) Update(msg tea.Msg) (NotesView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.adding {
			switch msg.String() {
			case "enter":
				title := strings.TrimSpace(v.input.Value())
				if title != "" {
					v.notes.Add(title)
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

		notes := v.notes.Notes()
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(notes)-1 {
				v.cursor++
				v.notes.SetActive(notes[v.cursor].ID)
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
				v.notes.SetActive(notes[v.cursor].ID)
			}
		case "a":
			v.adding = true
			v.input.Focus()
			return v, textinput.Blink
		case "p":
			if v.cursor < len(notes) {
				id := notes[v.cursor].ID
				v.notes.TogglePinned(id)
				// The list re-sorted; follow the note to its new position
				for i, n := range v.notes.Notes() {
					if n.ID == id {
						v.cursor = i
						break
					}
				}
			}
		case "d":
			if v.cursor < len(notes) {
				v.notes.Delete(notes[v.cursor].ID)
				if v.cursor > 0 {
					v.cursor--
				}
			}
		}
	}
	return v, nil
}

// View renders the notes list and active-note preview
func (v NotesView) View() string {
	if v.width == 0 {
		return "Loading..."
	}
	t := theme.Current

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Notes")
	lines := []string{title, ""}

	notes := v.notes.Notes()
	if len(notes) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Subtle).Render("No notes. Press 'a' to add."))
	}
	for i, n := range notes {
		style := lipgloss.NewStyle()
		if i == v.cursor && !v.adding {
			style = style.Background(t.Highlight).Bold(true)
		}
		pin := "  "
		if n.Pinned {
			pin = lipgloss.NewStyle().Foreground(t.Pinned).Render("📌") + " "
		}
		line := fmt.Sprintf("%s%s", pin, n.Title)
		if preview := n.Preview(40); preview != "" {
			line += lipgloss.NewStyle().Foreground(t.Subtle).Render("  " + preview)
		}
		lines = append(lines, style.Render(line))
	}

	if active := v.notes.Active(); active != nil && active.Content != "" {
		panel := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(min(v.width-4, 72))
		lines = append(lines, "", panel.Render(active.Content))
	}

	if v.adding {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(t.Primary).Render("New note: ")+v.input.View())
	} else {
		hint := "a add • p pin • d delete"
		lines = append(lines, "", lipgloss.NewStyle().Foreground(t.Subtle).Render(hint))
	}

	return strings.Join(lines, "\n")
}
