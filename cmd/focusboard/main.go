package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adilev/focusboard/internal/app"
	"github.com/adilev/focusboard/internal/config"
	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "add":
			handleAdd(os.Args[2:])
			return
		case "version":
			fmt.Printf("focusboard v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	viewFlag := flag.String("view", "", "Starting view (board, todos, notes, pomodoro, stats)")
	flag.Parse()

	if err := runTUI(*viewFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `focusboard - kanban, todos, notes and a pomodoro timer in one TUI

Usage:
  focusboard                  Start the TUI
  focusboard add <task>       Quick add a kanban task
  focusboard version          Show version
  focusboard help             Show this help

Quick Add Syntax:
  focusboard add "Buy groceries"
  focusboard add "Review PR #work !p1 due:tomorrow"

  Labels:    #label        (e.g., #home, #work)
  Priority:  !p0 !p1 !p2 !p3   (p0 is the most urgent)
  Due date:  due:tomorrow due:friday due:2026-01-15

TUI Options:
  --view <name>     Starting view (board, todos, notes, pomodoro, stats)

Keybindings:
  Navigation:   ↑/↓ or j/k    Move cursor
                ←/→ or h/l    Move between columns
                g/G           Go to top/bottom

  Actions:      a             Add
                tab           Toggle done
                m             Move task right
                p             Cycle priority / pin note
                d             Delete
                /             Search

  Global:       1-5           Switch views
                ctrl+t        Cycle theme
                ctrl+e        Export everything to markdown
                ?             Help
                q             Quit

Config file:  $XDG_CONFIG_HOME/focusboard/config.yaml
Env:          FOCUSBOARD_DATA_DIR, FOCUSBOARD_START_VIEW, FOCUSBOARD_DEBUG`

	fmt.Println(help)
}

func handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: focusboard add <task>")
		fmt.Fprintln(os.Stderr, "Example: focusboard add \"Review PR #work !p1 due:tomorrow\"")
		os.Exit(1)
	}

	text := strings.Join(args, " ")
	draft, labelNames := parseQuickAdd(text)
	if draft.Title == "" {
		fmt.Fprintln(os.Stderr, "Error: task title is empty")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Goes through the full app so label lookup and journal semantics
	// match the TUI. Close drains the write before the process exits.
	application, err := app.New(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	for _, name := range labelNames {
		draft.Labels = append(draft.Labels, ensureLabel(application, name))
	}

	task := application.Kanban.AddTask(draft)

	fmt.Printf("Created: %s\n", task.Title)
	if task.DueDate != nil {
		fmt.Printf("Due: %s\n", formatDueDate(*task.DueDate))
	}
	if task.Priority != model.PriorityP2 {
		fmt.Printf("Priority: %s\n", task.Priority)
	}
	if len(labelNames) > 0 {
		fmt.Printf("Labels: %s\n", strings.Join(labelNames, ", "))
	}
}

// ensureLabel returns the id of the named label, creating it if needed
func ensureLabel(application *app.App, name string) string {
	for _, l := range application.Kanban.Labels() {
		if strings.EqualFold(l.Name, name) {
			return l.ID
		}
	}
	return application.Kanban.AddLabel(name, "#81A1C1").ID
}

// parseQuickAdd splits "#label", "!p0..!p3" and "due:" tokens out of the
// text; everything else becomes the title.
func parseQuickAdd(text string) (model.TaskDraft, []string) {
	var draft model.TaskDraft
	var labels []string
	var titleParts []string

	for _, word := range strings.Fields(text) {
		switch {
		case strings.HasPrefix(word, "#") && len(word) > 1:
			labels = append(labels, strings.TrimPrefix(word, "#"))

		case strings.HasPrefix(word, "!"):
			switch strings.ToLower(strings.TrimPrefix(word, "!")) {
			case "p0":
				draft.Priority = model.PriorityP0
			case "p1":
				draft.Priority = model.PriorityP1
			case "p2":
				draft.Priority = model.PriorityP2
			case "p3":
				draft.Priority = model.PriorityP3
			default:
				titleParts = append(titleParts, word)
			}

		case strings.HasPrefix(strings.ToLower(word), "due:"):
			dateStr := strings.TrimPrefix(strings.ToLower(word), "due:")
			if parsed := parseNaturalDate(dateStr); parsed != nil {
				draft.DueDate = parsed
			} else {
				titleParts = append(titleParts, word)
			}

		default:
			titleParts = append(titleParts, word)
		}
	}

	draft.Title = strings.Join(titleParts, " ")
	return draft, labels
}

func parseNaturalDate(s string) *time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	switch strings.ToLower(s) {
	case "today":
		return &today
	case "tomorrow", "tom":
		t := today.AddDate(0, 0, 1)
		return &t
	case "monday", "mon":
		return nextWeekday(time.Monday)
	case "tuesday", "tue":
		return nextWeekday(time.Tuesday)
	case "wednesday", "wed":
		return nextWeekday(time.Wednesday)
	case "thursday", "thu":
		return nextWeekday(time.Thursday)
	case "friday", "fri":
		return nextWeekday(time.Friday)
	case "saturday", "sat":
		return nextWeekday(time.Saturday)
	case "sunday", "sun":
		return nextWeekday(time.Sunday)
	case "nextweek":
		t := today.AddDate(0, 0, 7)
		return &t
	}

	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"Jan 2",
		"Jan 2, 2006",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			if t.Year() == 0 {
				t = time.Date(now.Year(), t.Month(), t.Day(), 23, 59, 59, 0, now.Location())
			}
			return &t
		}
	}
	return nil
}

func nextWeekday(day time.Weekday) *time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	daysUntil := int(day - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	t := today.AddDate(0, 0, daysUntil)
	return &t
}

func formatDueDate(t time.Time) string {
	now := time.Now()

	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "today"
	}

	tomorrow := now.AddDate(0, 0, 1)
	if t.Year() == tomorrow.Year() && t.YearDay() == tomorrow.YearDay() {
		return "tomorrow"
	}

	if t.Year() == now.Year() {
		return t.Format("Mon, Jan 2")
	}
	return t.Format("Jan 2, 2006")
}

func runTUI(viewName string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if viewName == "" {
		viewName = cfg.StartView
	}

	application, err := app.New(&cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	root := ui.NewRootModel(application, ui.ViewFromName(viewName))

	p := tea.NewProgram(
		root,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
