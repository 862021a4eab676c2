// Package export renders the in-memory collections into downloadable
// documents. This is the one path in the system that reports errors to
// its caller: the user needs visible feedback when nothing matched or
// serialization failed.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"gopkg.in/yaml.v3"
)

// Format selects the output document type
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ErrNothingToExport is returned when the options select no data
var ErrNothingToExport = errors.New("nothing to export: no collections selected or all filtered out")

// Options controls which collections and rows are included
type Options struct {
	Format           Format
	IncludeTasks     bool
	IncludeTodos     bool
	IncludeNotes     bool
	IncludeCompleted bool
}

// File is one rendered document
type File struct {
	Name string
	Data []byte
}

// Result reports a successful export
type Result struct {
	Files []File
}

// FileCount returns the number of rendered documents
func (r *Result) FileCount() int { return len(r.Files) }

type document struct {
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Tasks      []model.Task  `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Todos      []model.Todo  `json:"todos,omitempty" yaml:"todos,omitempty"`
	Notes      []model.Note  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Labels     []model.Label `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Export renders the selected collections in the requested format.
func Export(opts Options, tasks []model.Task, todos []model.Todo, notes []model.Note, labels []model.Label) (*Result, error) {
	doc := document{ExportedAt: time.Now()}

	if opts.IncludeTasks {
		for _, t := range tasks {
			if !opts.IncludeCompleted && t.Status == model.StatusComplete {
				continue
			}
			doc.Tasks = append(doc.Tasks, t)
		}
		doc.Labels = labels
	}
	if opts.IncludeTodos {
		for _, t := range todos {
			if !opts.IncludeCompleted && t.Completed {
				continue
			}
			doc.Todos = append(doc.Todos, t)
		}
	}
	if opts.IncludeNotes {
		doc.Notes = notes
	}

	if len(doc.Tasks) == 0 && len(doc.Todos) == 0 && len(doc.Notes) == 0 {
		return nil, ErrNothingToExport
	}

	switch opts.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return &Result{Files: []File{{Name: "focusboard-export.json", Data: data}}}, nil

	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return &Result{Files: []File{{Name: "focusboard-export.yaml", Data: data}}}, nil

	case FormatCSV:
		return exportCSV(doc)

	case FormatMarkdown:
		return &Result{Files: []File{{
			Name: "focusboard-export.md",
			Data: []byte(renderMarkdown(doc)),
		}}}, nil

	default:
		return nil, fmt.Errorf("unsupported export format %q", opts.Format)
	}
}

// exportCSV writes one file per included collection
func exportCSV(doc document) (*Result, error) {
	var files []File

	if len(doc.Tasks) > 0 {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{"id", "title", "description", "status", "priority", "due_date", "labels", "subtasks_done", "subtasks_total", "created_at"}); err != nil {
			return nil, fmt.Errorf("encode csv: %w", err)
		}
		for _, t := range doc.Tasks {
			due := ""
			if t.DueDate != nil {
				due = t.DueDate.Format(time.RFC3339)
			}
			done, total := t.SubtaskProgress()
			rec := []string{
				t.ID, t.Title, t.Description, string(t.Status), string(t.Priority),
				due, strings.Join(t.Labels, ";"),
				strconv.Itoa(done), strconv.Itoa(total),
				t.CreatedAt.Format(time.RFC3339),
			}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("encode csv: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("encode csv: %w", err)
		}
		files = append(files, File{Name: "tasks.csv", Data: buf.Bytes()})
	}

	if len(doc.Todos) > 0 {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{"id", "text", "completed", "priority", "created_at"}); err != nil {
			return nil, fmt.Errorf("encode csv: %w", err)
		}
		for _, t := range doc.Todos {
			prio := ""
			if t.Priority != nil {
				prio = string(*t.Priority)
			}
			rec := []string{t.ID, t.Text, strconv.FormatBool(t.Completed), prio, t.CreatedAt.Format(time.RFC3339)}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("encode csv: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("encode csv: %w", err)
		}
		files = append(files, File{Name: "todos.csv", Data: buf.Bytes()})
	}

	if len(doc.Notes) > 0 {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{"id", "title", "content", "pinned", "updated_at"}); err != nil {
			return nil, fmt.Errorf("encode csv: %w", err)
		}
		for _, n := range doc.Notes {
			rec := []string{n.ID, n.Title, n.Content, strconv.FormatBool(n.Pinned), n.UpdatedAt.Format(time.RFC3339)}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("encode csv: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("encode csv: %w", err)
		}
		files = append(files, File{Name: "notes.csv", Data: buf.Bytes()})
	}

	return &Result{Files: files}, nil
}

func renderMarkdown(doc document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Focusboard export\n\n_%s_\n", doc.ExportedAt.Format("2006-01-02 15:04"))

	labelName := make(map[string]string, len(doc.Labels))
	for _, l := range doc.Labels {
		labelName[l.ID] = l.Name
	}

	if len(doc.Tasks) > 0 {
		b.WriteString("\n## Tasks\n")
		for _, status := range model.Statuses {
			var inStatus []model.Task
			for _, t := range doc.Tasks {
				if t.Status == status {
					inStatus = append(inStatus, t)
				}
			}
			if len(inStatus) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n### %s\n\n", statusHeading(status))
			for _, t := range inStatus {
				mark := " "
				if t.Status == model.StatusComplete {
					mark = "x"
				}
				fmt.Fprintf(&b, "- [%s] **%s** (%s)", mark, t.Title, t.Priority)
				for _, id := range t.Labels {
					if name, ok := labelName[id]; ok {
						fmt.Fprintf(&b, " `%s`", name)
					}
				}
				if t.DueDate != nil {
					fmt.Fprintf(&b, " — due %s", t.DueDate.Format("2006-01-02"))
				}
				b.WriteString("\n")
				for _, st := range t.Subtasks {
					mark := " "
					if st.Completed {
						mark = "x"
					}
					fmt.Fprintf(&b, "  - [%s] %s\n", mark, st.Text)
				}
			}
		}
	}

	if len(doc.Todos) > 0 {
		b.WriteString("\n## Todos\n\n")
		for _, t := range doc.Todos {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, t.Text)
		}
	}

	if len(doc.Notes) > 0 {
		b.WriteString("\n## Notes\n")
		for _, n := range doc.Notes {
			pin := ""
			if n.Pinned {
				pin = " 📌"
			}
			fmt.Fprintf(&b, "\n### %s%s\n\n%s\n", n.Title, pin, n.Content)
		}
	}

	return b.String()
}

func statusHeading(s model.Status) string {
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
