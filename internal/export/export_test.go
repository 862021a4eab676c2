package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/adilev/focusboard/internal/model"
)

func sampleData() ([]model.Task, []model.Todo, []model.Note, []model.Label) {
	now := time.Now()
	label := model.Label{ID: "l1", Name: "work", Color: "#81A1C1"}
	tasks := []model.Task{
		{
			ID: "t1", Title: "Open task", Status: model.StatusTodo,
			Priority: model.PriorityP1, Labels: []string{"l1"},
			Subtasks:  []model.Subtask{{ID: "s1", Text: "step", Completed: true}},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "t2", Title: "Done task", Status: model.StatusComplete,
			Priority: model.PriorityP2, CreatedAt: now, UpdatedAt: now,
		},
	}
	todos := []model.Todo{
		{ID: "d1", Text: "open todo", CreatedAt: now},
		{ID: "d2", Text: "done todo", Completed: true, CreatedAt: now},
	}
	notes := []model.Note{
		{ID: "n1", Title: "Note", Content: "body", Pinned: true, UpdatedAt: now},
	}
	return tasks, todos, notes, []model.Label{label}
}

func TestExportNothingSelected(t *testing.T) {
	tasks, todos, notes, labels := sampleData()

	_, err := Export(Options{Format: FormatJSON}, tasks, todos, notes, labels)

	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

func TestExportEmptyCollections(t *testing.T) {
	_, err := Export(Options{
		Format:       FormatJSON,
		IncludeTasks: true,
		IncludeTodos: true,
		IncludeNotes: true,
	}, nil, nil, nil, nil)

	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport for empty data, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	tasks, todos, notes, labels := sampleData()

	result, err := Export(Options{
		Format:           FormatJSON,
		IncludeTasks:     true,
		IncludeTodos:     true,
		IncludeNotes:     true,
		IncludeCompleted: true,
	}, tasks, todos, notes, labels)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.FileCount() != 1 {
		t.Fatalf("json export must be a single file, got %d", result.FileCount())
	}

	var doc struct {
		Tasks  []model.Task  `json:"tasks"`
		Todos  []model.Todo  `json:"todos"`
		Notes  []model.Note  `json:"notes"`
		Labels []model.Label `json:"labels"`
	}
	if err := json.Unmarshal(result.Files[0].Data, &doc); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(doc.Tasks) != 2 || len(doc.Todos) != 2 || len(doc.Notes) != 1 || len(doc.Labels) != 1 {
		t.Errorf("unexpected counts: %d tasks, %d todos, %d notes, %d labels",
			len(doc.Tasks), len(doc.Todos), len(doc.Notes), len(doc.Labels))
	}
}

func TestExportExcludesCompleted(t *testing.T) {
	tasks, todos, notes, labels := sampleData()

	result, err := Export(Options{
		Format:       FormatJSON,
		IncludeTasks: true,
		IncludeTodos: true,
	}, tasks, todos, notes, labels)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc struct {
		Tasks []model.Task `json:"tasks"`
		Todos []model.Todo `json:"todos"`
	}
	if err := json.Unmarshal(result.Files[0].Data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Tasks) != 1 || doc.Tasks[0].ID != "t1" {
		t.Errorf("completed task must be dropped, got %d tasks", len(doc.Tasks))
	}
	if len(doc.Todos) != 1 || doc.Todos[0].ID != "d1" {
		t.Errorf("completed todo must be dropped, got %d todos", len(doc.Todos))
	}
}

func TestExportCSVOneFilePerCollection(t *testing.T) {
	tasks, todos, notes, labels := sampleData()

	result, err := Export(Options{
		Format:           FormatCSV,
		IncludeTasks:     true,
		IncludeTodos:     true,
		IncludeNotes:     true,
		IncludeCompleted: true,
	}, tasks, todos, notes, labels)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if result.FileCount() != 3 {
		t.Fatalf("expected tasks.csv, todos.csv and notes.csv, got %d files", result.FileCount())
	}
	names := map[string]bool{}
	for _, f := range result.Files {
		names[f.Name] = true
		if len(f.Data) == 0 {
			t.Errorf("file %s is empty", f.Name)
		}
	}
	for _, want := range []string{"tasks.csv", "todos.csv", "notes.csv"} {
		if !names[want] {
			t.Errorf("missing %s", want)
		}
	}
}

func TestExportMarkdownGroupsByStatus(t *testing.T) {
	tasks, todos, notes, labels := sampleData()

	result, err := Export(Options{
		Format:           FormatMarkdown,
		IncludeTasks:     true,
		IncludeTodos:     true,
		IncludeNotes:     true,
		IncludeCompleted: true,
	}, tasks, todos, notes, labels)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	md := string(result.Files[0].Data)
	for _, want := range []string{"### To do", "### Done", "- [ ] **Open task**", "- [x] **Done task**", "`work`", "- [x] step"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if !strings.Contains(md, "## Notes") || !strings.Contains(md, "📌") {
		t.Error("markdown must render notes with the pin marker")
	}
}

func TestExportYAML(t *testing.T) {
	tasks, todos, notes, labels := sampleData()

	result, err := Export(Options{
		Format:       FormatYAML,
		IncludeNotes: true,
	}, tasks, todos, notes, labels)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(result.Files[0].Data), "notes:") {
		t.Error("yaml output must contain the notes collection")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	tasks, todos, notes, labels := sampleData()

	_, err := Export(Options{Format: "xml", IncludeTasks: true, IncludeCompleted: true},
		tasks, todos, notes, labels)
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}
