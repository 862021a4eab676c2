package store

import (
	"context"
	"testing"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
)

func testJournal() *storage.Journal {
	return storage.NewJournal(storage.NewMemoryStore(), nil)
}

func TestAddTaskDefaults(t *testing.T) {
	s := NewKanbanStore(testJournal())

	task := s.AddTask(model.TaskDraft{Title: "Write report"})

	if task.ID == "" {
		t.Fatal("expected a generated id")
	}
	if task.Status != model.StatusTodo {
		t.Errorf("expected default status todo, got %s", task.Status)
	}
	if task.Priority != model.PriorityP2 {
		t.Errorf("expected default priority p2, got %s", task.Priority)
	}
	if task.Labels == nil || task.Subtasks == nil {
		t.Error("expected empty, non-nil labels and subtasks")
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Error("a fresh task must have UpdatedAt == CreatedAt")
	}
}

func TestAddTaskWithSubtaskTexts(t *testing.T) {
	s := NewKanbanStore(testJournal())

	task := s.AddTask(model.TaskDraft{
		Title:    "Release",
		Subtasks: []string{"Tag", "Build", "Publish"},
	})

	if len(task.Subtasks) != 3 {
		t.Fatalf("expected 3 subtasks, got %d", len(task.Subtasks))
	}
	for _, st := range task.Subtasks {
		if st.ID == "" {
			t.Error("expected subtask id to be generated")
		}
		if st.Completed {
			t.Error("new subtasks must start incomplete")
		}
	}
}

func TestUpdateTaskStrictlyIncreasesUpdatedAt(t *testing.T) {
	s := NewKanbanStore(testJournal())
	task := s.AddTask(model.TaskDraft{Title: "t"})

	prev := task.UpdatedAt
	for i := 0; i < 5; i++ {
		title := "t"
		s.UpdateTask(task.ID, model.TaskPatch{Title: &title})
		got := s.Task(task.ID).UpdatedAt
		if !got.After(prev) {
			t.Fatalf("update %d: UpdatedAt %v not after previous %v", i, got, prev)
		}
		prev = got
	}
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	s := NewKanbanStore(testJournal())
	s.AddTask(model.TaskDraft{Title: "keep"})

	title := "changed"
	s.UpdateTask("no-such-id", model.TaskPatch{Title: &title})

	if s.Tasks()[0].Title != "keep" {
		t.Error("update with unknown id must not touch other tasks")
	}
}

func TestUpdateTaskClearsDueDate(t *testing.T) {
	s := NewKanbanStore(testJournal())
	due := time.Now().Add(24 * time.Hour)
	task := s.AddTask(model.TaskDraft{Title: "t", DueDate: &due})

	var cleared *time.Time
	s.UpdateTask(task.ID, model.TaskPatch{DueDate: &cleared})

	if s.Task(task.ID).DueDate != nil {
		t.Error("expected due date to be cleared")
	}
}

func TestMoveTask(t *testing.T) {
	s := NewKanbanStore(testJournal())
	task := s.AddTask(model.TaskDraft{Title: "t"})

	s.MoveTask(task.ID, model.StatusInProgress)

	if got := s.Task(task.ID).Status; got != model.StatusInProgress {
		t.Errorf("expected in_progress, got %s", got)
	}
}

func TestDeleteTask(t *testing.T) {
	s := NewKanbanStore(testJournal())
	a := s.AddTask(model.TaskDraft{Title: "a"})
	b := s.AddTask(model.TaskDraft{Title: "b"})

	s.DeleteTask(a.ID)

	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Fatalf("expected only task b to remain, got %d tasks", len(tasks))
	}
}

func TestReorderTasksWithinStatus(t *testing.T) {
	s := NewKanbanStore(testJournal())
	a := s.AddTask(model.TaskDraft{Title: "a"})
	b := s.AddTask(model.TaskDraft{Title: "b"})
	c := s.AddTask(model.TaskDraft{Title: "c"})
	other := s.AddTask(model.TaskDraft{Title: "x", Status: model.StatusInProgress})

	s.ReorderTasks(model.StatusTodo, []string{c.ID, a.ID, b.ID})

	todo := s.TasksByStatus(model.StatusTodo)
	wantOrder := []string{c.ID, a.ID, b.ID}
	for i, id := range wantOrder {
		if todo[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, todo[i].ID)
		}
	}
	if got := s.TasksByStatus(model.StatusInProgress); len(got) != 1 || got[0].ID != other.ID {
		t.Error("reorder must not touch other columns")
	}
}

func TestReorderTasksKeepsOmittedAtTail(t *testing.T) {
	s := NewKanbanStore(testJournal())
	a := s.AddTask(model.TaskDraft{Title: "a"})
	b := s.AddTask(model.TaskDraft{Title: "b"})
	c := s.AddTask(model.TaskDraft{Title: "c"})

	s.ReorderTasks(model.StatusTodo, []string{b.ID})

	todo := s.TasksByStatus(model.StatusTodo)
	got := []string{todo[0].ID, todo[1].ID, todo[2].ID}
	want := []string{b.ID, a.ID, c.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestToggleSubtask(t *testing.T) {
	s := NewKanbanStore(testJournal())
	task := s.AddTask(model.TaskDraft{Title: "t", Subtasks: []string{"one"}})
	subID := task.Subtasks[0].ID

	s.ToggleSubtask(task.ID, subID)
	if !s.Task(task.ID).Subtasks[0].Completed {
		t.Fatal("expected subtask completed after toggle")
	}
	s.ToggleSubtask(task.ID, subID)
	if s.Task(task.ID).Subtasks[0].Completed {
		t.Fatal("expected subtask incomplete after second toggle")
	}
}

func TestDeleteLabelCascadesToTasks(t *testing.T) {
	s := NewKanbanStore(testJournal())
	label := s.AddLabel("urgent", "#BF616A")
	keep := s.AddLabel("later", "#A3BE8C")
	task := s.AddTask(model.TaskDraft{Title: "t", Labels: []string{label.ID, keep.ID}})

	s.DeleteLabel(label.ID)

	got := s.Task(task.ID)
	if got.HasLabel(label.ID) {
		t.Error("deleted label id must be stripped from tasks")
	}
	if !got.HasLabel(keep.ID) {
		t.Error("other label references must survive")
	}
	if s.Label(label.ID) != nil {
		t.Error("label must be gone from the label list")
	}
}

func TestFilterSearchMatchesTitleAndDescription(t *testing.T) {
	s := NewKanbanStore(testJournal())
	s.AddTask(model.TaskDraft{Title: "Fix login bug"})
	s.AddTask(model.TaskDraft{Title: "Other", Description: "related to LOGIN flow"})
	s.AddTask(model.TaskDraft{Title: "Unrelated"})

	s.SetFilter(model.FilterState{Search: "login"})

	if got := len(s.FilteredTasks()); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
}

func TestFilterDueRangeIgnoresTasksWithoutDueDate(t *testing.T) {
	s := NewKanbanStore(testJournal())
	soon := time.Now().Add(time.Hour)
	late := time.Now().Add(100 * time.Hour)
	s.AddTask(model.TaskDraft{Title: "soon", DueDate: &soon})
	s.AddTask(model.TaskDraft{Title: "late", DueDate: &late})
	s.AddTask(model.TaskDraft{Title: "undated"})

	cutoff := time.Now().Add(10 * time.Hour)
	s.SetFilter(model.FilterState{DueBefore: &cutoff})

	got := s.FilteredTasks()
	if len(got) != 2 {
		t.Fatalf("expected soon + undated, got %d tasks", len(got))
	}
	for _, task := range got {
		if task.Title == "late" {
			t.Error("task past the due range must be excluded")
		}
	}
}

func TestFilterAIGeneratedTriState(t *testing.T) {
	s := NewKanbanStore(testJournal())
	s.AddTask(model.TaskDraft{Title: "ai", AIGenerated: true})
	s.AddTask(model.TaskDraft{Title: "human"})

	if got := len(s.FilteredTasks()); got != 2 {
		t.Fatalf("nil filter: expected both, got %d", got)
	}

	yes := true
	s.SetFilter(model.FilterState{AIGenerated: &yes})
	got := s.FilteredTasks()
	if len(got) != 1 || got[0].Title != "ai" {
		t.Fatalf("expected only the ai task, got %d", len(got))
	}
}

func TestResetFilterRestoresEverything(t *testing.T) {
	s := NewKanbanStore(testJournal())
	s.AddTask(model.TaskDraft{Title: "a"})
	s.AddTask(model.TaskDraft{Title: "b"})

	s.SetFilter(model.FilterState{Search: "zzz"})
	if len(s.FilteredTasks()) != 0 {
		t.Fatal("expected no matches for zzz")
	}

	s.ResetFilter()
	if !s.Filter().IsEmpty() {
		t.Error("reset filter must be empty")
	}
	if got := len(s.FilteredTasks()); got != 2 {
		t.Errorf("expected all tasks after reset, got %d", got)
	}
}

func TestKanbanPersistRoundTrip(t *testing.T) {
	mem := storage.NewMemoryStore()
	journal := storage.NewJournal(mem, nil)

	s := NewKanbanStore(journal)
	label := s.AddLabel("work", "#81A1C1")
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	orig := s.AddTask(model.TaskDraft{
		Title:    "persisted",
		Labels:   []string{label.ID},
		Subtasks: []string{"step"},
		DueDate:  &due,
	})
	journal.Wait()

	reloaded := NewKanbanStore(journal)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	tasks := reloaded.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task back, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != orig.ID || got.Title != orig.Title || got.Status != orig.Status ||
		got.Priority != orig.Priority {
		t.Errorf("task fields changed across the round trip: %+v", got)
	}
	if len(got.Labels) != 1 || got.Labels[0] != label.ID {
		t.Error("label reference must survive the round trip")
	}
	if len(got.Subtasks) != 1 || got.Subtasks[0].Text != "step" {
		t.Error("subtasks must survive the round trip")
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Error("due date must survive the round trip")
	}
	if !got.CreatedAt.Equal(orig.CreatedAt) {
		t.Error("timestamps must survive the round trip")
	}
	if len(reloaded.Labels()) != 1 {
		t.Error("expected the label back")
	}
}
