package store

import (
	"context"
	"testing"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
)

func TestTodoAddPrepends(t *testing.T) {
	s := NewTodoStore(testJournal())
	s.Add("first", nil)
	s.Add("second", nil)

	todos := s.Todos()
	if todos[0].Text != "second" || todos[1].Text != "first" {
		t.Fatalf("expected newest first, got %q then %q", todos[0].Text, todos[1].Text)
	}
}

func TestTodoToggle(t *testing.T) {
	s := NewTodoStore(testJournal())
	todo := s.Add("task", nil)

	s.Toggle(todo.ID)
	if !s.Todos()[0].Completed {
		t.Fatal("expected completed after toggle")
	}
	s.Toggle(todo.ID)
	if s.Todos()[0].Completed {
		t.Fatal("expected incomplete after second toggle")
	}
}

func TestTodoClearCompleted(t *testing.T) {
	s := NewTodoStore(testJournal())
	a := s.Add("done", nil)
	s.Add("open", nil)
	s.Toggle(a.ID)

	s.ClearCompleted()

	todos := s.Todos()
	if len(todos) != 1 || todos[0].Text != "open" {
		t.Fatalf("expected only the open todo, got %d", len(todos))
	}
}

func TestTodoReorder(t *testing.T) {
	s := NewTodoStore(testJournal())
	a := s.Add("a", nil)
	b := s.Add("b", nil)
	c := s.Add("c", nil)
	// current order: c, b, a

	s.Reorder([]string{a.ID, c.ID, b.ID})

	todos := s.Todos()
	want := []string{a.ID, c.ID, b.ID}
	for i := range want {
		if todos[i].ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], todos[i].ID)
		}
	}
}

func TestTodoReorderKeepsMissingIDs(t *testing.T) {
	s := NewTodoStore(testJournal())
	a := s.Add("a", nil)
	b := s.Add("b", nil)
	// current order: b, a

	s.Reorder([]string{a.ID})

	todos := s.Todos()
	if len(todos) != 2 {
		t.Fatalf("reorder must not drop todos, got %d", len(todos))
	}
	if todos[0].ID != a.ID || todos[1].ID != b.ID {
		t.Error("omitted ids must keep their relative order at the tail")
	}
}

func TestTodoPriorityOptional(t *testing.T) {
	s := NewTodoStore(testJournal())
	p := model.PriorityP0
	with := s.Add("urgent", &p)
	without := s.Add("plain", nil)

	if with.Priority == nil || *with.Priority != model.PriorityP0 {
		t.Error("expected priority p0 to be kept")
	}
	if without.Priority != nil {
		t.Error("expected nil priority by default")
	}
}

func TestTodoPersistRoundTrip(t *testing.T) {
	mem := storage.NewMemoryStore()
	journal := storage.NewJournal(mem, nil)

	s := NewTodoStore(journal)
	s.Add("keep me", nil)
	journal.Wait()

	reloaded := NewTodoStore(journal)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	todos := reloaded.Todos()
	if len(todos) != 1 || todos[0].Text != "keep me" {
		t.Fatalf("expected the persisted todo back, got %d", len(todos))
	}
}
