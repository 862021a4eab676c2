package store

import (
	"context"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
	"github.com/google/uuid"
)

// TodoStore owns the flat quick-todo list, most recent first.
type TodoStore struct {
	journal *storage.Journal
	todos   []model.Todo
}

func NewTodoStore(journal *storage.Journal) *TodoStore {
	return &TodoStore{journal: journal}
}

func (s *TodoStore) Load(ctx context.Context) error {
	var todos []model.Todo
	if _, err := s.journal.Load(ctx, storage.KeyTodos, &todos); err != nil {
		return err
	}
	s.todos = todos
	return nil
}

func (s *TodoStore) persist() {
	s.journal.Write(storage.KeyTodos, s.todos)
}

// Add prepends a new todo
func (s *TodoStore) Add(text string, priority *model.Priority) model.Todo {
	todo := model.Todo{
		ID:        uuid.New().String(),
		Text:      text,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
	s.todos = append([]model.Todo{todo}, s.todos...)
	s.persist()
	return todo
}

// Update replaces the text of the todo
func (s *TodoStore) Update(id, text string) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Text = text
			s.persist()
			return
		}
	}
}

// Toggle flips the completed flag
func (s *TodoStore) Toggle(id string) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Completed = !s.todos[i].Completed
			s.persist()
			return
		}
	}
}

// Delete removes the todo
func (s *TodoStore) Delete(id string) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			s.persist()
			return
		}
	}
}

// ClearCompleted removes all completed todos
func (s *TodoStore) ClearCompleted() {
	var kept []model.Todo
	for _, t := range s.todos {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	s.todos = kept
	s.persist()
}

// Reorder replaces the entire list order. Ids missing from the sequence
// keep their relative order at the tail.
func (s *TodoStore) Reorder(orderedIDs []string) {
	byID := make(map[string]model.Todo, len(s.todos))
	for _, t := range s.todos {
		byID[t.ID] = t
	}

	next := make([]model.Todo, 0, len(s.todos))
	for _, id := range orderedIDs {
		if t, ok := byID[id]; ok {
			next = append(next, t)
			delete(byID, id)
		}
	}
	for _, t := range s.todos {
		if _, left := byID[t.ID]; left {
			next = append(next, t)
		}
	}
	s.todos = next
	s.persist()
}

// Todos returns the current list
func (s *TodoStore) Todos() []model.Todo {
	return append([]model.Todo(nil), s.todos...)
}
