// Package storage provides the persistence capability: an async key-value
// primitive holding one JSON document per namespaced key, plus the journal
// that stores write through fire-and-forget.
package storage

import (
	"context"
)

// Persisted state layout: each key holds an independent JSON document.
const (
	KeyKanban    = "focusboard:kanban"
	KeyTodos     = "focusboard:todos"
	KeyNotes     = "focusboard:notes"
	KeySettings  = "focusboard:settings"
	KeyPomodoro  = "focusboard:pomodoro"
	KeyAnalytics = "focusboard:analytics"
	KeyTemplates = "focusboard:templates"
)

// Store is the opaque key-value primitive stores persist through.
// Get returns (nil, nil) when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Observer receives the outcome of every asynchronous write. Persistence
// failures are never surfaced to mutator callers; this hook is the only
// place they are visible.
type Observer func(key string, err error)
