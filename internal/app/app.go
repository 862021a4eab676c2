// Package app wires the stores, persistence and notifier together. One
// App per process; stores are reached through it, never through package
// globals.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adilev/focusboard/internal/config"
	"github.com/adilev/focusboard/internal/notify"
	"github.com/adilev/focusboard/internal/storage"
	"github.com/adilev/focusboard/internal/store"
	"github.com/gofrs/flock"
)

// App holds the application state and dependencies
type App struct {
	Config   config.Config
	Notifier *notify.Notifier

	Kanban    *store.KanbanStore
	Todos     *store.TodoStore
	Notes     *store.NotesStore
	Settings  *store.SettingsStore
	Pomodoro  *store.PomodoroStore
	Analytics *store.AnalyticsStore
	Templates *store.TemplateStore

	journal  *storage.Journal
	db       *storage.SQLiteStore
	lockFile *flock.Flock
	debugLog *os.File
}

// New creates and loads the application. The data directory is locked
// to a single instance.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		c := config.Default()
		cfg = &c
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{
		Config:   *cfg,
		Notifier: notify.NewNotifier(),
	}

	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	db, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.db = db

	// Persistence failures never reach mutator callers; they land in the
	// debug log when enabled and are otherwise dropped. Stderr would
	// corrupt the TUI.
	var observer storage.Observer
	if cfg.DebugLog || os.Getenv("FOCUSBOARD_DEBUG") == "1" {
		a.debugLog, _ = os.OpenFile(
			filepath.Join(cfg.DataDir, "debug.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
	if a.debugLog != nil {
		logger := log.New(a.debugLog, "", log.LstdFlags)
		observer = func(key string, err error) {
			if err != nil {
				logger.Printf("persist %s: %v", key, err)
			}
		}
	}
	a.journal = storage.NewJournal(db, observer)

	a.Kanban = store.NewKanbanStore(a.journal)
	a.Todos = store.NewTodoStore(a.journal)
	a.Notes = store.NewNotesStore(a.journal)
	a.Settings = store.NewSettingsStore(a.journal)
	a.Analytics = store.NewAnalyticsStore(a.journal)
	a.Templates = store.NewTemplateStore(a.journal)
	a.Pomodoro = store.NewPomodoroStore(a.journal, a.Settings, a.Notifier)

	if err := a.load(); err != nil {
		a.Close()
		return nil, err
	}

	// Read the app-level sound switch at send time, so changes made
	// through the settings store apply to the next notification.
	a.Notifier.GateWith(func() bool { return a.Settings.Settings().SoundEnabled })

	return a, nil
}

func (a *App) load() error {
	ctx := context.Background()
	loaders := []func(context.Context) error{
		a.Settings.Load, // first: the pomodoro store reads it
		a.Kanban.Load,
		a.Todos.Load,
		a.Notes.Load,
		a.Pomodoro.Load,
		a.Analytics.Load,
		a.Templates.Load,
	}
	for _, load := range loaders {
		if err := load(ctx); err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}
	}
	return nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.Config.DataDir, "focusboard.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of focusboard is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close drains in-flight writes and cleans up resources
func (a *App) Close() error {
	var errs []error

	if a.journal != nil {
		a.journal.Wait()
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if a.debugLog != nil {
		a.debugLog.Close()
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
