package store

import (
	"context"
	"testing"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
)

func TestSettingsDefaultsBeforeLoad(t *testing.T) {
	s := NewSettingsStore(testJournal())

	got := s.Settings()
	if got.Theme != model.ThemeDark {
		t.Errorf("expected dark theme default, got %s", got.Theme)
	}
	if got.Pomodoro.WorkDuration != 25 {
		t.Errorf("expected 25 minute work default, got %d", got.Pomodoro.WorkDuration)
	}
}

func TestSettingsLoadMergesPartialOntoDefaults(t *testing.T) {
	mem := storage.NewMemoryStore()
	journal := storage.NewJournal(mem, nil)

	// A persisted document from an older version: only two fields present
	partial := []byte(`{"theme":"light","pomodoro":{"work_duration":50}}`)
	if err := mem.Set(context.Background(), storage.KeySettings, partial); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewSettingsStore(journal)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	got := s.Settings()
	if got.Theme != model.ThemeLight {
		t.Errorf("persisted theme must win, got %s", got.Theme)
	}
	if got.Pomodoro.WorkDuration != 50 {
		t.Errorf("persisted nested field must win, got %d", got.Pomodoro.WorkDuration)
	}
	// Absent fields, top-level and nested, keep their defaults
	if got.Language != "he" {
		t.Errorf("absent language must default to he, got %q", got.Language)
	}
	if got.Pomodoro.ShortBreakDuration != 5 {
		t.Errorf("absent nested field must keep default, got %d", got.Pomodoro.ShortBreakDuration)
	}
	if got.DailyGoal != 5 {
		t.Errorf("absent daily goal must keep default, got %d", got.DailyGoal)
	}
}

func TestSettingsUpdatePatch(t *testing.T) {
	s := NewSettingsStore(testJournal())

	goal := 10
	s.Update(model.SettingsPatch{DailyGoal: &goal})

	got := s.Settings()
	if got.DailyGoal != 10 {
		t.Errorf("expected daily goal 10, got %d", got.DailyGoal)
	}
	if got.Theme != model.ThemeDark {
		t.Error("patch must not touch fields it does not name")
	}
}

func TestSettingsUpdatePomodoroPatch(t *testing.T) {
	s := NewSettingsStore(testJournal())

	work := 50
	s.UpdatePomodoro(model.PomodoroPatch{WorkDuration: &work})

	got := s.Pomodoro()
	if got.WorkDuration != 50 {
		t.Errorf("expected work duration 50, got %d", got.WorkDuration)
	}
	if got.SessionsBeforeLongBreak != 4 {
		t.Error("pomodoro patch must not touch other pomodoro fields")
	}
}

func TestToggleThemeCycles(t *testing.T) {
	s := NewSettingsStore(testJournal())

	want := []model.ThemeMode{model.ThemeLight, model.ThemeSystem, model.ThemeDark, model.ThemeLight}
	for i, w := range want {
		if got := s.ToggleTheme(); got != w {
			t.Fatalf("toggle %d: expected %s, got %s", i, w, got)
		}
	}
}

func TestSettingsPersistRoundTrip(t *testing.T) {
	mem := storage.NewMemoryStore()
	journal := storage.NewJournal(mem, nil)

	s := NewSettingsStore(journal)
	s.ToggleTheme() // dark -> light
	journal.Wait()

	reloaded := NewSettingsStore(journal)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := reloaded.Settings().Theme; got != model.ThemeLight {
		t.Errorf("expected light after reload, got %s", got)
	}
}
