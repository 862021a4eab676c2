package store

import (
	"context"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
)

// SettingsStore owns the single AppSettings instance. It is the only
// source of configuration the pomodoro store reads.
type SettingsStore struct {
	journal  *storage.Journal
	settings model.AppSettings
}

func NewSettingsStore(journal *storage.Journal) *SettingsStore {
	return &SettingsStore{journal: journal, settings: model.DefaultSettings()}
}

// Load merges the persisted partial settings onto the hard-coded
// defaults. Unmarshalling into a pre-filled value leaves absent fields
// at their defaults, top-level and nested alike, so adding a setting in
// a future version needs no migration.
func (s *SettingsStore) Load(ctx context.Context) error {
	merged := model.DefaultSettings()
	if _, err := s.journal.Load(ctx, storage.KeySettings, &merged); err != nil {
		return err
	}
	s.settings = merged
	return nil
}

func (s *SettingsStore) persist() {
	s.journal.Write(storage.KeySettings, s.settings)
}

// Settings returns a copy of the current settings
func (s *SettingsStore) Settings() model.AppSettings {
	return s.settings
}

// Pomodoro returns the nested pomodoro configuration
func (s *SettingsStore) Pomodoro() model.PomodoroSettings {
	return s.settings.Pomodoro
}

// Update shallow-merges the patch into the flat settings object
func (s *SettingsStore) Update(patch model.SettingsPatch) {
	if patch.Theme != nil {
		s.settings.Theme = *patch.Theme
	}
	if patch.Language != nil {
		s.settings.Language = *patch.Language
	}
	if patch.HapticsEnabled != nil {
		s.settings.HapticsEnabled = *patch.HapticsEnabled
	}
	if patch.SoundEnabled != nil {
		s.settings.SoundEnabled = *patch.SoundEnabled
	}
	if patch.DefaultPriority != nil {
		s.settings.DefaultPriority = *patch.DefaultPriority
	}
	if patch.DailyGoal != nil {
		s.settings.DailyGoal = *patch.DailyGoal
	}
	if patch.TrackProductivity != nil {
		s.settings.TrackProductivity = *patch.TrackProductivity
	}
	s.persist()
}

// UpdatePomodoro merges the patch into the nested pomodoro sub-object only
func (s *SettingsStore) UpdatePomodoro(patch model.PomodoroPatch) {
	p := &s.settings.Pomodoro
	if patch.WorkDuration != nil {
		p.WorkDuration = *patch.WorkDuration
	}
	if patch.ShortBreakDuration != nil {
		p.ShortBreakDuration = *patch.ShortBreakDuration
	}
	if patch.LongBreakDuration != nil {
		p.LongBreakDuration = *patch.LongBreakDuration
	}
	if patch.SessionsBeforeLongBreak != nil {
		p.SessionsBeforeLongBreak = *patch.SessionsBeforeLongBreak
	}
	if patch.AutoStartBreaks != nil {
		p.AutoStartBreaks = *patch.AutoStartBreaks
	}
	if patch.AutoStartWork != nil {
		p.AutoStartWork = *patch.AutoStartWork
	}
	if patch.SoundEnabled != nil {
		p.SoundEnabled = *patch.SoundEnabled
	}
	s.persist()
}

// ToggleTheme cycles dark -> light -> system -> dark
func (s *SettingsStore) ToggleTheme() model.ThemeMode {
	switch s.settings.Theme {
	case model.ThemeDark:
		s.settings.Theme = model.ThemeLight
	case model.ThemeLight:
		s.settings.Theme = model.ThemeSystem
	default:
		s.settings.Theme = model.ThemeDark
	}
	s.persist()
	return s.settings.Theme
}
