package store

import (
	"context"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
	"github.com/google/uuid"
)

// sessionHistoryCap bounds the persisted session history. The in-memory
// list keeps growing until the next reload truncates it.
const sessionHistoryCap = 100

// Alerter receives phase-completion notifications when sound is enabled.
type Alerter interface {
	WorkComplete(linkedTaskID string, minutes int)
	BreakComplete()
}

// PhaseTransition describes what a Tick, Skip or CompletePhase did.
// Session is non-nil only for naturally completed work phases; the UI
// layer uses it to feed analytics and notifications.
type PhaseTransition struct {
	From    model.Phase
	To      model.Phase
	Session *model.PomodoroSession
}

// PomodoroStore is the timer state machine. It reads the settings store
// at call time (never caching durations) and owns the session history.
type PomodoroStore struct {
	journal  *storage.Journal
	settings *SettingsStore
	alerter  Alerter

	phase             model.Phase
	timeRemaining     int // seconds
	isRunning         bool
	sessionsCompleted int // work sessions since the store was created
	totalSessions     int
	sessionStart      *time.Time
	linkedTaskID      string
	sessions          []model.PomodoroSession
}

// NewPomodoroStore creates an idle timer. alerter may be nil.
func NewPomodoroStore(journal *storage.Journal, settings *SettingsStore, alerter Alerter) *PomodoroStore {
	s := &PomodoroStore{
		journal:  journal,
		settings: settings,
		alerter:  alerter,
		phase:    model.PhaseIdle,
	}
	s.timeRemaining = s.workSeconds()
	return s
}

// Load reads the persisted session history (last 100 entries).
func (s *PomodoroStore) Load(ctx context.Context) error {
	var sessions []model.PomodoroSession
	if _, err := s.journal.Load(ctx, storage.KeyPomodoro, &sessions); err != nil {
		return err
	}
	s.sessions = sessions
	return nil
}

func (s *PomodoroStore) persist() {
	out := s.sessions
	if len(out) > sessionHistoryCap {
		out = out[len(out)-sessionHistoryCap:]
	}
	s.journal.Write(storage.KeyPomodoro, out)
}

// Start transitions to the work phase from any state, binding an
// optional task id. The countdown begins immediately.
func (s *PomodoroStore) Start(taskID string) {
	now := time.Now()
	s.phase = model.PhaseWork
	s.timeRemaining = s.workSeconds()
	s.isRunning = true
	s.sessionStart = &now
	s.linkedTaskID = taskID
}

// Pause stops the countdown without touching phase or remaining time
func (s *PomodoroStore) Pause() {
	s.isRunning = false
}

// Resume continues the countdown from the current remaining time
func (s *PomodoroStore) Resume() {
	s.isRunning = true
}

// Reset forces the timer back to idle with a full work duration
func (s *PomodoroStore) Reset() {
	s.phase = model.PhaseIdle
	s.timeRemaining = s.workSeconds()
	s.isRunning = false
	s.sessionStart = nil
	s.linkedTaskID = ""
}

// Tick advances the countdown by one second. A no-op while not running
// or when no time remains. Crossing zero completes the phase at the end
// of the same call; the countdown crosses zero exactly once per phase,
// so completion fires exactly once.
func (s *PomodoroStore) Tick() *PhaseTransition {
	if !s.isRunning || s.phase == model.PhaseIdle || s.timeRemaining <= 0 {
		return nil
	}
	s.timeRemaining--
	if s.timeRemaining > 0 {
		return nil
	}
	s.timeRemaining = 0
	return s.CompletePhase()
}

// Skip advances the phase early, mirroring the natural transition
// (same break kind, same auto-start behavior) but recording no session
// and bumping no counters. An escape hatch, not a fast-forward.
func (s *PomodoroStore) Skip() *PhaseTransition {
	cfg := s.settings.Pomodoro()

	switch s.phase {
	case model.PhaseWork:
		// The would-be break kind still follows the post-increment rule,
		// but without incrementing: peek at the next boundary.
		next := model.PhaseShortBreak
		if cfg.SessionsBeforeLongBreak > 0 && (s.sessionsCompleted+1)%cfg.SessionsBeforeLongBreak == 0 {
			next = model.PhaseLongBreak
		}
		from := s.phase
		s.enterBreak(next)
		s.isRunning = cfg.AutoStartBreaks
		return &PhaseTransition{From: from, To: s.phase}
	case model.PhaseShortBreak, model.PhaseLongBreak:
		from := s.phase
		s.enterWork()
		s.isRunning = cfg.AutoStartWork
		if s.isRunning {
			now := time.Now()
			s.sessionStart = &now
		} else {
			s.sessionStart = nil
		}
		return &PhaseTransition{From: from, To: s.phase}
	default:
		return nil
	}
}

// CompletePhase is the only transition that records history and bumps
// counters. Work completion appends a session, increments the counters
// and picks the break kind by the post-increment count; break completion
// returns to work, honoring the auto-start settings.
func (s *PomodoroStore) CompletePhase() *PhaseTransition {
	cfg := s.settings.Pomodoro()

	switch s.phase {
	case model.PhaseWork:
		now := time.Now()
		started := now.Add(-time.Duration(cfg.WorkDuration) * time.Minute)
		if s.sessionStart != nil {
			started = *s.sessionStart
		}
		session := model.PomodoroSession{
			ID:           uuid.New().String(),
			StartedAt:    started,
			CompletedAt:  &now,
			Phase:        model.PhaseWork,
			Duration:     cfg.WorkDuration,
			LinkedTaskID: s.linkedTaskID,
		}
		s.sessions = append(s.sessions, session)
		s.sessionsCompleted++
		s.totalSessions++

		// Every Nth completed work session triggers the long break,
		// counting the session just finished.
		isLong := cfg.SessionsBeforeLongBreak > 0 &&
			s.sessionsCompleted%cfg.SessionsBeforeLongBreak == 0

		from := s.phase
		if isLong {
			s.enterBreak(model.PhaseLongBreak)
		} else {
			s.enterBreak(model.PhaseShortBreak)
		}
		s.isRunning = cfg.AutoStartBreaks
		s.persist()

		if s.alerter != nil && cfg.SoundEnabled {
			s.alerter.WorkComplete(session.LinkedTaskID, session.Duration)
		}
		return &PhaseTransition{From: from, To: s.phase, Session: &session}

	case model.PhaseShortBreak, model.PhaseLongBreak:
		from := s.phase
		s.enterWork()
		s.isRunning = cfg.AutoStartWork
		if s.isRunning {
			now := time.Now()
			s.sessionStart = &now
		} else {
			s.sessionStart = nil
		}

		if s.alerter != nil && cfg.SoundEnabled {
			s.alerter.BreakComplete()
		}
		return &PhaseTransition{From: from, To: s.phase}

	default:
		return nil
	}
}

func (s *PomodoroStore) enterBreak(kind model.Phase) {
	cfg := s.settings.Pomodoro()
	s.phase = kind
	if kind == model.PhaseLongBreak {
		s.timeRemaining = cfg.LongBreakDuration * 60
	} else {
		s.timeRemaining = cfg.ShortBreakDuration * 60
	}
	s.sessionStart = nil
}

func (s *PomodoroStore) enterWork() {
	s.phase = model.PhaseWork
	s.timeRemaining = s.workSeconds()
}

func (s *PomodoroStore) workSeconds() int {
	return s.settings.Pomodoro().WorkDuration * 60
}

// Phase returns the current phase
func (s *PomodoroStore) Phase() model.Phase { return s.phase }

// TimeRemaining returns the countdown in seconds
func (s *PomodoroStore) TimeRemaining() int { return s.timeRemaining }

// IsRunning reports whether the countdown is active
func (s *PomodoroStore) IsRunning() bool { return s.isRunning }

// SessionsCompleted returns work sessions completed this run
func (s *PomodoroStore) SessionsCompleted() int { return s.sessionsCompleted }

// LinkedTaskID returns the task bound to the current session, if any
func (s *PomodoroStore) LinkedTaskID() string { return s.linkedTaskID }

// Sessions returns the in-memory session history
func (s *PomodoroStore) Sessions() []model.PomodoroSession {
	return append([]model.PomodoroSession(nil), s.sessions...)
}

// TodayStats sums completed work sessions since local midnight
func (s *PomodoroStore) TodayStats() (sessions, minutes int) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.statsSince(midnight)
}

// WeekStats sums completed work sessions over the trailing seven days
func (s *PomodoroStore) WeekStats() (sessions, minutes int) {
	return s.statsSince(time.Now().AddDate(0, 0, -7))
}

func (s *PomodoroStore) statsSince(cutoff time.Time) (count, minutes int) {
	for _, sess := range s.sessions {
		if sess.Phase != model.PhaseWork || sess.CompletedAt == nil {
			continue
		}
		if sess.CompletedAt.Before(cutoff) {
			continue
		}
		count++
		minutes += sess.Duration
	}
	return count, minutes
}
