package store

import (
	"context"
	"sort"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
)

// dailyStatsCap bounds the persisted daily history; the in-memory list
// grows until the next reload truncates it.
const dailyStatsCap = 30

// analyticsSnapshot is the persisted document under the analytics key
type analyticsSnapshot struct {
	DailyStats          []model.DailyStats `json:"daily_stats"`
	CurrentStreak       int                `json:"current_streak"`
	LongestStreak       int                `json:"longest_streak"`
	TotalTasksCompleted int                `json:"total_tasks_completed"`
	TotalFocusMinutes   int                `json:"total_focus_minutes"`
}

// AnalyticsStore owns per-day aggregate counters and the streak. It does
// not subscribe to the other stores; the UI layer calls the Record
// methods next to the mutation that earned them.
type AnalyticsStore struct {
	journal *storage.Journal
	now     func() time.Time

	daily               []model.DailyStats
	currentStreak       int
	longestStreak       int
	totalTasksCompleted int
	totalFocusMinutes   int
}

func NewAnalyticsStore(journal *storage.Journal) *AnalyticsStore {
	return &AnalyticsStore{journal: journal, now: time.Now}
}

func (s *AnalyticsStore) Load(ctx context.Context) error {
	var snap analyticsSnapshot
	if _, err := s.journal.Load(ctx, storage.KeyAnalytics, &snap); err != nil {
		return err
	}
	s.daily = snap.DailyStats
	s.currentStreak = snap.CurrentStreak
	s.longestStreak = snap.LongestStreak
	s.totalTasksCompleted = snap.TotalTasksCompleted
	s.totalFocusMinutes = snap.TotalFocusMinutes
	return nil
}

func (s *AnalyticsStore) persist() {
	daily := append([]model.DailyStats(nil), s.daily...)
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date > daily[j].Date })
	if len(daily) > dailyStatsCap {
		daily = daily[:dailyStatsCap]
	}
	s.journal.Write(storage.KeyAnalytics, analyticsSnapshot{
		DailyStats:          daily,
		CurrentStreak:       s.currentStreak,
		LongestStreak:       s.longestStreak,
		TotalTasksCompleted: s.totalTasksCompleted,
		TotalFocusMinutes:   s.totalFocusMinutes,
	})
}

// RecordTaskCompletion bumps today's task counter
func (s *AnalyticsStore) RecordTaskCompletion() {
	d := s.today()
	d.TasksCompleted++
	s.totalTasksCompleted++
	s.updateStreak()
	s.persist()
}

// RecordTodoCompletion bumps today's todo counter
func (s *AnalyticsStore) RecordTodoCompletion() {
	d := s.today()
	d.TodosCompleted++
	s.updateStreak()
	s.persist()
}

// RecordPomodoroSession bumps today's session count and focus minutes
func (s *AnalyticsStore) RecordPomodoroSession(minutes int) {
	d := s.today()
	d.PomodoroSessions++
	d.FocusMinutes += minutes
	s.totalFocusMinutes += minutes
	s.updateStreak()
	s.persist()
}

// today finds or creates the record for the current calendar day
func (s *AnalyticsStore) today() *model.DailyStats {
	key := s.now().Format(model.DateKey)
	for i := range s.daily {
		if s.daily[i].Date == key {
			return &s.daily[i]
		}
	}
	s.daily = append(s.daily, model.DailyStats{Date: key})
	return &s.daily[len(s.daily)-1]
}

// updateStreak walks consecutive calendar days starting today; a day
// counts only when it is exactly the expected prior day and has at
// least one productive action. The walk stops at the first gap or
// zero-activity day. longestStreak never decreases.
func (s *AnalyticsStore) updateStreak() {
	byDate := make(map[string]*model.DailyStats, len(s.daily))
	for i := range s.daily {
		byDate[s.daily[i].Date] = &s.daily[i]
	}

	streak := 0
	day := s.now()
	for {
		d, ok := byDate[day.Format(model.DateKey)]
		if !ok || !d.HasActivity() {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	s.currentStreak = streak
	if streak > s.longestStreak {
		s.longestStreak = streak
	}
}

// CurrentStreak returns consecutive active days ending today
func (s *AnalyticsStore) CurrentStreak() int { return s.currentStreak }

// LongestStreak returns the running maximum streak ever observed
func (s *AnalyticsStore) LongestStreak() int { return s.longestStreak }

// TotalTasksCompleted returns the lifetime completed-task counter
func (s *AnalyticsStore) TotalTasksCompleted() int { return s.totalTasksCompleted }

// TotalFocusMinutes returns the lifetime focus-minute counter
func (s *AnalyticsStore) TotalFocusMinutes() int { return s.totalFocusMinutes }

// TodayStats returns a copy of today's record, zero-valued when the day
// has no events yet
func (s *AnalyticsStore) TodayStats() model.DailyStats {
	key := s.now().Format(model.DateKey)
	for _, d := range s.daily {
		if d.Date == key {
			return d
		}
	}
	return model.DailyStats{Date: key}
}

// DailyStats returns the in-memory daily history
func (s *AnalyticsStore) DailyStats() []model.DailyStats {
	return append([]model.DailyStats(nil), s.daily...)
}

// ProductivityScore derives the 0-100 score from today's counters and
// the streak: 10/task capped at 40, 5/todo capped at 20, 10/session
// capped at 30, 2/streak-day capped at 10, sum clamped to 100.
// Computed on read, never stored.
func (s *AnalyticsStore) ProductivityScore() int {
	d := s.TodayStats()
	score := capped(d.TasksCompleted*10, 40) +
		capped(d.TodosCompleted*5, 20) +
		capped(d.PomodoroSessions*10, 30) +
		capped(s.currentStreak*2, 10)
	if score > 100 {
		score = 100
	}
	return score
}

func capped(v, max int) int {
	if v > max {
		return max
	}
	return v
}
