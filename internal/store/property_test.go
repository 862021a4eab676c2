package store

import (
	"testing"

	"github.com/adilev/focusboard/internal/model"
	"pgregory.net/rapid"
)

// TestFilterIdempotent verifies that tasks surviving a filter still match
// it: filtering the filtered set changes nothing.
func TestFilterIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := NewKanbanStore(testJournal())

		n := rapid.IntRange(0, 20).Draw(rt, "num_tasks")
		for i := 0; i < n; i++ {
			s.AddTask(model.TaskDraft{
				Title:       rapid.StringMatching(`[a-z ]{1,20}`).Draw(rt, "title"),
				Status:      rapid.SampledFrom(model.Statuses).Draw(rt, "status"),
				Priority:    rapid.SampledFrom([]model.Priority{model.PriorityP0, model.PriorityP1, model.PriorityP2, model.PriorityP3}).Draw(rt, "priority"),
				AIGenerated: rapid.Bool().Draw(rt, "ai"),
			})
		}

		filter := model.FilterState{
			Search: rapid.SampledFrom([]string{"", "a", "xyz"}).Draw(rt, "search"),
		}
		if rapid.Bool().Draw(rt, "filter_status") {
			filter.Statuses = []model.Status{rapid.SampledFrom(model.Statuses).Draw(rt, "want_status")}
		}
		if rapid.Bool().Draw(rt, "filter_ai") {
			ai := rapid.Bool().Draw(rt, "want_ai")
			filter.AIGenerated = &ai
		}
		s.SetFilter(filter)

		first := s.FilteredTasks()
		for _, task := range first {
			if !s.matches(&task) {
				rt.Fatalf("task %q survived the filter but does not match it", task.Title)
			}
		}
	})
}

// TestPinnedAlwaysBeforeUnpinned verifies the notes ordering invariant
// under arbitrary pin/unpin sequences.
func TestPinnedAlwaysBeforeUnpinned(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := NewNotesStore(testJournal())

		n := rapid.IntRange(1, 10).Draw(rt, "num_notes")
		var ids []string
		for i := 0; i < n; i++ {
			ids = append(ids, s.Add(rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "title")).ID)
		}

		ops := rapid.IntRange(0, 30).Draw(rt, "num_toggles")
		for i := 0; i < ops; i++ {
			s.TogglePinned(rapid.SampledFrom(ids).Draw(rt, "toggle_id"))
		}

		seenUnpinned := false
		for _, note := range s.Notes() {
			if !note.Pinned {
				seenUnpinned = true
			} else if seenUnpinned {
				rt.Fatalf("pinned note %q found after an unpinned one", note.Title)
			}
		}
	})
}

// TestProductivityScoreBounded verifies the score stays in [0,100] and
// never decreases as more activity lands on the same day.
func TestProductivityScoreBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, _ := newTestAnalytics()

		prev := s.ProductivityScore()
		if prev != 0 {
			rt.Fatalf("quiet day must score 0, got %d", prev)
		}

		ops := rapid.IntRange(1, 50).Draw(rt, "num_ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				s.RecordTaskCompletion()
			case 1:
				s.RecordTodoCompletion()
			default:
				s.RecordPomodoroSession(25)
			}

			score := s.ProductivityScore()
			if score < 0 || score > 100 {
				rt.Fatalf("score %d out of range", score)
			}
			if score < prev {
				rt.Fatalf("score decreased from %d to %d within the same day", prev, score)
			}
			prev = score
		}
	})
}

// TestTodoReorderPreservesSet verifies reordering never adds, drops or
// duplicates todos, whatever id sequence it is given.
func TestTodoReorderPreservesSet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := NewTodoStore(testJournal())

		n := rapid.IntRange(0, 10).Draw(rt, "num_todos")
		ids := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			ids[s.Add(rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "text"), nil).ID] = true
		}

		// A permutation of a random subset, possibly with unknown ids mixed in
		var seq []string
		for id := range ids {
			if rapid.Bool().Draw(rt, "include") {
				seq = append(seq, id)
			}
		}
		if rapid.Bool().Draw(rt, "add_unknown") {
			seq = append(seq, "unknown-id")
		}
		s.Reorder(seq)

		got := s.Todos()
		if len(got) != n {
			rt.Fatalf("expected %d todos after reorder, got %d", n, len(got))
		}
		seen := make(map[string]bool, len(got))
		for _, todo := range got {
			if seen[todo.ID] {
				rt.Fatalf("todo %s duplicated by reorder", todo.ID)
			}
			seen[todo.ID] = true
			if !ids[todo.ID] {
				rt.Fatalf("todo %s appeared from nowhere", todo.ID)
			}
		}
	})
}
