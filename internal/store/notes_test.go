package store

import (
	"testing"
)

func TestNotesAddActivates(t *testing.T) {
	s := NewNotesStore(testJournal())
	first := s.Add("first")
	if active := s.Active(); active == nil || active.ID != first.ID {
		t.Fatal("new note must become active")
	}

	second := s.Add("second")
	if active := s.Active(); active.ID != second.ID {
		t.Fatal("newest note must take over activation")
	}
	if s.Notes()[0].ID != second.ID {
		t.Error("new notes must be prepended")
	}
}

func TestNotesDeleteFallsBackToFirst(t *testing.T) {
	s := NewNotesStore(testJournal())
	s.Add("a")
	b := s.Add("b") // active, at index 0

	s.Delete(b.ID)

	active := s.Active()
	if active == nil || active.Title != "a" {
		t.Fatal("deleting the active note must activate the new first note")
	}

	s.Delete(active.ID)
	if s.Active() != nil {
		t.Error("emptying the list must clear activation")
	}
}

func TestNotesDeleteInactiveKeepsActivation(t *testing.T) {
	s := NewNotesStore(testJournal())
	a := s.Add("a")
	b := s.Add("b") // active

	s.Delete(a.ID)

	if active := s.Active(); active == nil || active.ID != b.ID {
		t.Error("deleting a non-active note must not change activation")
	}
}

func TestNotesPinnedSortBeforeUnpinned(t *testing.T) {
	s := NewNotesStore(testJournal())
	s.Add("oldest")
	pinned := s.Add("middle")
	s.Add("newest")
	// order: newest, middle, oldest

	s.TogglePinned(pinned.ID)

	notes := s.Notes()
	if notes[0].ID != pinned.ID {
		t.Fatalf("pinned note must sort first, got %q", notes[0].Title)
	}
	// unpinned group keeps UpdatedAt-descending order
	if notes[1].Title != "newest" || notes[2].Title != "oldest" {
		t.Errorf("unpinned order wrong: %q, %q", notes[1].Title, notes[2].Title)
	}
}

func TestNotesUnpinRestoresRecencyOrder(t *testing.T) {
	s := NewNotesStore(testJournal())
	old := s.Add("old")
	s.Add("new")

	s.TogglePinned(old.ID)
	if s.Notes()[0].ID != old.ID {
		t.Fatal("expected old pinned first")
	}

	s.TogglePinned(old.ID)
	if s.Notes()[0].Title != "new" {
		t.Error("unpinning must restore UpdatedAt-descending order")
	}
}

func TestNotesSetActiveIgnoresUnknownID(t *testing.T) {
	s := NewNotesStore(testJournal())
	n := s.Add("only")

	s.SetActive("no-such-note")

	if active := s.Active(); active == nil || active.ID != n.ID {
		t.Error("unknown id must not change activation")
	}
}

func TestNotePreviewFirstLine(t *testing.T) {
	s := NewNotesStore(testJournal())
	n := s.Add("n")
	s.Update(n.ID, "n", "line one\nline two")

	got := s.Notes()[0].Preview(40)
	if got != "line one" {
		t.Errorf("expected first line only, got %q", got)
	}
}
