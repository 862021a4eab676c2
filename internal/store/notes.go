package store

import (
	"context"
	"sort"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
	"github.com/google/uuid"
)

// NotesStore owns the notes list, their pinned ordering and the active
// selection. The active note id is transient and not persisted.
type NotesStore struct {
	journal  *storage.Journal
	notes    []model.Note
	activeID string
}

func NewNotesStore(journal *storage.Journal) *NotesStore {
	return &NotesStore{journal: journal}
}

func (s *NotesStore) Load(ctx context.Context) error {
	var notes []model.Note
	if _, err := s.journal.Load(ctx, storage.KeyNotes, &notes); err != nil {
		return err
	}
	s.notes = notes
	if len(s.notes) > 0 {
		s.activeID = s.notes[0].ID
	}
	return nil
}

func (s *NotesStore) persist() {
	s.journal.Write(storage.KeyNotes, s.notes)
}

// Add prepends a new empty note and makes it active
func (s *NotesStore) Add(title string) model.Note {
	note := model.Note{
		ID:        uuid.New().String(),
		Title:     title,
		UpdatedAt: time.Now(),
	}
	s.notes = append([]model.Note{note}, s.notes...)
	s.activeID = note.ID
	s.persist()
	return note
}

// Update replaces title and content and refreshes UpdatedAt
func (s *NotesStore) Update(id, title, content string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Title = title
			s.notes[i].Content = content
			s.notes[i].UpdatedAt = time.Now()
			s.persist()
			return
		}
	}
}

// Delete removes the note. When the deleted note was active, activation
// falls to the new first note, or nothing when the list empties.
func (s *NotesStore) Delete(id string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			if s.activeID == id {
				if len(s.notes) > 0 {
					s.activeID = s.notes[0].ID
				} else {
					s.activeID = ""
				}
			}
			s.persist()
			return
		}
	}
}

// TogglePinned flips pinned and re-sorts the full list: pinned first,
// then UpdatedAt descending within each group.
func (s *NotesStore) TogglePinned(id string) {
	found := false
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Pinned = !s.notes[i].Pinned
			found = true
			break
		}
	}
	if !found {
		return
	}
	sort.SliceStable(s.notes, func(i, j int) bool {
		if s.notes[i].Pinned != s.notes[j].Pinned {
			return s.notes[i].Pinned
		}
		return s.notes[i].UpdatedAt.After(s.notes[j].UpdatedAt)
	})
	s.persist()
}

// SetActive selects a note; unknown ids are ignored
func (s *NotesStore) SetActive(id string) {
	for _, n := range s.notes {
		if n.ID == id {
			s.activeID = id
			return
		}
	}
}

// Active returns the selected note, or nil
func (s *NotesStore) Active() *model.Note {
	for _, n := range s.notes {
		if n.ID == s.activeID {
			out := n
			return &out
		}
	}
	return nil
}

// Notes returns the current list in display order
func (s *NotesStore) Notes() []model.Note {
	return append([]model.Note(nil), s.notes...)
}
