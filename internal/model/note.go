package model

import (
	"time"
)

// Note is a free-text note. Pinned notes sort before unpinned ones,
// ties broken by UpdatedAt descending; the ordering is maintained by
// the notes store, not stored per note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preview returns the first line of content for list rendering
func (n *Note) Preview(max int) string {
	s := n.Content
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	if len([]rune(s)) > max {
		return string([]rune(s)[:max]) + "…"
	}
	return s
}
