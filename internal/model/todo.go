package model

import (
	"time"
)

// Todo is a quick flat-list item, independent of board tasks
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Priority  *Priority `json:"priority,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
