package models

import "time"

// ActionItem is an ordered checklist entry belonging to a desire. Position
// values within a desire form a dense 0..n-1 sequence after every delete or
// reorder.
type ActionItem struct {
	ID          string     `json:"id"`
	DesireID    string     `json:"desire_id"`
	Text        string     `json:"text"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Position    int        `json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ActionItemPatch is a field-subset update for an action item. Completion
// state changes only through ToggleActionItem.
type ActionItemPatch struct {
	Text *string
}
