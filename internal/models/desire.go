package models

import "time"

// Image is a picture attached to a desire. Images are owned exclusively by
// their desire and replaced wholesale on update.
type Image struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Desire is a tracked personal goal/wish.
type Desire struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Details     *string    `json:"details,omitempty"`
	Images      []Image    `json:"images"`
	Area        LifeArea   `json:"area,omitempty"` // empty when untagged
	IsActive    bool       `json:"is_active"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DesirePatch is a field-subset update for a desire. Nil fields are left
// untouched. Focus and completion state are deliberately absent: they change
// only through SetFocusDesire and MarkDesireCompleted so their multi-field
// invariants can't be half-applied.
type DesirePatch struct {
	Title       *string
	Description *string
	Details     *string
	Images      *[]Image
	Area        *LifeArea // set to LifeAreaNone to clear the tag
}
