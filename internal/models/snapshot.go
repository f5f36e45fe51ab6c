package models

import "time"

// Snapshot is the whole-store export document. Desires is the only required
// collection on import; missing collections are treated as empty.
type Snapshot struct {
	Version     int              `json:"version"`
	ExportedAt  time.Time        `json:"exported_at"`
	Desires     []Desire         `json:"desires"`
	Contacts    []Contact        `json:"contacts"`
	ActionItems []ActionItem     `json:"action_items,omitempty"`
	LifeAreas   []LifeAreaRating `json:"life_areas"`
	Feedbacks   []Feedback       `json:"feedbacks"`
}
