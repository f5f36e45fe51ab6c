package storage

import (
	"errors"

	"github.com/wellandco/wishwell/internal/models"
)

// ErrNotFound is returned by single-record lookups when no record exists.
// Callers check it with errors.Is; it is never a panic.
var ErrNotFound = errors.New("record not found")

// Provider is the persistence contract the CLI talks to. Compound invariants
// (single focus, upsert-then-promote, cascade delete, dense ordering) are
// maintained inside the implementation, each within one call.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Desires
	AddDesire(models.Desire) error
	GetDesire(id string) (models.Desire, error)
	PatchDesire(id string, patch models.DesirePatch) error
	DeleteDesire(id string) error
	GetAllDesires(includeCompleted bool) ([]models.Desire, error)
	MarkDesireCompleted(id string) error
	// SetFocusDesire deactivates every other desire and activates the given
	// one in a single transaction; at most one desire is ever in focus.
	SetFocusDesire(id string) error
	GetFocusDesire() (models.Desire, error)
	CountDesiresByArea(areas []models.LifeArea) (map[models.LifeArea]int, error)

	// Contacts
	GetTodayContact(desireID string, ctype models.ContactType) (models.Contact, error)
	// UpsertTodayContact inserts or updates today's contact of the given type.
	// Before the focus cutoff hour it also promotes the owning desire to
	// focus, through the same single-focus sequence as SetFocusDesire.
	UpsertTodayContact(desireID string, ctype models.ContactType, text string) (models.Contact, error)
	DeleteContact(id string) error
	GetContacts(desireID string) ([]models.Contact, error)
	GetContactsByType(desireID string, ctype models.ContactType) ([]models.Contact, error)
	ContactDaysLastWeek(desireID string, ctype models.ContactType) (int, error)
	TotalContactDaysLastWeek(desireID string) (int, error)
	// WeekSummary returns exactly 7 entries, dates ascending, last = today.
	WeekSummary(desireID string) ([]models.DaySummary, error)
	ContactStatistics(desireID string) (models.ContactStats, error)

	// Action items
	AddActionItem(desireID, text string, position *int) (models.ActionItem, error)
	PatchActionItem(id string, patch models.ActionItemPatch) error
	ToggleActionItem(id string) (models.ActionItem, error)
	DeleteActionItem(id string) error
	DeleteActionItemsForDesire(desireID string) error
	ReorderActionItems(desireID string, orderedIDs []string) error
	AllActionItemsCompleted(desireID string) (bool, error)
	GetActionItems(desireID string) ([]models.ActionItem, error)

	// Life areas
	GetLifeAreas() ([]models.LifeAreaRating, error)
	SetLifeAreaScore(area models.LifeArea, score int) (models.LifeAreaRating, error)

	// Feedback
	AddFeedback(text string, rating *int) (models.Feedback, error)
	GetAllFeedbacks() ([]models.Feedback, error)
	DeleteFeedback(id string) error

	// Snapshot
	ExportData() (models.Snapshot, error)
	// ImportData clears all collections and bulk-inserts the snapshot in one
	// transaction; on failure no partial data is left behind.
	ImportData(models.Snapshot) error
}
