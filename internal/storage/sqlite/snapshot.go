package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/wellandco/wishwell/internal/constants"
	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/validation"
)

// ExportData serializes every collection into one snapshot document.
func (s *Store) ExportData() (models.Snapshot, error) {
	snap := models.Snapshot{
		Version:    constants.SnapshotFormatVersion,
		ExportedAt: s.now(),
	}

	desires, err := s.GetAllDesires(true)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export desires: %w", err)
	}
	if desires == nil {
		desires = []models.Desire{}
	}
	snap.Desires = desires

	contacts, err := s.queryContacts(`
		SELECT ` + contactColumns + `
		FROM contacts ORDER BY day, desire_id, type`)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export contacts: %w", err)
	}
	snap.Contacts = contacts

	itemRows, err := s.db.Query(`
		SELECT ` + actionItemColumns + `
		FROM action_items ORDER BY desire_id, position`)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export action items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		item, err := scanActionItem(itemRows)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to export action items: %w", err)
		}
		snap.ActionItems = append(snap.ActionItems, item)
	}
	if err := itemRows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export action items: %w", err)
	}

	areas, err := s.GetLifeAreas()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export life areas: %w", err)
	}
	snap.LifeAreas = areas

	feedbacks, err := s.GetAllFeedbacks()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to export feedbacks: %w", err)
	}
	snap.Feedbacks = feedbacks

	return snap, nil
}

// ImportData validates the snapshot, then clears every collection and
// bulk-inserts the document contents in a single transaction. On any failure
// the transaction rolls back and the store is untouched.
func (s *Store) ImportData(snap models.Snapshot) error {
	if err := validation.ValidateSnapshot(snap); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"contacts", "action_items", "feedbacks", "desires", "life_areas"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, d := range snap.Desires {
		args, err := desireArgs(d)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO desires (`+desireColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...); err != nil {
			return fmt.Errorf("failed to import desire %s: %w", d.ID, err)
		}
	}

	for _, c := range snap.Contacts {
		var updatedAt sql.NullString
		if c.UpdatedAt != nil {
			updatedAt = sql.NullString{String: timestamp(*c.UpdatedAt), Valid: true}
		}
		if _, err := tx.Exec(`
			INSERT INTO contacts (`+contactColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.DesireID, c.Day, string(c.Type.Normalize()), c.Text,
			timestamp(c.CreatedAt), updatedAt); err != nil {
			return fmt.Errorf("failed to import contact %s: %w", c.ID, err)
		}
	}

	for _, item := range snap.ActionItems {
		var completedAt sql.NullString
		if item.CompletedAt != nil {
			completedAt = sql.NullString{String: timestamp(*item.CompletedAt), Valid: true}
		}
		if _, err := tx.Exec(`
			INSERT INTO action_items (`+actionItemColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.DesireID, item.Text, item.IsCompleted,
			completedAt, item.Position, timestamp(item.CreatedAt)); err != nil {
			return fmt.Errorf("failed to import action item %s: %w", item.ID, err)
		}
	}

	for _, r := range snap.LifeAreas {
		if _, err := tx.Exec(`
			INSERT INTO life_areas (id, score)
			VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET score = excluded.score`,
			string(r.Area), validation.ClampScore(r.Score)); err != nil {
			return fmt.Errorf("failed to import life area %s: %w", r.Area, err)
		}
	}
	// Re-seed any fixed rows the snapshot did not carry: exactly one row per
	// area must exist afterwards.
	for _, area := range models.AllLifeAreas {
		if _, err := tx.Exec(`
			INSERT INTO life_areas (id, score) VALUES (?, 0)
			ON CONFLICT(id) DO NOTHING`, string(area)); err != nil {
			return fmt.Errorf("failed to seed life area %s: %w", area, err)
		}
	}

	for _, fb := range snap.Feedbacks {
		var rating sql.NullInt64
		if fb.Rating != nil {
			rating = sql.NullInt64{Int64: int64(*fb.Rating), Valid: true}
		}
		if _, err := tx.Exec(`
			INSERT INTO feedbacks (id, text, rating, created_at)
			VALUES (?, ?, ?, ?)`,
			fb.ID, fb.Text, rating, timestamp(fb.CreatedAt)); err != nil {
			return fmt.Errorf("failed to import feedback %s: %w", fb.ID, err)
		}
	}

	return tx.Commit()
}
