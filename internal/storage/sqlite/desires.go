package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
)

const desireColumns = `id, title, description, details, images, area, is_active, is_completed, completed_at, created_at`

type desireScanner interface {
	Scan(dest ...any) error
}

func scanDesire(row desireScanner) (models.Desire, error) {
	var d models.Desire
	var details, area, completedAt sql.NullString
	var images, createdAt string

	err := row.Scan(&d.ID, &d.Title, &d.Description, &details, &images, &area,
		&d.IsActive, &d.IsCompleted, &completedAt, &createdAt)
	if err != nil {
		return models.Desire{}, err
	}

	if details.Valid {
		d.Details = &details.String
	}
	if area.Valid {
		d.Area = models.LifeArea(area.String)
	}
	if err := json.Unmarshal([]byte(images), &d.Images); err != nil {
		return models.Desire{}, fmt.Errorf("failed to parse images for desire %s: %w", d.ID, err)
	}
	if completedAt.Valid {
		t, err := parseTimestamp("completed_at", completedAt.String)
		if err != nil {
			return models.Desire{}, err
		}
		d.CompletedAt = &t
	}
	d.CreatedAt, err = parseTimestamp("created_at", createdAt)
	if err != nil {
		return models.Desire{}, err
	}

	return d, nil
}

func desireArgs(d models.Desire) ([]any, error) {
	if d.Images == nil {
		d.Images = []models.Image{}
	}
	images, err := json.Marshal(d.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images for desire %s: %w", d.ID, err)
	}

	var details, area, completedAt sql.NullString
	if d.Details != nil {
		details = sql.NullString{String: *d.Details, Valid: true}
	}
	if d.Area != models.LifeAreaNone {
		area = sql.NullString{String: string(d.Area), Valid: true}
	}
	if d.CompletedAt != nil {
		completedAt = sql.NullString{String: timestamp(*d.CompletedAt), Valid: true}
	}

	return []any{d.ID, d.Title, d.Description, details, string(images), area,
		d.IsActive, d.IsCompleted, completedAt, timestamp(d.CreatedAt)}, nil
}

func (s *Store) AddDesire(d models.Desire) error {
	args, err := desireArgs(d)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO desires (`+desireColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			details = excluded.details,
			images = excluded.images,
			area = excluded.area,
			is_active = excluded.is_active,
			is_completed = excluded.is_completed,
			completed_at = excluded.completed_at`,
		args...)

	return err
}

func (s *Store) GetDesire(id string) (models.Desire, error) {
	row := s.db.QueryRow(`SELECT `+desireColumns+` FROM desires WHERE id = ?`, id)
	d, err := scanDesire(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Desire{}, storage.ErrNotFound
	}
	return d, err
}

func (s *Store) PatchDesire(id string, patch models.DesirePatch) error {
	d, err := s.GetDesire(id)
	if err != nil {
		return err
	}

	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Details != nil {
		d.Details = patch.Details
	}
	if patch.Images != nil {
		d.Images = *patch.Images
	}
	if patch.Area != nil {
		if *patch.Area != models.LifeAreaNone && !patch.Area.IsValid() {
			return fmt.Errorf("unknown life area: %q", *patch.Area)
		}
		d.Area = *patch.Area
	}

	return s.AddDesire(d)
}

// DeleteDesire removes the desire and cascades over its contacts and action
// items in one transaction, so no orphans survive a partial failure.
func (s *Store) DeleteDesire(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM contacts WHERE desire_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete contacts for desire %s: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM action_items WHERE desire_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete action items for desire %s: %w", id, err)
	}

	result, err := tx.Exec(`DELETE FROM desires WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return tx.Commit()
}

func (s *Store) GetAllDesires(includeCompleted bool) ([]models.Desire, error) {
	query := `SELECT ` + desireColumns + ` FROM desires`
	if !includeCompleted {
		query += ` WHERE is_completed = 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var desires []models.Desire
	for rows.Next() {
		d, err := scanDesire(rows)
		if err != nil {
			return nil, err
		}
		desires = append(desires, d)
	}

	return desires, rows.Err()
}

// MarkDesireCompleted sets completed, the completion timestamp, and drops
// focus in one statement. A completed desire can't be half-completed-but-
// still-active.
func (s *Store) MarkDesireCompleted(id string) error {
	result, err := s.db.Exec(`
		UPDATE desires
		SET is_completed = 1, completed_at = ?, is_active = 0
		WHERE id = ?`,
		timestamp(s.now()), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *Store) SetFocusDesire(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := setFocusTx(tx, id); err != nil {
		return err
	}

	return tx.Commit()
}

// setFocusTx runs the deactivate-all-then-activate-one sequence inside an
// existing transaction. Completed desires are not eligible for focus.
func setFocusTx(tx *sql.Tx, id string) error {
	var isCompleted bool
	err := tx.QueryRow(`SELECT is_completed FROM desires WHERE id = ?`, id).Scan(&isCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return err
	}
	if isCompleted {
		return fmt.Errorf("completed desire cannot be set as focus")
	}

	if _, err := tx.Exec(`UPDATE desires SET is_active = 0 WHERE is_active = 1 AND id != ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE desires SET is_active = 1 WHERE id = ?`, id); err != nil {
		return err
	}

	return nil
}

func (s *Store) GetFocusDesire() (models.Desire, error) {
	row := s.db.QueryRow(`SELECT ` + desireColumns + ` FROM desires WHERE is_active = 1 LIMIT 1`)
	d, err := scanDesire(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Desire{}, storage.ErrNotFound
	}
	return d, err
}

// CountDesiresByArea returns, for each requested area, the number of
// non-completed desires tagged with it. Areas without desires map to 0.
func (s *Store) CountDesiresByArea(areas []models.LifeArea) (map[models.LifeArea]int, error) {
	counts := make(map[models.LifeArea]int, len(areas))
	for _, area := range areas {
		counts[area] = 0
	}

	rows, err := s.db.Query(`
		SELECT area, COUNT(*)
		FROM desires
		WHERE is_completed = 0 AND area IS NOT NULL
		GROUP BY area`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var area models.LifeArea
		var count int
		if err := rows.Scan(&area, &count); err != nil {
			return nil, err
		}
		if _, wanted := counts[area]; wanted {
			counts[area] = count
		}
	}

	return counts, rows.Err()
}
