package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
)

const actionItemColumns = `id, desire_id, text, is_completed, completed_at, position, created_at`

func scanActionItem(row desireScanner) (models.ActionItem, error) {
	var item models.ActionItem
	var completedAt sql.NullString
	var createdAt string

	err := row.Scan(&item.ID, &item.DesireID, &item.Text, &item.IsCompleted,
		&completedAt, &item.Position, &createdAt)
	if err != nil {
		return models.ActionItem{}, err
	}

	if completedAt.Valid {
		t, err := parseTimestamp("completed_at", completedAt.String)
		if err != nil {
			return models.ActionItem{}, err
		}
		item.CompletedAt = &t
	}
	item.CreatedAt, err = parseTimestamp("created_at", createdAt)
	if err != nil {
		return models.ActionItem{}, err
	}

	return item, nil
}

// AddActionItem creates a checklist item for a desire. When position is nil
// the item appends at the end; an explicit position shifts later items down.
func (s *Store) AddActionItem(desireID, text string, position *int) (models.ActionItem, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.ActionItem{}, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM action_items WHERE desire_id = ?`, desireID).Scan(&count); err != nil {
		return models.ActionItem{}, err
	}

	pos := count
	if position != nil && *position >= 0 && *position < count {
		pos = *position
		if _, err := tx.Exec(`
			UPDATE action_items SET position = position + 1
			WHERE desire_id = ? AND position >= ?`, desireID, pos); err != nil {
			return models.ActionItem{}, err
		}
	}

	item := models.ActionItem{
		ID:        uuid.New().String(),
		DesireID:  desireID,
		Text:      text,
		Position:  pos,
		CreatedAt: s.now(),
	}

	_, err = tx.Exec(`
		INSERT INTO action_items (`+actionItemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.DesireID, item.Text, item.IsCompleted, nil, item.Position, timestamp(item.CreatedAt))
	if err != nil {
		return models.ActionItem{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.ActionItem{}, err
	}

	return item, nil
}

func (s *Store) PatchActionItem(id string, patch models.ActionItemPatch) error {
	if patch.Text == nil {
		return nil
	}

	result, err := s.db.Exec(`UPDATE action_items SET text = ? WHERE id = ?`, *patch.Text, id)
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

// ToggleActionItem flips completion, setting or clearing the completion
// timestamp to match, and returns the updated item.
func (s *Store) ToggleActionItem(id string) (models.ActionItem, error) {
	row := s.db.QueryRow(`SELECT `+actionItemColumns+` FROM action_items WHERE id = ?`, id)
	item, err := scanActionItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ActionItem{}, storage.ErrNotFound
	}
	if err != nil {
		return models.ActionItem{}, err
	}

	item.IsCompleted = !item.IsCompleted
	var completedAt sql.NullString
	if item.IsCompleted {
		t := s.now()
		item.CompletedAt = &t
		completedAt = sql.NullString{String: timestamp(t), Valid: true}
	} else {
		item.CompletedAt = nil
	}

	_, err = s.db.Exec(`
		UPDATE action_items SET is_completed = ?, completed_at = ? WHERE id = ?`,
		item.IsCompleted, completedAt, id)
	if err != nil {
		return models.ActionItem{}, err
	}

	return item, nil
}

// DeleteActionItem removes the item and renumbers the remaining ones for its
// desire to a dense 0..n-1 sequence, all in one transaction.
func (s *Store) DeleteActionItem(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var desireID string
	err = tx.QueryRow(`SELECT desire_id FROM action_items WHERE id = ?`, id).Scan(&desireID)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM action_items WHERE id = ?`, id); err != nil {
		return err
	}

	if err := renumberActionItemsTx(tx, desireID); err != nil {
		return err
	}

	return tx.Commit()
}

// renumberActionItemsTx reassigns dense 0..n-1 positions in the current
// position order, creation time breaking ties.
func renumberActionItemsTx(tx *sql.Tx, desireID string) error {
	rows, err := tx.Query(`
		SELECT id FROM action_items
		WHERE desire_id = ?
		ORDER BY position, created_at`, desireID)
	if err != nil {
		return err
	}

	var ids []string
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, itemID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for i, itemID := range ids {
		if _, err := tx.Exec(`UPDATE action_items SET position = ? WHERE id = ?`, i, itemID); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) DeleteActionItemsForDesire(desireID string) error {
	_, err := s.db.Exec(`DELETE FROM action_items WHERE desire_id = ?`, desireID)
	return err
}

// ReorderActionItems reassigns positions by the order of the given id list.
// The list must name every item of the desire exactly once.
func (s *Store) ReorderActionItems(desireID string, orderedIDs []string) error {
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if seen[id] {
			return fmt.Errorf("duplicate action item id %s in reorder list", id)
		}
		seen[id] = true
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM action_items WHERE desire_id = ?`, desireID).Scan(&count); err != nil {
		return err
	}
	if count != len(orderedIDs) {
		return fmt.Errorf("reorder list has %d ids but desire has %d action items", len(orderedIDs), count)
	}

	for i, id := range orderedIDs {
		result, err := tx.Exec(`
			UPDATE action_items SET position = ? WHERE id = ? AND desire_id = ?`,
			i, id, desireID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("action item %s does not belong to desire %s", id, desireID)
		}
	}

	return tx.Commit()
}

// AllActionItemsCompleted reports whether the desire has at least one item
// and every item is completed. An empty checklist is not "all completed".
func (s *Store) AllActionItemsCompleted(desireID string) (bool, error) {
	var total, completed int
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(is_completed), 0)
		FROM action_items WHERE desire_id = ?`, desireID).Scan(&total, &completed)
	if err != nil {
		return false, err
	}
	return total > 0 && completed == total, nil
}

func (s *Store) GetActionItems(desireID string) ([]models.ActionItem, error) {
	rows, err := s.db.Query(`
		SELECT `+actionItemColumns+`
		FROM action_items WHERE desire_id = ?
		ORDER BY position`, desireID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ActionItem
	for rows.Next() {
		item, err := scanActionItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
