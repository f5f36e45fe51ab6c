package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wellandco/wishwell/internal/constants"
	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
	"github.com/wellandco/wishwell/internal/utils"
)

const contactColumns = `id, desire_id, day, type, text, created_at, updated_at`

func scanContact(row desireScanner) (models.Contact, error) {
	var c models.Contact
	var createdAt string
	var updatedAt sql.NullString

	err := row.Scan(&c.ID, &c.DesireID, &c.Day, &c.Type, &c.Text, &createdAt, &updatedAt)
	if err != nil {
		return models.Contact{}, err
	}

	c.CreatedAt, err = parseTimestamp("created_at", createdAt)
	if err != nil {
		return models.Contact{}, err
	}
	if updatedAt.Valid {
		t, err := parseTimestamp("updated_at", updatedAt.String)
		if err != nil {
			return models.Contact{}, err
		}
		c.UpdatedAt = &t
	}

	return c, nil
}

func (s *Store) GetTodayContact(desireID string, ctype models.ContactType) (models.Contact, error) {
	ctype = ctype.Normalize()
	today := utils.DayString(s.now())

	row := s.db.QueryRow(`
		SELECT `+contactColumns+`
		FROM contacts WHERE desire_id = ? AND day = ? AND type = ?`,
		desireID, today, ctype)

	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, storage.ErrNotFound
	}
	return c, err
}

// UpsertTodayContact records today's touchpoint of the given type, keyed by
// (desire, day, type): repeating the call updates the text in place. Before
// the focus cutoff hour the owning desire also becomes today's focus, through
// the same single-focus sequence SetFocusDesire uses, all in one transaction.
func (s *Store) UpsertTodayContact(desireID string, ctype models.ContactType, text string) (models.Contact, error) {
	ctype = ctype.Normalize()
	now := s.now()
	today := utils.DayString(now)

	tx, err := s.db.Begin()
	if err != nil {
		return models.Contact{}, err
	}
	defer tx.Rollback()

	var isCompleted bool
	err = tx.QueryRow(`SELECT is_completed FROM desires WHERE id = ?`, desireID).Scan(&isCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Contact{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO contacts (id, desire_id, day, type, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(desire_id, day, type) DO UPDATE SET
			text = excluded.text,
			updated_at = excluded.created_at`,
		uuid.New().String(), desireID, today, ctype, text, timestamp(now))
	if err != nil {
		return models.Contact{}, err
	}

	if now.Hour() < constants.FocusCutoffHour && !isCompleted {
		if err := setFocusTx(tx, desireID); err != nil {
			return models.Contact{}, err
		}
	}

	row := tx.QueryRow(`
		SELECT `+contactColumns+`
		FROM contacts WHERE desire_id = ? AND day = ? AND type = ?`,
		desireID, today, ctype)
	c, err := scanContact(row)
	if err != nil {
		return models.Contact{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Contact{}, err
	}

	return c, nil
}

// DeleteContact is a hard delete with no cascade.
func (s *Store) DeleteContact(id string) error {
	result, err := s.db.Exec(`DELETE FROM contacts WHERE id = ?`, id)
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

func (s *Store) GetContacts(desireID string) ([]models.Contact, error) {
	return s.queryContacts(`
		SELECT `+contactColumns+`
		FROM contacts WHERE desire_id = ?
		ORDER BY created_at DESC`, desireID)
}

func (s *Store) GetContactsByType(desireID string, ctype models.ContactType) ([]models.Contact, error) {
	return s.queryContacts(`
		SELECT `+contactColumns+`
		FROM contacts WHERE desire_id = ? AND type = ?
		ORDER BY created_at DESC`, desireID, string(ctype.Normalize()))
}

func (s *Store) queryContacts(query string, args ...any) ([]models.Contact, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// ContactDaysLastWeek counts distinct days in the trailing 7-day window with
// at least one contact of the given type.
func (s *Store) ContactDaysLastWeek(desireID string, ctype models.ContactType) (int, error) {
	window := utils.WeekWindow(s.now())

	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(DISTINCT day)
		FROM contacts
		WHERE desire_id = ? AND type = ? AND day >= ? AND day <= ?`,
		desireID, string(ctype.Normalize()), window[0], window[len(window)-1]).Scan(&count)
	return count, err
}

// TotalContactDaysLastWeek counts distinct days in the trailing 7-day window
// with at least one contact of any type.
func (s *Store) TotalContactDaysLastWeek(desireID string) (int, error) {
	window := utils.WeekWindow(s.now())

	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(DISTINCT day)
		FROM contacts
		WHERE desire_id = ? AND day >= ? AND day <= ?`,
		desireID, window[0], window[len(window)-1]).Scan(&count)
	return count, err
}

// WeekSummary returns the trailing 7 calendar days, oldest first, each with
// the distinct set of contact types recorded on it. Days without activity
// contribute an empty type set, so the result always has exactly 7 entries
// and ends at today. One bounded range scan over the (desire_id, day) index.
func (s *Store) WeekSummary(desireID string) ([]models.DaySummary, error) {
	window := utils.WeekWindow(s.now())

	rows, err := s.db.Query(`
		SELECT DISTINCT day, type
		FROM contacts
		WHERE desire_id = ? AND day >= ? AND day <= ?
		ORDER BY day`,
		desireID, window[0], window[len(window)-1])
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	typesByDay := make(map[string]map[models.ContactType]bool)
	for rows.Next() {
		var day string
		var ctype models.ContactType
		if err := rows.Scan(&day, &ctype); err != nil {
			return nil, err
		}
		if typesByDay[day] == nil {
			typesByDay[day] = make(map[models.ContactType]bool)
		}
		typesByDay[day][ctype.Normalize()] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summary := make([]models.DaySummary, 0, len(window))
	for _, day := range window {
		entry := models.DaySummary{Day: day, Types: []models.ContactType{}}
		for _, ctype := range models.AllContactTypes {
			if typesByDay[day][ctype] {
				entry.Types = append(entry.Types, ctype)
			}
		}
		summary = append(summary, entry)
	}

	return summary, nil
}

// ContactStatistics returns all-time counts per canonical type.
func (s *Store) ContactStatistics(desireID string) (models.ContactStats, error) {
	rows, err := s.db.Query(`
		SELECT type, COUNT(*)
		FROM contacts
		WHERE desire_id = ?
		GROUP BY type`, desireID)
	if err != nil {
		return models.ContactStats{}, err
	}
	defer rows.Close()

	var stats models.ContactStats
	for rows.Next() {
		var ctype models.ContactType
		var count int
		if err := rows.Scan(&ctype, &count); err != nil {
			return models.ContactStats{}, err
		}
		switch ctype.Normalize() {
		case models.ContactEntry:
			stats.EntryCount += count
		case models.ContactThought:
			stats.ThoughtCount += count
		case models.ContactStep:
			stats.StepCount += count
		default:
			return models.ContactStats{}, fmt.Errorf("unexpected contact type in store: %q", ctype)
		}
	}

	return stats, rows.Err()
}
