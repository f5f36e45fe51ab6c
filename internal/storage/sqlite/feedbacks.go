package sqlite

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
	"github.com/wellandco/wishwell/internal/validation"
)

func (s *Store) AddFeedback(text string, rating *int) (models.Feedback, error) {
	if err := validation.ValidateFeedbackRating(rating); err != nil {
		return models.Feedback{}, err
	}

	fb := models.Feedback{
		ID:        uuid.New().String(),
		Text:      text,
		Rating:    rating,
		CreatedAt: s.now(),
	}

	var ratingArg sql.NullInt64
	if rating != nil {
		ratingArg = sql.NullInt64{Int64: int64(*rating), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO feedbacks (id, text, rating, created_at)
		VALUES (?, ?, ?, ?)`,
		fb.ID, fb.Text, ratingArg, timestamp(fb.CreatedAt))
	if err != nil {
		return models.Feedback{}, err
	}

	return fb, nil
}

func (s *Store) GetAllFeedbacks() ([]models.Feedback, error) {
	rows, err := s.db.Query(`
		SELECT id, text, rating, created_at
		FROM feedbacks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []models.Feedback
	for rows.Next() {
		var fb models.Feedback
		var rating sql.NullInt64
		var createdAt string

		if err := rows.Scan(&fb.ID, &fb.Text, &rating, &createdAt); err != nil {
			return nil, err
		}
		if rating.Valid {
			r := int(rating.Int64)
			fb.Rating = &r
		}
		fb.CreatedAt, err = parseTimestamp("created_at", createdAt)
		if err != nil {
			return nil, err
		}

		feedbacks = append(feedbacks, fb)
	}

	return feedbacks, rows.Err()
}

func (s *Store) DeleteFeedback(id string) error {
	result, err := s.db.Exec(`DELETE FROM feedbacks WHERE id = ?`, id)
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
