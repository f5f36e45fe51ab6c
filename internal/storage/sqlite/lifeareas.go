package sqlite

import (
	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
	"github.com/wellandco/wishwell/internal/validation"
)

// GetLifeAreas returns the 8 fixed rating rows in display order.
func (s *Store) GetLifeAreas() ([]models.LifeAreaRating, error) {
	rows, err := s.db.Query(`SELECT id, score FROM life_areas`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[models.LifeArea]int, len(models.AllLifeAreas))
	for rows.Next() {
		var area models.LifeArea
		var score int
		if err := rows.Scan(&area, &score); err != nil {
			return nil, err
		}
		scores[area] = score
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ratings := make([]models.LifeAreaRating, 0, len(models.AllLifeAreas))
	for _, area := range models.AllLifeAreas {
		ratings = append(ratings, models.LifeAreaRating{Area: area, Score: scores[area]})
	}

	return ratings, nil
}

// SetLifeAreaScore updates one fixed area row. The score is clamped to the
// valid range here, not left to the caller.
func (s *Store) SetLifeAreaScore(area models.LifeArea, score int) (models.LifeAreaRating, error) {
	if err := validation.ValidateArea(area); err != nil {
		return models.LifeAreaRating{}, err
	}
	score = validation.ClampScore(score)

	result, err := s.db.Exec(`UPDATE life_areas SET score = ? WHERE id = ?`, score, string(area))
	if err != nil {
		return models.LifeAreaRating{}, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return models.LifeAreaRating{}, err
	}
	if rows == 0 {
		return models.LifeAreaRating{}, storage.ErrNotFound
	}

	return models.LifeAreaRating{Area: area, Score: score}, nil
}
