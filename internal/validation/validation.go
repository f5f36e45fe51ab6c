package validation

import (
	"fmt"

	"github.com/wellandco/wishwell/internal/constants"
	"github.com/wellandco/wishwell/internal/models"
)

// ClampScore bounds a life-area score to the valid range.
func ClampScore(score int) int {
	if score < constants.MinAreaScore {
		return constants.MinAreaScore
	}
	if score > constants.MaxAreaScore {
		return constants.MaxAreaScore
	}
	return score
}

// ValidateArea checks that the area is one of the 8 fixed keys.
func ValidateArea(area models.LifeArea) error {
	if !area.IsValid() {
		return fmt.Errorf("unknown life area: %q", area)
	}
	return nil
}

// ValidateFeedbackRating checks an optional 1-5 rating.
func ValidateFeedbackRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < constants.MinFeedbackRating || *rating > constants.MaxFeedbackRating {
		return fmt.Errorf("rating must be between %d and %d", constants.MinFeedbackRating, constants.MaxFeedbackRating)
	}
	return nil
}

// ValidateSnapshot checks an import document before any destructive step is
// taken. Desires is the only required collection; everything else is
// tolerated as absent. Contact types must parse (the legacy "note" spelling
// is accepted) and referenced areas must be known.
func ValidateSnapshot(snap models.Snapshot) error {
	if snap.Version > constants.SnapshotFormatVersion {
		return fmt.Errorf("unsupported snapshot version %d (latest supported is %d)", snap.Version, constants.SnapshotFormatVersion)
	}
	if snap.Desires == nil {
		return fmt.Errorf("invalid snapshot: missing desires array")
	}
	for _, d := range snap.Desires {
		if d.ID == "" {
			return fmt.Errorf("invalid snapshot: desire with empty id")
		}
		if d.Area != models.LifeAreaNone && !d.Area.IsValid() {
			return fmt.Errorf("invalid snapshot: desire %s has unknown area %q", d.ID, d.Area)
		}
	}
	for _, c := range snap.Contacts {
		if c.ID == "" || c.DesireID == "" {
			return fmt.Errorf("invalid snapshot: contact with empty id or desire id")
		}
		if _, err := models.ParseContactType(string(c.Type)); err != nil {
			return fmt.Errorf("invalid snapshot: contact %s: %w", c.ID, err)
		}
	}
	for _, r := range snap.LifeAreas {
		if err := ValidateArea(r.Area); err != nil {
			return fmt.Errorf("invalid snapshot: %w", err)
		}
	}
	for _, f := range snap.Feedbacks {
		if err := ValidateFeedbackRating(f.Rating); err != nil {
			return fmt.Errorf("invalid snapshot: feedback %s: %w", f.ID, err)
		}
	}
	return nil
}
