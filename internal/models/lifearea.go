package models

// LifeArea is one of the 8 fixed categories a desire can be tagged with and
// that the user rates 0-10 on the balance chart.
type LifeArea string

const (
	LifeAreaNone    LifeArea = ""
	LifeAreaHealth  LifeArea = "health"
	LifeAreaLove    LifeArea = "love"
	LifeAreaGrowth  LifeArea = "growth"
	LifeAreaFamily  LifeArea = "family"
	LifeAreaHome    LifeArea = "home"
	LifeAreaWork    LifeArea = "work"
	LifeAreaHobby   LifeArea = "hobby"
	LifeAreaFinance LifeArea = "finance"
)

// AllLifeAreas lists the fixed areas in display order.
var AllLifeAreas = []LifeArea{
	LifeAreaHealth,
	LifeAreaLove,
	LifeAreaGrowth,
	LifeAreaFamily,
	LifeAreaHome,
	LifeAreaWork,
	LifeAreaHobby,
	LifeAreaFinance,
}

// IsValid reports whether the area is one of the 8 fixed keys.
// LifeAreaNone is not a valid rating key.
func (a LifeArea) IsValid() bool {
	for _, known := range AllLifeAreas {
		if a == known {
			return true
		}
	}
	return false
}

// LifeAreaRating is the current 0-10 score for one fixed area. Exactly one
// row exists per area; rows are seeded at migration time and only ever
// updated.
type LifeAreaRating struct {
	Area  LifeArea `json:"id"`
	Score int      `json:"score"`
}
