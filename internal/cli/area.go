package cli

import (
	"fmt"
	"strings"

	"github.com/wellandco/wishwell/internal/constants"
	"github.com/wellandco/wishwell/internal/models"
)

type AreaListCmd struct{}

func (c *AreaListCmd) Run(ctx *Context) error {
	ratings, err := ctx.Store.GetLifeAreas()
	if err != nil {
		return err
	}

	counts, err := ctx.Store.CountDesiresByArea(models.AllLifeAreas)
	if err != nil {
		return err
	}

	fmt.Println("Life balance:")
	for _, r := range ratings {
		bar := barStyle.Render(strings.Repeat("█", r.Score)) +
			mutedStyle.Render(strings.Repeat("░", constants.MaxAreaScore-r.Score))
		fmt.Printf("%-8s %s %2d/%d", r.Area, bar, r.Score, constants.MaxAreaScore)
		if n := counts[r.Area]; n > 0 {
			fmt.Printf("  %s", areaTagStyle.Render(fmt.Sprintf("%d desire(s)", n)))
		}
		fmt.Println()
	}

	return nil
}

type AreaRateCmd struct {
	Area  string `arg:"" help:"Life area (health|love|growth|family|home|work|hobby|finance)."`
	Score int    `arg:"" help:"Score from 0 to 10."`
}

func (c *AreaRateCmd) Run(ctx *Context) error {
	rating, err := ctx.Store.SetLifeAreaScore(models.LifeArea(c.Area), c.Score)
	if err != nil {
		return err
	}

	fmt.Printf("Rated %s: %d/%d\n", rating.Area, rating.Score, constants.MaxAreaScore)
	return nil
}
