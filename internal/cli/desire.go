package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
)

type DesireAddCmd struct {
	Title       string `arg:"" help:"Desire title."`
	Description string `help:"Why this desire matters." default:""`
	Details     string `help:"Long-form details."`
	Area        string `help:"Life area tag (health|love|growth|family|home|work|hobby|finance)."`
}

func (c *DesireAddCmd) Run(ctx *Context) error {
	desire := models.Desire{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Images:      []models.Image{},
		CreatedAt:   time.Now(),
	}
	if c.Details != "" {
		desire.Details = &c.Details
	}
	if c.Area != "" {
		area := models.LifeArea(c.Area)
		if !area.IsValid() {
			return fmt.Errorf("unknown life area: %q", c.Area)
		}
		desire.Area = area
	}

	if err := ctx.Store.AddDesire(desire); err != nil {
		return err
	}

	fmt.Printf("Added desire: %s\n", c.Title)
	return nil
}

type DesireListCmd struct {
	All bool `help:"Include completed desires."`
}

func (c *DesireListCmd) Run(ctx *Context) error {
	desires, err := ctx.Store.GetAllDesires(c.All)
	if err != nil {
		return err
	}

	if len(desires) == 0 {
		fmt.Println("No desires found.")
		return nil
	}

	for _, d := range desires {
		line := d.Title
		switch {
		case d.IsCompleted:
			line = completedStyle.Render(line) + mutedStyle.Render(" [DONE]")
		case d.IsActive:
			line = focusStyle.Render("★ " + line)
		}
		if d.Area != models.LifeAreaNone {
			line += " " + areaTagStyle.Render("#"+string(d.Area))
		}
		fmt.Println(line)
	}

	return nil
}

type DesireShowCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
}

func (c *DesireShowCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	fmt.Printf("Title:       %s\n", d.Title)
	fmt.Printf("ID:          %s\n", d.ID)
	if d.Description != "" {
		fmt.Printf("Why:         %s\n", d.Description)
	}
	if d.Details != nil {
		fmt.Printf("Details:     %s\n", *d.Details)
	}
	if d.Area != models.LifeAreaNone {
		fmt.Printf("Area:        %s\n", d.Area)
	}
	fmt.Printf("Focus:       %v\n", d.IsActive)
	fmt.Printf("Completed:   %v\n", d.IsCompleted)
	if d.CompletedAt != nil {
		fmt.Printf("CompletedAt: %s\n", d.CompletedAt.Format(time.RFC3339))
	}
	fmt.Printf("Created:     %s\n", d.CreatedAt.Format(time.RFC3339))
	if len(d.Images) > 0 {
		fmt.Printf("Images:      %d\n", len(d.Images))
	}

	stats, err := ctx.Store.ContactStatistics(d.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Contacts:    %d entries, %d thoughts, %d steps\n",
		stats.EntryCount, stats.ThoughtCount, stats.StepCount)

	return nil
}

type DesireEditCmd struct {
	Desire      string  `arg:"" help:"Desire id or title."`
	Title       *string `help:"New title."`
	Description *string `help:"New description."`
	Details     *string `help:"New long-form details."`
	Area        *string `help:"New life area tag; pass an empty string to clear."`
}

func (c *DesireEditCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	patch := models.DesirePatch{
		Title:       c.Title,
		Description: c.Description,
		Details:     c.Details,
	}
	if c.Area != nil {
		area := models.LifeArea(*c.Area)
		patch.Area = &area
	}

	if err := ctx.Store.PatchDesire(d.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated desire: %s\n", d.Title)
	return nil
}

type DesireCompleteCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
}

func (c *DesireCompleteCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	if err := ctx.Store.MarkDesireCompleted(d.ID); err != nil {
		return err
	}

	fmt.Printf("%s Completed: %s\n", markStyle.Render("✓"), d.Title)
	return nil
}

type DesireFocusCmd struct {
	Desire string `arg:"" optional:"" help:"Desire id or title. Omit to show the current focus."`
}

func (c *DesireFocusCmd) Run(ctx *Context) error {
	if c.Desire == "" {
		d, err := ctx.Store.GetFocusDesire()
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No desire is in focus.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(focusStyle.Render("★ " + d.Title))
		return nil
	}

	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	if err := ctx.Store.SetFocusDesire(d.ID); err != nil {
		return err
	}

	fmt.Printf("Focus set to: %s\n", d.Title)
	return nil
}

type DesireDeleteCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
}

func (c *DesireDeleteCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticSnapshot()

	if err := ctx.Store.DeleteDesire(d.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted desire %q and its contacts and steps.\n", d.Title)
	return nil
}
