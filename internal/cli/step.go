package cli

import (
	"fmt"
	"strings"

	"github.com/wellandco/wishwell/internal/models"
)

type StepAddCmd struct {
	Desire   string `arg:"" help:"Desire id or title."`
	Text     string `arg:"" help:"Step text."`
	Position *int   `help:"Insert at this position (0-based); appends by default."`
}

func (c *StepAddCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	item, err := ctx.Store.AddActionItem(d.ID, c.Text, c.Position)
	if err != nil {
		return err
	}

	fmt.Printf("Added step %d: %s\n", item.Position, item.Text)
	return nil
}

type StepListCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
}

func (c *StepListCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	items, err := ctx.Store.GetActionItems(d.ID)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No steps found.")
		return nil
	}

	for _, item := range items {
		status := "[ ]"
		text := item.Text
		if item.IsCompleted {
			status = "[x]"
			text = completedStyle.Render(text)
		}
		fmt.Printf("%2d %s %s  %s\n", item.Position, status, text, mutedStyle.Render(item.ID))
	}

	done, err := ctx.Store.AllActionItemsCompleted(d.ID)
	if err != nil {
		return err
	}
	if done {
		fmt.Println(markStyle.Render("\nAll steps completed!"))
	}

	return nil
}

type StepToggleCmd struct {
	ID string `arg:"" help:"Step id."`
}

func (c *StepToggleCmd) Run(ctx *Context) error {
	item, err := ctx.Store.ToggleActionItem(c.ID)
	if err != nil {
		return err
	}

	if item.IsCompleted {
		fmt.Printf("%s %s\n", markStyle.Render("✓"), item.Text)
	} else {
		fmt.Printf("Reopened: %s\n", item.Text)
	}
	return nil
}

type StepEditCmd struct {
	ID   string `arg:"" help:"Step id."`
	Text string `arg:"" help:"New step text."`
}

func (c *StepEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.PatchActionItem(c.ID, models.ActionItemPatch{Text: &c.Text}); err != nil {
		return err
	}

	fmt.Println("Updated step.")
	return nil
}

type StepDeleteCmd struct {
	ID string `arg:"" help:"Step id."`
}

func (c *StepDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteActionItem(c.ID); err != nil {
		return err
	}

	fmt.Println("Deleted step; remaining steps renumbered.")
	return nil
}

type StepClearCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
}

func (c *StepClearCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteActionItemsForDesire(d.ID); err != nil {
		return err
	}

	fmt.Printf("Cleared all steps for %q.\n", d.Title)
	return nil
}

type StepReorderCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
	IDs    string `arg:"" help:"Comma-separated step ids in the new order."`
}

func (c *StepReorderCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	var ids []string
	for _, id := range strings.Split(c.IDs, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}

	if err := ctx.Store.ReorderActionItems(d.ID, ids); err != nil {
		return err
	}

	fmt.Println("Steps reordered.")
	return nil
}
