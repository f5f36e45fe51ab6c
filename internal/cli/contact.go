package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
	"github.com/wellandco/wishwell/internal/utils"
)

type JotCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
	Text   string `arg:"" optional:"" help:"Contact text."`
	Type   string `help:"Contact type (entry|thought|step). The legacy 'note' spelling is accepted." default:"entry"`
}

func (c *JotCmd) Run(ctx *Context) error {
	ctype, err := models.ParseContactType(c.Type)
	if err != nil {
		return err
	}

	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	contact, err := ctx.Store.UpsertTodayContact(d.ID, ctype, c.Text)
	if err != nil {
		return err
	}

	verb := "Recorded"
	if contact.UpdatedAt != nil {
		verb = "Updated"
	}
	fmt.Printf("%s %s for %q (%s)\n", verb, ctype, d.Title, contact.Day)
	return nil
}

type WeekCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	summary, err := ctx.Store.WeekSummary(d.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Last 7 days for %q:\n\n", d.Title)

	// Header row of dates
	fmt.Print("        ")
	for _, day := range summary {
		t, err := utils.ParseDay(day.Day)
		if err != nil {
			return err
		}
		fmt.Printf(" %5s", t.Format("01/02"))
	}
	fmt.Println()
	fmt.Println(mutedStyle.Render("--------" + strings.Repeat("------", len(summary))))

	for _, ctype := range models.AllContactTypes {
		fmt.Printf("%-8s", ctype)
		for _, day := range summary {
			mark := "  .   "
			for _, recorded := range day.Types {
				if recorded == ctype {
					mark = markStyle.Render("  x   ")
					break
				}
			}
			fmt.Print(mark)
		}
		fmt.Println()
	}

	total, err := ctx.Store.TotalContactDaysLastWeek(d.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\nActive days: %d/7\n", total)

	return nil
}

type StatsCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	stats, err := ctx.Store.ContactStatistics(d.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics for %q:\n", d.Title)
	fmt.Printf("  Entries:  %d\n", stats.EntryCount)
	fmt.Printf("  Thoughts: %d\n", stats.ThoughtCount)
	fmt.Printf("  Steps:    %d\n", stats.StepCount)

	for _, ctype := range models.AllContactTypes {
		days, err := ctx.Store.ContactDaysLastWeek(d.ID, ctype)
		if err != nil {
			return err
		}
		fmt.Printf("  %s days this week: %d/7\n", ctype, days)
	}

	return nil
}

type LogCmd struct {
	Desire string `arg:"" help:"Desire id or title."`
	Type   string `help:"Filter by contact type (entry|thought|step)."`
}

func (c *LogCmd) Run(ctx *Context) error {
	d, err := ctx.ResolveDesire(c.Desire)
	if err != nil {
		return err
	}

	var contacts []models.Contact
	if c.Type != "" {
		ctype, err := models.ParseContactType(c.Type)
		if err != nil {
			return err
		}
		contacts, err = ctx.Store.GetContactsByType(d.ID, ctype)
		if err != nil {
			return err
		}
	} else {
		contacts, err = ctx.Store.GetContacts(d.ID)
		if err != nil {
			return err
		}
	}

	if len(contacts) == 0 {
		fmt.Println("No contacts recorded.")
		return nil
	}

	for _, contact := range contacts {
		text := contact.Text
		if text == "" {
			text = mutedStyle.Render("(no text)")
		}
		fmt.Printf("%s  %-8s %s\n", contact.Day, contact.Type, text)
	}

	return nil
}

type ContactDeleteCmd struct {
	ID string `arg:"" help:"Contact id."`
}

func (c *ContactDeleteCmd) Run(ctx *Context) error {
	err := ctx.Store.DeleteContact(c.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("contact %q not found", c.ID)
	}
	if err != nil {
		return err
	}

	fmt.Println("Deleted contact.")
	return nil
}
