package cli

import (
	"fmt"
)

type FeedbackAddCmd struct {
	Text   string `arg:"" help:"Feedback text."`
	Rating *int   `help:"Optional rating from 1 to 5."`
}

func (c *FeedbackAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.AddFeedback(c.Text, c.Rating); err != nil {
		return err
	}

	fmt.Println("Thanks for the feedback!")
	return nil
}

type FeedbackListCmd struct{}

func (c *FeedbackListCmd) Run(ctx *Context) error {
	feedbacks, err := ctx.Store.GetAllFeedbacks()
	if err != nil {
		return err
	}

	if len(feedbacks) == 0 {
		fmt.Println("No feedback recorded.")
		return nil
	}

	for _, fb := range feedbacks {
		rating := ""
		if fb.Rating != nil {
			rating = fmt.Sprintf(" (%d/5)", *fb.Rating)
		}
		fmt.Printf("%s%s  %s  %s\n", fb.CreatedAt.Format("2006-01-02"), rating, fb.Text, mutedStyle.Render(fb.ID))
	}

	return nil
}

type FeedbackDeleteCmd struct {
	ID string `arg:"" help:"Feedback id."`
}

func (c *FeedbackDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteFeedback(c.ID); err != nil {
		return err
	}

	fmt.Println("Deleted feedback.")
	return nil
}
