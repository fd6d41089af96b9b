package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifeos/internal/calendar"
)

type ProposeCmd struct {
	Week  string `help:"Any date inside the target week (YYYY-MM-DD)." default:"today"`
	Apply bool   `help:"Book the proposed sessions on the calendar."`
}

func (c *ProposeCmd) Run(ctx *Context) error {
	ref, err := parseDateArg(ctx, c.Week)
	if err != nil {
		return err
	}
	weekStart, weekEnd := ctx.Scheduler.WeekBounds(ref)

	events, err := ctx.Calendar.ListEvents(context.Background(), weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to read calendar: %w", err)
	}

	proposal := ctx.Scheduler.ProposeSchedule(weekStart, events)
	fmt.Print(ctx.Scheduler.FormatProposal(proposal))

	if !c.Apply {
		if len(proposal.Events) > 0 {
			fmt.Println(dimStyle.Render("\nRun with --apply to book these sessions."))
		}
		return nil
	}

	created, err := calendar.ApplyProposal(context.Background(), ctx.Calendar, ctx.Config, proposal)
	if err != nil {
		return fmt.Errorf("booked %d of %d sessions: %w", len(created), len(proposal.Events), err)
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("\nBooked %d sessions.", len(created))))
	return nil
}
