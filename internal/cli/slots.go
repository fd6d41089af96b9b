package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifeos/internal/constants"
)

type SlotsCmd struct {
	Date string `help:"First day to search (YYYY-MM-DD or 'today')." default:"today"`
	Days int    `help:"Number of days to search." default:"7"`
	Min  int    `help:"Minimum slot length in minutes." default:"15"`
}

func (c *SlotsCmd) Run(ctx *Context) error {
	start, err := parseDateArg(ctx, c.Date)
	if err != nil {
		return err
	}
	if c.Days <= 0 {
		c.Days = constants.DefaultSearchDays
	}
	if c.Min <= 0 {
		c.Min = constants.DefaultMinSlotMinutes
	}
	end := start.AddDate(0, 0, c.Days)

	events, err := ctx.Calendar.ListEvents(context.Background(), start, end)
	if err != nil {
		return fmt.Errorf("failed to read calendar: %w", err)
	}
	busy := append(events, ctx.Scheduler.TemplateEvents(start, end)...)
	slots := ctx.Scheduler.AvailableSlots(busy, start, end, c.Min)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Free slots from %s (%d days, ≥%d min)",
		start.Format(constants.DateFormat), c.Days, c.Min)))
	fmt.Println()

	if len(slots) == 0 {
		fmt.Println("  No free slots found")
		return nil
	}

	lastDay := ""
	for _, slot := range slots {
		day := slot.Start.Format("Monday Jan 2")
		if day != lastDay {
			fmt.Printf("%s:\n", day)
			lastDay = day
		}
		fmt.Printf("  %s-%s  %s\n",
			slot.Start.Format(constants.TimeFormat),
			slot.End.Format(constants.TimeFormat),
			dimStyle.Render(fmt.Sprintf("(%d min)", slot.DurationMinutes())))
	}
	return nil
}
