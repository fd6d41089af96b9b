package cli

import (
	"context"
	"fmt"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	day, err := parseDateArg(ctx, c.Date)
	if err != nil {
		return err
	}
	end := day.AddDate(0, 0, 1)

	events, err := ctx.Calendar.ListEvents(context.Background(), day, end)
	if err != nil {
		return fmt.Errorf("failed to read calendar: %w", err)
	}
	busy := append(events, ctx.Scheduler.TemplateEvents(day, end)...)

	timeline := ctx.Scheduler.DaySchedule(busy, day)
	fmt.Print(ctx.Scheduler.FormatDaySchedule(timeline, day))
	return nil
}
