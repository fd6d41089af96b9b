package cli

import (
	"context"
	"fmt"
)

type AnalyzeCmd struct {
	Week string `help:"Any date inside the target week (YYYY-MM-DD)." default:"today"`
}

func (c *AnalyzeCmd) Run(ctx *Context) error {
	ref, err := parseDateArg(ctx, c.Week)
	if err != nil {
		return err
	}
	weekStart, weekEnd := ctx.Scheduler.WeekBounds(ref)

	events, err := ctx.Calendar.ListEvents(context.Background(), weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to read calendar: %w", err)
	}
	coverage := ctx.Scheduler.AnalyzeScheduledVsRequired(events, weekStart)

	fmt.Println(titleStyle.Render("Week of " + weekStart.Format("January 2, 2006")))
	fmt.Println()

	for _, act := range ctx.Config.Activities {
		cov, ok := coverage[act.ID]
		if !ok {
			continue
		}

		line := fmt.Sprintf("%-24s %d/%d sessions, %d min", act.Name,
			cov.ScheduledSessions, cov.MinSessions, cov.ScheduledMinutes)
		switch {
		case cov.OnTrack && cov.SessionsSurplus > 0:
			fmt.Println(okStyle.Render("✓ "+line) + dimStyle.Render(fmt.Sprintf("  (+%d extra)", cov.SessionsSurplus)))
		case cov.OnTrack:
			fmt.Println(okStyle.Render("✓ " + line))
		default:
			fmt.Println(warnStyle.Render("✗ "+line) + dimStyle.Render(fmt.Sprintf("  (%d sessions, %d min short)",
				cov.SessionsDeficit, cov.MinutesDeficit)))
		}
	}
	return nil
}
