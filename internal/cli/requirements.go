package cli

import "fmt"

type RequirementsCmd struct{}

func (c *RequirementsCmd) Run(ctx *Context) error {
	requirements := ctx.Scheduler.CalculateWeeklyRequirements()

	fmt.Println(titleStyle.Render("Weekly requirements"))
	fmt.Println()

	for _, act := range ctx.Config.Activities {
		req, ok := requirements[act.ID]
		if !ok {
			continue
		}

		sessions := fmt.Sprintf("%d", req.MinSessions)
		if req.MaxSessions != req.MinSessions {
			sessions = fmt.Sprintf("%d-%d", req.MinSessions, req.MaxSessions)
		}
		duration := fmt.Sprintf("%d", req.MinDuration)
		if req.MaxDuration != req.MinDuration {
			duration = fmt.Sprintf("%d-%d", req.MinDuration, req.MaxDuration)
		}

		fmt.Printf("%-24s %8s sessions  %9s min/session  %s\n",
			act.Name, sessions, duration,
			dimStyle.Render(fmt.Sprintf("[%s, %d-%d min/week]", req.Priority, req.TotalMinMinutes, req.TotalMaxMinutes)))
	}
	return nil
}
