package calendar

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/logger"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/scheduler"
)

// ApplyProposal realizes every session of a proposal as a calendar event,
// titled per the configured event format and tagged with the activity id so
// later coverage analysis matches it without the name heuristic. Returns the
// created events.
func ApplyProposal(ctx context.Context, client Client, cfg *config.Config, p *scheduler.Proposal) ([]models.Event, error) {
	created := make([]models.Event, 0, len(p.Events))

	for _, pe := range p.Events {
		title := cfg.EventFormat.Prefix + pe.Activity.Name
		if cfg.EventFormat.IncludeCategory && pe.Activity.Category != "" {
			title = fmt.Sprintf("%s [%s]", title, pe.Activity.Category)
		}

		description := fmt.Sprintf("Scheduled activity\nCategory: %s\nActivity ID: %s", pe.Activity.Category, pe.Activity.ID)
		if pe.Activity.Note != "" {
			description += "\n\nNote: " + pe.Activity.Note
		}

		ev, err := client.CreateEvent(ctx, models.Event{
			Title:       title,
			Description: description,
			Start:       pe.Start,
			End:         pe.End,
			ActivityID:  pe.Activity.ID,
			Location:    pe.Activity.Location,
			Source:      "lifeos",
		})
		if err != nil {
			// Keep whatever was created; the residual deficit shows up in the
			// next analysis.
			return created, fmt.Errorf("failed to book %s at %s: %w", pe.Activity.Name, pe.Start.Format("Mon 15:04"), err)
		}
		logger.Info("booked proposed session", "activity", pe.Activity.ID, "start", pe.Start)
		created = append(created, ev)
	}

	return created, nil
}
