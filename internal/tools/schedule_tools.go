package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/julianstephens/lifeos/internal/calendar"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/utils"
)

// ProposeScheduleArgs select the week to plan.
type ProposeScheduleArgs struct {
	Week  string `json:"week" jsonschema:"description=Any date inside the target week (YYYY-MM-DD); defaults to the current week"`
	Apply bool   `json:"apply" jsonschema:"description=Book the proposed sessions on the calendar instead of only previewing them"`
}

// AnalyzeWeekArgs select the week to analyze.
type AnalyzeWeekArgs struct {
	Week string `json:"week" jsonschema:"description=Any date inside the target week (YYYY-MM-DD); defaults to the current week"`
}

// AvailableSlotsArgs bound the slot search.
type AvailableSlotsArgs struct {
	Date       string `json:"date" jsonschema:"description=First day to search (YYYY-MM-DD); defaults to today"`
	Days       int    `json:"days" jsonschema:"description=Number of days to search,default=7"`
	MinMinutes int    `json:"min_minutes" jsonschema:"description=Minimum slot length in minutes,default=15"`
}

// RegisterScheduleTools registers the scheduling tools.
func RegisterScheduleTools(s *server.MCPServer, deps Deps) {
	s.AddTool(mcp.NewTool("propose_schedule",
		mcp.WithDescription("Propose a weekly schedule that fills each activity's session deficit using the free gaps between calendar events, work hours, sleep, and commitments. Set apply=true to book the proposed sessions."),
		mcp.WithInputSchema[ProposeScheduleArgs](),
	), wrapProposeSchedule(deps))

	s.AddTool(mcp.NewTool("analyze_week",
		mcp.WithDescription("Compare the week's scheduled events against every activity's weekly requirement and report per-activity deficits, surpluses, and on-track status."),
		mcp.WithInputSchema[AnalyzeWeekArgs](),
	), wrapAnalyzeWeek(deps))

	s.AddTool(mcp.NewTool("get_available_slots",
		mcp.WithDescription("List the free time slots over the coming days, after subtracting calendar events, work hours, sleep, and commitments."),
		mcp.WithInputSchema[AvailableSlotsArgs](),
	), wrapAvailableSlots(deps))

	s.AddTool(mcp.NewTool("weekly_requirements",
		mcp.WithDescription("Show every configured activity's weekly time requirement: sessions per week, minutes per session, and priority."),
	), wrapWeeklyRequirements(deps))

	s.AddTool(mcp.NewTool("list_activities",
		mcp.WithDescription("List the configured activities with their category, frequency, duration, and preferences."),
	), wrapListActivities(deps))
}

// weekFor resolves an optional YYYY-MM-DD argument to week bounds.
func weekFor(deps Deps, dateStr string) (time.Time, time.Time, error) {
	ref := time.Now()
	if dateStr != "" {
		parsed, err := utils.ParseDate(dateStr, deps.Scheduler.Location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		ref = parsed
	}
	start, end := deps.Scheduler.WeekBounds(ref)
	return start, end, nil
}

func wrapProposeSchedule(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ProposeScheduleArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		weekStart, weekEnd, err := weekFor(deps, args.Week)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		events, err := deps.Calendar.ListEvents(ctx, weekStart, weekEnd)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read calendar: %v", err)), nil
		}

		proposal := deps.Scheduler.ProposeSchedule(weekStart, events)
		out := deps.Scheduler.FormatProposal(proposal)

		if args.Apply {
			created, err := calendar.ApplyProposal(ctx, deps.Calendar, deps.Config, proposal)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("booked %d of %d sessions: %v", len(created), len(proposal.Events), err)), nil
			}
			out += fmt.Sprintf("\nBooked %d sessions on the calendar.\n", len(created))
		}
		return mcp.NewToolResultText(out), nil
	}
}

type coverageReport struct {
	ActivityID        string `json:"activity_id"`
	Name              string `json:"name"`
	Priority          string `json:"priority"`
	MinSessions       int    `json:"min_sessions"`
	ScheduledSessions int    `json:"scheduled_sessions"`
	ScheduledMinutes  int    `json:"scheduled_minutes"`
	SessionsDeficit   int    `json:"sessions_deficit"`
	SessionsSurplus   int    `json:"sessions_surplus"`
	MinutesDeficit    int    `json:"minutes_deficit"`
	OnTrack           bool   `json:"on_track"`
}

func wrapAnalyzeWeek(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AnalyzeWeekArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		weekStart, weekEnd, err := weekFor(deps, args.Week)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		events, err := deps.Calendar.ListEvents(ctx, weekStart, weekEnd)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read calendar: %v", err)), nil
		}

		coverage := deps.Scheduler.AnalyzeScheduledVsRequired(events, weekStart)
		reports := make([]coverageReport, 0, len(coverage))
		for _, act := range deps.Config.Activities {
			cov, ok := coverage[act.ID]
			if !ok {
				continue
			}
			reports = append(reports, coverageReport{
				ActivityID:        act.ID,
				Name:              act.Name,
				Priority:          string(cov.Priority),
				MinSessions:       cov.MinSessions,
				ScheduledSessions: cov.ScheduledSessions,
				ScheduledMinutes:  cov.ScheduledMinutes,
				SessionsDeficit:   cov.SessionsDeficit,
				SessionsSurplus:   cov.SessionsSurplus,
				MinutesDeficit:    cov.MinutesDeficit,
				OnTrack:           cov.OnTrack,
			})
		}
		return jsonResult(map[string]any{
			"week_start": weekStart.Format(constants.DateFormat),
			"coverage":   reports,
		})
	}
}

type slotReport struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Minutes int    `json:"minutes"`
}

func wrapAvailableSlots(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AvailableSlotsArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Days <= 0 {
			args.Days = constants.DefaultSearchDays
		}
		if args.MinMinutes <= 0 {
			args.MinMinutes = constants.DefaultMinSlotMinutes
		}

		loc := deps.Scheduler.Location()
		start := utils.Midnight(time.Now().In(loc))
		if args.Date != "" {
			parsed, err := utils.ParseDate(args.Date, loc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			start = parsed
		}
		end := start.AddDate(0, 0, args.Days)

		events, err := deps.Calendar.ListEvents(ctx, start, end)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read calendar: %v", err)), nil
		}
		busy := append(events, deps.Scheduler.TemplateEvents(start, end)...)
		slots := deps.Scheduler.AvailableSlots(busy, start, end, args.MinMinutes)

		reports := make([]slotReport, 0, len(slots))
		for _, slot := range slots {
			reports = append(reports, slotReport{
				Start:   slot.Start.Format(time.RFC3339),
				End:     slot.End.Format(time.RFC3339),
				Minutes: slot.DurationMinutes(),
			})
		}
		return jsonResult(map[string]any{
			"from":  start.Format(constants.DateFormat),
			"days":  args.Days,
			"slots": reports,
		})
	}
}

type requirementReport struct {
	ActivityID      string `json:"activity_id"`
	Name            string `json:"name"`
	Priority        string `json:"priority"`
	MinSessions     int    `json:"min_sessions"`
	MaxSessions     int    `json:"max_sessions"`
	MinDuration     int    `json:"min_duration_minutes"`
	MaxDuration     int    `json:"max_duration_minutes"`
	TotalMinMinutes int    `json:"total_min_minutes"`
	TotalMaxMinutes int    `json:"total_max_minutes"`
}

func wrapWeeklyRequirements(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requirements := deps.Scheduler.CalculateWeeklyRequirements()
		reports := make([]requirementReport, 0, len(requirements))
		for _, act := range deps.Config.Activities {
			req, ok := requirements[act.ID]
			if !ok {
				continue
			}
			reports = append(reports, requirementReport{
				ActivityID:      act.ID,
				Name:            act.Name,
				Priority:        string(req.Priority),
				MinSessions:     req.MinSessions,
				MaxSessions:     req.MaxSessions,
				MinDuration:     req.MinDuration,
				MaxDuration:     req.MaxDuration,
				TotalMinMinutes: req.TotalMinMinutes,
				TotalMaxMinutes: req.TotalMaxMinutes,
			})
		}
		return jsonResult(map[string]any{"requirements": reports})
	}
}

type activityReport struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Frequency   string   `json:"frequency"`
	Duration    string   `json:"duration"`
	Priority    string   `json:"priority"`
	Preferences []string `json:"preferences,omitempty"`
	Days        []string `json:"days,omitempty"`
}

func wrapListActivities(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reports := make([]activityReport, 0, len(deps.Config.Activities))
		for i := range deps.Config.Activities {
			act := &deps.Config.Activities[i]
			prefs := make([]string, 0, len(act.TimePreference))
			for _, p := range act.TimePreference {
				prefs = append(prefs, string(p))
			}
			reports = append(reports, activityReport{
				ID:          act.ID,
				Name:        act.Name,
				Category:    string(act.Category),
				Frequency:   act.Frequency.Raw,
				Duration:    act.Duration.Raw,
				Priority:    string(deps.Config.PriorityOf(act.ID)),
				Preferences: prefs,
				Days:        act.DaysPreference,
			})
		}
		return jsonResult(map[string]any{"activities": reports})
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
