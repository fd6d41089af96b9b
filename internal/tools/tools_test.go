package tools

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/julianstephens/lifeos/internal/calendar"
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/memory"
	"github.com/julianstephens/lifeos/internal/scheduler"
	"github.com/julianstephens/lifeos/internal/utils"
)

func getTextResult(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatalf("result is nil")
	}
	if len(result.Content) == 0 {
		t.Fatalf("result content is empty")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("result content is not text")
	}
	return text.Text
}

func call(t *testing.T, handler server.ToolHandlerFunc, name string, args map[string]any) string {
	t.Helper()
	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	})
	if err != nil {
		t.Fatalf("%s call failed: %v", name, err)
	}
	return getTextResult(t, result)
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	cfg := &config.Config{
		Meta: config.Meta{Timezone: "UTC"},
		Template: config.Template{
			Sleep: config.SleepTemplate{TargetBedtime: "22:00", TargetWake: "07:00"},
		},
		Activities: []config.Activity{
			{
				ID:             "run",
				Name:           "Running",
				Category:       config.CategoryHealth,
				Frequency:      config.FrequencySpec{Min: 3, Max: 3, Raw: "3"},
				Duration:       config.DurationSpec{Min: 45, Max: 45, Raw: "45"},
				TimePreference: config.TimePreferences{config.PrefMorning},
				DaysPreference: []string{"monday", "wednesday", "friday"},
			},
		},
		Priorities: config.Priorities{High: []string{"run"}},
	}
	store, err := memory.Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("failed to open memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return Deps{
		Config:    cfg,
		Calendar:  calendar.NewMock(),
		Memory:    store,
		Scheduler: scheduler.New(cfg),
		UserID:    "alex",
	}
}

func TestWeeklyRequirementsTool(t *testing.T) {
	deps := testDeps(t)
	out := call(t, wrapWeeklyRequirements(deps), "weekly_requirements", nil)

	for _, want := range []string{`"activity_id": "run"`, `"min_sessions": 3`, `"priority": "high"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestProposeScheduleTool_ApplyBooksSessions(t *testing.T) {
	deps := testDeps(t)

	out := call(t, wrapProposeSchedule(deps), "propose_schedule", map[string]any{
		"week": "2026-01-07",
	})
	if !strings.Contains(out, "Schedule proposal for week of January 5, 2026") {
		t.Fatalf("unexpected proposal header:\n%s", out)
	}
	if !strings.Contains(out, "Running") {
		t.Errorf("proposal should place the deficit activity:\n%s", out)
	}

	// Preview must not touch the calendar.
	week := scheduler.New(deps.Config)
	start, end := week.WeekBounds(mustDate(t, deps, "2026-01-07"))
	events, err := deps.Calendar.ListEvents(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("preview created %d events", len(events))
	}

	out = call(t, wrapProposeSchedule(deps), "propose_schedule", map[string]any{
		"week":  "2026-01-07",
		"apply": true,
	})
	if !strings.Contains(out, "Booked 3 sessions") {
		t.Errorf("apply should report bookings:\n%s", out)
	}
	events, err = deps.Calendar.ListEvents(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("apply created %d events, want 3", len(events))
	}
}

func TestAnalyzeWeekTool_ReportsDeficit(t *testing.T) {
	deps := testDeps(t)
	out := call(t, wrapAnalyzeWeek(deps), "analyze_week", map[string]any{
		"week": "2026-01-07",
	})

	if !strings.Contains(out, `"week_start": "2026-01-05"`) {
		t.Errorf("output missing normalized week start:\n%s", out)
	}
	if !strings.Contains(out, `"sessions_deficit": 3`) {
		t.Errorf("empty week should show full deficit:\n%s", out)
	}
}

func TestListActivitiesTool_IncludesPreferences(t *testing.T) {
	deps := testDeps(t)
	out := call(t, wrapListActivities(deps), "list_activities", nil)

	for _, want := range []string{
		`"id": "run"`,
		`"category": "health"`,
		`"frequency": "3"`,
		`"preferences": [`,
		`"morning"`,
		`"wednesday"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestMemoryTools_AddThenSearch(t *testing.T) {
	deps := testDeps(t)

	out := call(t, wrapAddMemory(deps), "add_memory", map[string]any{
		"content": "prefers morning runs",
		"kind":    "preference",
	})
	if !strings.Contains(out, "Remembered (preference)") {
		t.Fatalf("unexpected add output: %s", out)
	}

	out = call(t, wrapSearchMemory(deps), "search_memory", map[string]any{
		"query": "morning",
	})
	if !strings.Contains(out, "prefers morning runs") {
		t.Errorf("search missed the stored memory:\n%s", out)
	}
}

func TestAddMemoryTool_RequiresContent(t *testing.T) {
	deps := testDeps(t)
	out := call(t, wrapAddMemory(deps), "add_memory", map[string]any{})
	if !strings.Contains(out, "content is required") {
		t.Errorf("unexpected output: %s", out)
	}
}

func mustDate(t *testing.T, deps Deps, s string) time.Time {
	t.Helper()
	parsed, err := utils.ParseDate(s, deps.Scheduler.Location())
	if err != nil {
		t.Fatalf("bad date %s: %v", s, err)
	}
	return parsed
}
