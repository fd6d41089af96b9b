package config

import (
	"strings"

	"github.com/julianstephens/lifeos/internal/utils"
)

// Validate checks the semantic invariants the scheduler depends on. The first
// violation is returned as an *InvalidError naming the offending field.
func (c *Config) Validate() error {
	if _, err := utils.LoadLocation(c.Meta.Timezone); err != nil {
		return invalidf("meta.timezone", "unknown timezone %q", c.Meta.Timezone)
	}

	if err := validateClock("template.work.start", c.Template.Work.Start); err != nil {
		return err
	}
	if err := validateClock("template.work.end", c.Template.Work.End); err != nil {
		return err
	}
	for _, d := range c.Template.Work.Days {
		if !validDays[strings.ToLower(d)] {
			return invalidf("template.work.days", "unknown day %q", d)
		}
	}
	if err := validateClock("template.sleep.target_bedtime", c.Template.Sleep.TargetBedtime); err != nil {
		return err
	}
	if err := validateClock("template.sleep.target_wake", c.Template.Sleep.TargetWake); err != nil {
		return err
	}

	for i := range c.Commitments {
		if err := c.validateCommitment(i); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Activities))
	for i := range c.Activities {
		if err := c.validateActivity(i, seen); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateCommitment(i int) error {
	cm := &c.Commitments[i]
	field := "commitments." + cm.Name
	if cm.Name == "" {
		return invalidf("commitments", "entry %d is missing a name", i)
	}
	days := cm.DaysList()
	if len(days) == 0 {
		return invalidf(field+".day", "commitment needs a day or days list")
	}
	for _, d := range days {
		if !validDays[strings.ToLower(d)] {
			return invalidf(field+".days", "unknown day %q", d)
		}
	}
	if err := validateClock(field+".start", cm.Start); err != nil {
		return err
	}
	if cm.End == "" && cm.Duration <= 0 {
		return invalidf(field, "commitment needs an end time or a positive duration")
	}
	if cm.End != "" {
		if err := validateClock(field+".end", cm.End); err != nil {
			return err
		}
	}
	if cm.TravelTime < 0 {
		return invalidf(field+".travel_time", "must not be negative")
	}
	return nil
}

func (c *Config) validateActivity(i int, seen map[string]bool) error {
	a := &c.Activities[i]
	if a.ID == "" {
		return invalidf("activities", "entry %d is missing an id", i)
	}
	field := "activities." + a.ID
	if seen[a.ID] {
		return invalidf(field, "duplicate activity id")
	}
	seen[a.ID] = true

	if a.Name == "" {
		return invalidf(field+".name", "activity needs a display name")
	}
	if a.Category != "" && !validCategories[a.Category] {
		return invalidf(field+".category", "unknown category %q", a.Category)
	}
	if a.Frequency.Raw == "" {
		return invalidf(field+".frequency", "sessions per week is required")
	}
	if a.Frequency.Min < 0 || a.Frequency.Min > a.Frequency.Max {
		return invalidf(field+".frequency", "bounds must be non-negative with min <= max, got %d-%d", a.Frequency.Min, a.Frequency.Max)
	}
	if a.Duration.Raw == "" {
		return invalidf(field+".duration", "minutes per session is required")
	}
	if a.Duration.Min < 0 || a.Duration.Min > a.Duration.Max {
		return invalidf(field+".duration", "bounds must be non-negative with min <= max, got %d-%d", a.Duration.Min, a.Duration.Max)
	}
	if a.Duration.Max == 0 {
		return invalidf(field+".duration", "must be at least one minute per session")
	}
	for _, p := range a.TimePreference {
		if !validPreferences[p] {
			return invalidf(field+".time_preference", "unknown preference %q", p)
		}
	}
	for _, d := range a.DaysPreference {
		if !validDays[strings.ToLower(d)] {
			return invalidf(field+".days_preference", "unknown day %q", d)
		}
	}
	return nil
}

func validateClock(field, clock string) error {
	if !utils.ValidClock(clock) {
		return invalidf(field, "expected HH:MM with hour 0-23 and minute 0-59, got %q", clock)
	}
	return nil
}
