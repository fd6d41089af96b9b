// Package config loads and validates the life configuration: the activities a
// user wants time for, their fixed commitments, priority tiers, and the weekly
// work/sleep template the scheduler plans around.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Priority is one of the four ordered priority tiers.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the sort rank of a tier. Lower rank wins contested slots.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 2
	}
}

// Category groups activities for reporting.
type Category string

const (
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
	CategoryCreative Category = "creative"
	CategoryWork     Category = "work"
	CategoryLife     Category = "life"
	CategorySocial   Category = "social"
	CategoryOther    Category = "other"
)

var validCategories = map[Category]bool{
	CategoryHealth:   true,
	CategoryLearning: true,
	CategoryCreative: true,
	CategoryWork:     true,
	CategoryLife:     true,
	CategorySocial:   true,
	CategoryOther:    true,
}

// TimePreference is a preferred time-of-day band.
type TimePreference string

const (
	PrefMorning   TimePreference = "morning"
	PrefAfternoon TimePreference = "afternoon"
	PrefEvening   TimePreference = "evening"
	PrefFlexible  TimePreference = "flexible"
)

var validPreferences = map[TimePreference]bool{
	PrefMorning:   true,
	PrefAfternoon: true,
	PrefEvening:   true,
	PrefFlexible:  true,
}

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Meta holds configuration metadata.
type Meta struct {
	Version  string `yaml:"version"`
	User     string `yaml:"user"`
	Timezone string `yaml:"timezone"`
}

// WorkTemplate describes the regular work week.
type WorkTemplate struct {
	Days  []string   `yaml:"days"`
	Start string     `yaml:"start"`
	End   string     `yaml:"end"`
	Lunch *TimeBlock `yaml:"lunch,omitempty"`
}

// TimeBlock is a start plus either an end clock or a duration in minutes.
type TimeBlock struct {
	Start    string `yaml:"start"`
	End      string `yaml:"end,omitempty"`
	Duration int    `yaml:"duration,omitempty"`
}

// SleepTemplate describes the target sleep window.
type SleepTemplate struct {
	TargetBedtime string `yaml:"target_bedtime"`
	TargetWake    string `yaml:"target_wake"`
	WindDown      int    `yaml:"wind_down"`
}

// OfficeDays describes in-person work days.
type OfficeDays struct {
	Days           []string `yaml:"days"`
	Location       string   `yaml:"location"`
	CommuteMinutes int      `yaml:"commute_minutes"`
}

// Template is the weekly work/sleep template.
type Template struct {
	Work       WorkTemplate  `yaml:"work"`
	Sleep      SleepTemplate `yaml:"sleep"`
	OfficeDays *OfficeDays   `yaml:"office_days,omitempty"`
}

// Commitment is a fixed, non-negotiable recurring block. It is never subject
// to deficit analysis; it only consumes availability.
type Commitment struct {
	Name       string   `yaml:"name"`
	Day        string   `yaml:"day,omitempty"`
	Days       []string `yaml:"days,omitempty"`
	Start      string   `yaml:"start"`
	End        string   `yaml:"end,omitempty"`
	Duration   int      `yaml:"duration,omitempty"` // minutes, alternative to End
	Location   string   `yaml:"location,omitempty"`
	TravelTime int      `yaml:"travel_time,omitempty"` // minutes each way
	Note       string   `yaml:"note,omitempty"`
}

// DaysList merges the singular and plural day fields into one set.
func (c *Commitment) DaysList() []string {
	if len(c.Days) > 0 {
		return c.Days
	}
	if c.Day != "" {
		return []string{c.Day}
	}
	return nil
}

// Activity is a recurring personal task with a weekly frequency and duration
// target.
type Activity struct {
	ID             string          `yaml:"id"`
	Name           string          `yaml:"name"`
	Category       Category        `yaml:"category"`
	Frequency      FrequencySpec   `yaml:"frequency"`
	Duration       DurationSpec    `yaml:"duration"`
	TimePreference TimePreferences `yaml:"time_preference,omitempty"`
	DaysPreference []string        `yaml:"days_preference,omitempty"`
	Location       string          `yaml:"location,omitempty"`
	Note           string          `yaml:"note,omitempty"`
}

// DurationRange returns (min, max) session length in minutes.
func (a *Activity) DurationRange() (int, int) {
	return a.Duration.Min, a.Duration.Max
}

// FrequencyRange returns (min, max) sessions per week.
func (a *Activity) FrequencyRange() (int, int) {
	return a.Frequency.Min, a.Frequency.Max
}

// WeeklyTarget is the session count used for planning: the lower frequency
// bound.
func (a *Activity) WeeklyTarget() int {
	return a.Frequency.Min
}

// IsDaily reports whether the activity should happen every day.
func (a *Activity) IsDaily() bool {
	return a.Frequency.Raw == "daily"
}

// Priorities assigns activities to the four tiers. An id should appear in at
// most one tier; lookup checks critical first so that tier wins regardless.
type Priorities struct {
	Critical []string `yaml:"critical,omitempty"`
	High     []string `yaml:"high,omitempty"`
	Medium   []string `yaml:"medium,omitempty"`
	Low      []string `yaml:"low,omitempty"`
}

// PriorityOf returns the tier for an activity id, defaulting to medium.
func (p *Priorities) PriorityOf(activityID string) Priority {
	for _, id := range p.Critical {
		if id == activityID {
			return PriorityCritical
		}
	}
	for _, id := range p.High {
		if id == activityID {
			return PriorityHigh
		}
	}
	for _, id := range p.Medium {
		if id == activityID {
			return PriorityMedium
		}
	}
	for _, id := range p.Low {
		if id == activityID {
			return PriorityLow
		}
	}
	return PriorityMedium
}

// Calendars names the calendars the assistant reads and writes.
type Calendars struct {
	Primary  string `yaml:"primary"`
	Work     string `yaml:"work,omitempty"`
	Personal string `yaml:"personal,omitempty"`
}

// EventFormat controls how proposed activities are titled on the calendar.
type EventFormat struct {
	Prefix          string `yaml:"prefix"`
	IncludeCategory bool   `yaml:"include_category"`
}

// Matching controls how scheduled events are matched back to activities.
// With StrictTags set, only explicitly tagged events count; otherwise
// untagged events fall back to a case-insensitive name match.
type Matching struct {
	StrictTags bool `yaml:"strict_tags"`
}

// Config is the complete life configuration.
type Config struct {
	Meta        Meta         `yaml:"meta"`
	Template    Template     `yaml:"template"`
	Commitments []Commitment `yaml:"commitments,omitempty"`
	Activities  []Activity   `yaml:"activities,omitempty"`
	Priorities  Priorities   `yaml:"priorities"`
	Calendars   *Calendars   `yaml:"calendars,omitempty"`
	EventFormat EventFormat  `yaml:"event_format"`
	Matching    Matching     `yaml:"matching"`
}

// ActivityByID finds an activity by id, or nil if unknown.
func (c *Config) ActivityByID(activityID string) *Activity {
	for i := range c.Activities {
		if c.Activities[i].ID == activityID {
			return &c.Activities[i]
		}
	}
	return nil
}

// ActivitiesByCategory returns all activities in a category.
func (c *Config) ActivitiesByCategory(cat Category) []*Activity {
	var out []*Activity
	for i := range c.Activities {
		if c.Activities[i].Category == cat {
			out = append(out, &c.Activities[i])
		}
	}
	return out
}

// PriorityOf returns the priority tier for an activity id.
func (c *Config) PriorityOf(activityID string) Priority {
	return c.Priorities.PriorityOf(activityID)
}

// Load reads, parses, and validates a life configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidError{Field: "document", Reason: err.Error()}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Meta.Timezone == "" {
		c.Meta.Timezone = "Local"
	}
	if len(c.Template.Work.Days) == 0 {
		c.Template.Work.Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	}
	if c.Template.Work.Start == "" {
		c.Template.Work.Start = "09:00"
	}
	if c.Template.Work.End == "" {
		c.Template.Work.End = "17:00"
	}
	if c.Template.Sleep.TargetBedtime == "" {
		c.Template.Sleep.TargetBedtime = "23:00"
	}
	if c.Template.Sleep.TargetWake == "" {
		c.Template.Sleep.TargetWake = "06:30"
	}
}

// Save writes the configuration back out as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
