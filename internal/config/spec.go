package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrequencySpec is a weekly session-count target. In YAML it is one of:
// an integer, "daily" (7), "weekly" (1), or a closed range like "3-4".
// It is normalized to a (Min, Max) pair at load time so downstream code
// never re-parses the raw form.
type FrequencySpec struct {
	Min int
	Max int
	Raw string
}

func (f *FrequencySpec) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		f.Min, f.Max = n, n
		f.Raw = strconv.Itoa(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("frequency must be a number or string, got %s", value.Tag)
	}
	f.Raw = s

	switch s {
	case "daily":
		f.Min, f.Max = 7, 7
	case "weekly":
		f.Min, f.Max = 1, 1
	default:
		min, max, err := parseRange(s)
		if err != nil {
			return fmt.Errorf("frequency %q: %w", s, err)
		}
		f.Min, f.Max = min, max
	}
	return nil
}

func (f FrequencySpec) MarshalYAML() (interface{}, error) {
	return f.Raw, nil
}

// DurationSpec is a session length in minutes: an integer or a closed range
// like "30-45", normalized to (Min, Max) at load time.
type DurationSpec struct {
	Min int
	Max int
	Raw string
}

func (d *DurationSpec) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		d.Min, d.Max = n, n
		d.Raw = strconv.Itoa(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a number or string, got %s", value.Tag)
	}
	d.Raw = s

	min, max, err := parseRange(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	d.Min, d.Max = min, max
	return nil
}

func parseRange(s string) (int, int, error) {
	if strings.Contains(s, "-") {
		parts := strings.SplitN(s, "-", 2)
		min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("bad lower bound %q", parts[0])
		}
		max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("bad upper bound %q", parts[1])
		}
		return min, max, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("not a number or range")
	}
	return n, n, nil
}

func (d DurationSpec) MarshalYAML() (interface{}, error) {
	return d.Raw, nil
}

// TimePreferences accepts either a single YAML scalar or a list; multiple
// preferences are treated as alternatives (OR).
type TimePreferences []TimePreference

func (t *TimePreferences) UnmarshalYAML(value *yaml.Node) error {
	var single string
	if err := value.Decode(&single); err == nil {
		*t = TimePreferences{TimePreference(single)}
		return nil
	}

	var many []string
	if err := value.Decode(&many); err != nil {
		return fmt.Errorf("time_preference must be a string or list of strings")
	}
	prefs := make(TimePreferences, 0, len(many))
	for _, p := range many {
		prefs = append(prefs, TimePreference(p))
	}
	*t = prefs
	return nil
}

// Contains reports whether the preference set includes p.
func (t TimePreferences) Contains(p TimePreference) bool {
	for _, pref := range t {
		if pref == p {
			return true
		}
	}
	return false
}
