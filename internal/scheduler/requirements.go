package scheduler

import "github.com/julianstephens/lifeos/internal/config"

// Requirement is an activity's weekly time target, derived from its frequency
// and duration specs plus its priority tier. Recomputed per call; the
// configuration is immutable for the scheduler's lifetime, so there is
// nothing worth caching at this scale.
type Requirement struct {
	Activity        *config.Activity
	MinSessions     int
	MaxSessions     int
	MinDuration     int // minutes per session
	MaxDuration     int
	TotalMinMinutes int
	TotalMaxMinutes int
	Priority        config.Priority
}

// CalculateWeeklyRequirements computes the requirement for every configured
// activity, keyed by activity id.
func (s *Scheduler) CalculateWeeklyRequirements() map[string]Requirement {
	requirements := make(map[string]Requirement, len(s.cfg.Activities))

	for i := range s.cfg.Activities {
		act := &s.cfg.Activities[i]
		minFreq, maxFreq := act.FrequencyRange()
		minDur, maxDur := act.DurationRange()

		requirements[act.ID] = Requirement{
			Activity:        act,
			MinSessions:     minFreq,
			MaxSessions:     maxFreq,
			MinDuration:     minDur,
			MaxDuration:     maxDur,
			TotalMinMinutes: minFreq * minDur,
			TotalMaxMinutes: maxFreq * maxDur,
			Priority:        s.cfg.PriorityOf(act.ID),
		}
	}

	return requirements
}
