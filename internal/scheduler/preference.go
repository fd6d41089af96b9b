package scheduler

import (
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/utils"
)

// FilterSlotsByPreference retains the slots matching an activity's day and
// time-of-day preferences. A slot passes when its calendar day is in the
// day-preference set (or none is configured) and its start hour falls in at
// least one preferred band (or no time preference is set, or the preference
// includes flexible). Order is preserved; this is a stable filter, not a
// re-sort.
func (s *Scheduler) FilterSlotsByPreference(slots []*TimeSlot, act *config.Activity) []*TimeSlot {
	if len(act.TimePreference) == 0 && len(act.DaysPreference) == 0 {
		return slots
	}

	var filtered []*TimeSlot
	for _, slot := range slots {
		if len(act.DaysPreference) > 0 && !containsDay(act.DaysPreference, utils.DayName(slot.Start)) {
			continue
		}
		if len(act.TimePreference) > 0 && !matchesTimeOfDay(slot.Start.Hour(), act.TimePreference) {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

func matchesTimeOfDay(hour int, prefs config.TimePreferences) bool {
	for _, p := range prefs {
		switch p {
		case config.PrefMorning:
			if hour >= constants.MorningStartHour && hour < constants.MorningEndHour {
				return true
			}
		case config.PrefAfternoon:
			if hour >= constants.AfternoonStartHour && hour < constants.AfternoonEndHour {
				return true
			}
		case config.PrefEvening:
			if hour >= constants.EveningStartHour && hour < constants.EveningEndHour {
				return true
			}
		case config.PrefFlexible:
			return true
		}
	}
	return false
}
