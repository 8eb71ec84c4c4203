package availability

import (
	"agendo/models"
	"agendo/utils"
)

// MatchesTimeOfDay reports whether a slot's start falls in the named bucket:
// morning 06-12h, afternoon 12-18h, evening 18-06h. Unknown bucket names
// match everything.
func MatchesTimeOfDay(slot models.Slot, timeOfDay string) bool {
	start := utils.TimeToMinutes(slot.StartTime)
	if start == utils.InvalidMinutes {
		return false
	}
	hour := start / 60
	switch timeOfDay {
	case models.TimeOfDayMorning:
		return hour >= 6 && hour < 12
	case models.TimeOfDayAfternoon:
		return hour >= 12 && hour < 18
	case models.TimeOfDayEvening:
		return hour >= 18 || hour < 6
	default:
		return true
	}
}

// FilterByTimeOfDay keeps the slots whose start falls in the bucket. An empty
// bucket name keeps everything.
func FilterByTimeOfDay(slots []models.Slot, timeOfDay string) []models.Slot {
	if timeOfDay == "" {
		return slots
	}
	filtered := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if MatchesTimeOfDay(slot, timeOfDay) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
