package availability

import (
	"sort"

	"agendo/models"
)

// roundnessRank buckets a start minute by how aligned it is to clock
// conventions: on the hour beats half hour beats quarter hour beats any other
// five-minute multiple beats everything else.
func roundnessRank(startMinute int) int {
	switch m := startMinute % 60; {
	case m == 0:
		return 1
	case m == 30:
		return 2
	case m == 15 || m == 45:
		return 3
	case m%5 == 0:
		return 4
	default:
		return 5
	}
}

// Prioritize orders candidate slots for display: nicest-looking start times
// first, chronological within the same roundness bucket. It is a total order
// over the input, never a filter.
func Prioritize(slots []models.TimeRange) []models.TimeRange {
	ordered := make([]models.TimeRange, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := roundnessRank(ordered[i].Start), roundnessRank(ordered[j].Start)
		if ri != rj {
			return ri < rj
		}
		return ordered[i].Start < ordered[j].Start
	})
	return ordered
}
