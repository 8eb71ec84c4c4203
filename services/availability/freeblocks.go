package availability

import (
	"agendo/models"
	"agendo/utils"
)

// FreeBlocks computes the maximal contiguous free ranges inside a working
// window given a set of occupied periods. Periods may overlap, duplicate each
// other, or extend past the window; they are clipped to the window and merged
// by construction of the minute timeline.
//
// The timeline is minute-resolution over the full day, so the cost is
// O(1440 + periods) regardless of how fragmented a provider's calendar gets.
func FreeBlocks(window models.TimeRange, occupied []models.OccupiedPeriod) []models.TimeRange {
	if window.Start < 0 || window.End > utils.MinutesPerDay || window.Start >= window.End {
		return nil
	}

	// One entry per minute of the day plus the end boundary.
	var busy [utils.MinutesPerDay + 1]bool
	for _, p := range occupied {
		start, end := p.Start, p.End
		if start < window.Start {
			start = window.Start
		}
		if end > window.End {
			end = window.End
		}
		for m := start; m < end; m++ {
			busy[m] = true
		}
	}

	var blocks []models.TimeRange
	runStart := -1
	// Scan one past window.End so a trailing free run is closed.
	for m := window.Start; m <= window.End; m++ {
		free := m < window.End && !busy[m]
		if free && runStart < 0 {
			runStart = m
		}
		if !free && runStart >= 0 {
			blocks = append(blocks, models.TimeRange{Start: runStart, End: m})
			runStart = -1
		}
	}
	return blocks
}
