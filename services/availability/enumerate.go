package availability

import "agendo/models"

// DefaultStepMinutes is the candidate start grid used when no step is given.
const DefaultStepMinutes = 5

// EnumerateSlots emits every candidate slot of the requested duration inside
// the free blocks, advancing by step minutes within each block. The first
// candidate of each block starts at the block's earliest free instant, so no
// viable start is skipped even when blocks are not aligned to a common grid.
// Output is sorted because blocks arrive sorted and enumeration within a
// block is monotonic.
func EnumerateSlots(blocks []models.TimeRange, duration, step int) []models.TimeRange {
	if duration <= 0 {
		return nil
	}
	if step <= 0 {
		step = DefaultStepMinutes
	}

	var slots []models.TimeRange
	for _, block := range blocks {
		if block.Length() < duration {
			continue
		}
		for start := block.Start; start <= block.End-duration; start += step {
			slots = append(slots, models.TimeRange{Start: start, End: start + duration})
		}
	}
	return slots
}
