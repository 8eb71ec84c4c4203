package utils

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 1440

// InvalidMinutes is the sentinel returned for unparsable time strings. A bad
// record degrades to an out-of-range value instead of aborting the whole
// computation.
const InvalidMinutes = -1

// TimeToMinutes converts an "HH:MM" string to minutes from midnight.
// Malformed input logs a warning and returns InvalidMinutes.
func TimeToMinutes(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		GetLogger().Warn("invalid time string", zap.String("value", t))
		return InvalidMinutes
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		GetLogger().Warn("invalid hour component", zap.String("value", t))
		return InvalidMinutes
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		GetLogger().Warn("invalid minute component", zap.String("value", t))
		return InvalidMinutes
	}
	if hours < 0 || hours > 24 || mins < 0 || mins > 59 || (hours == 24 && mins != 0) {
		GetLogger().Warn("time out of range", zap.String("value", t))
		return InvalidMinutes
	}
	return hours*60 + mins
}

// MinutesToTime converts minutes from midnight back to an "HH:MM" string.
// Out-of-range input logs a warning and returns "00:00".
func MinutesToTime(m int) string {
	if m < 0 || m > MinutesPerDay {
		GetLogger().Warn("minutes out of range", zap.Int("value", m))
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
