// Package timefmt encodes and decodes the text formats the store uses for
// durations and wall-clock timestamps.
package timefmt

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// TimestampLayout is the wall-clock format used for start and end times,
// local time, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrMalformed indicates a duration string that cannot be parsed.
var ErrMalformed = errors.New("malformed duration")

// FormatSeconds renders a non-negative second count as "HHh MMm SSs".
// Hours are not wrapped to 24.
func FormatSeconds(total int64) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, seconds)
}

// FormatClock renders a non-negative second count as "HH:MM:SS".
// Hours are not wrapped to 24.
func FormatClock(total int64) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseClock parses a "H:M:S" or "HH:MM:SS" duration into seconds.
// Returns ErrMalformed on wrong arity, non-numeric or negative components.
func ParseClock(text string) (int64, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
	}

	var fields [3]int64
	for i, part := range parts {
		value, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
		}
		fields[i] = value
	}

	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

// Sum totals a sequence of clock-format duration strings. Malformed entries
// contribute zero: they are logged and skipped, never fatal, so one corrupt
// row cannot block aggregation of the rest.
func Sum(logger *slog.Logger, durations []string) int64 {
	if logger == nil {
		logger = slog.Default()
	}

	var total int64
	for _, text := range durations {
		seconds, err := ParseClock(text)
		if err != nil {
			logger.Warn("skipping malformed duration", "value", text)
			continue
		}
		total += seconds
	}
	return total
}
