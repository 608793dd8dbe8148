package tracker

import "time"

// Interval represents one start/stop span in a project's log. Duration and
// Cumulative stay empty while the interval is open and are written exactly
// once when it closes, in "HH:MM:SS" form with unwrapped hours.
type Interval struct {
	ID         int64      `json:"id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Duration   string     `json:"duration,omitempty"`
	Cumulative string     `json:"cumulative_time,omitempty"`
}

// Open reports whether the interval has no recorded end time.
func (iv Interval) Open() bool {
	return iv.EndTime == nil
}
