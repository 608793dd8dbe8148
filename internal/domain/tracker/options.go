package tracker

import "time"

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall-clock source used for start and end times.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}
