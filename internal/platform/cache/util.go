package cache

import (
	"time"
)

// TimeUntilNextHour returns the time from now until the next hh:00 in loc.
// At exactly hh:00 the next occurrence is a day away.
func TimeUntilNextHour(now time.Time, loc *time.Location, hour int) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// Use tomorrow when today's refresh has already passed
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}
