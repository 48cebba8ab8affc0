package application

import "time"

// Clock interface supaya gampang ditest
type Clock interface {
	Now() time.Time
}

// SystemClock implementasi default, pakai time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// TimestampLayout renders e.g. "October 17, 2026, 03:04:05 PM".
const TimestampLayout = "January 2, 2006, 03:04:05 PM"

// FormatTimestamp renders t in loc using TimestampLayout. A nil loc means time.Local.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(TimestampLayout)
}
