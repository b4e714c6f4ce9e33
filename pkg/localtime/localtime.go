package localtime

import (
	"sync"
	"time"
)

// layout matches the original notification format: full weekday and date with
// a long time style, e.g. "Friday, August 29, 2026 at 5:04:05 PM EAT".
const layout = "Monday, January 2, 2006 at 3:04:05 PM MST"

var (
	once sync.Once
	loc  *time.Location
)

// location loads Africa/Nairobi once, falling back to a fixed UTC+3 zone when
// the tz database is unavailable (stripped containers).
func location() *time.Location {
	once.Do(func() {
		var err error
		loc, err = time.LoadLocation("Africa/Nairobi")
		if err != nil {
			loc = time.FixedZone("EAT", 3*60*60)
		}
	})
	return loc
}

// Format renders t in Nairobi local time using the full date + long time
// style used across notification emails and operation results.
func Format(t time.Time) string {
	return t.In(location()).Format(layout)
}

// Now is Format(time.Now()).
func Now() string {
	return Format(time.Now())
}
