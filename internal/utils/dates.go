package utils

import (
	"fmt"
	"time"
)

const minutesPerDay = 1440

// TimeSince renders how long ago t was, relative to now.
func TimeSince(t, now time.Time) string {
	mins := int(now.Sub(t).Minutes())

	switch {
	case mins <= 1:
		return "just now"
	case mins < 60:
		return plural(mins, "minute")
	case mins < minutesPerDay:
		return plural(mins/60, "hour")
	case mins < minutesPerDay*30:
		return plural(mins/minutesPerDay, "day")
	case mins < minutesPerDay*365:
		return plural(mins/(minutesPerDay*30), "month")
	}
	return plural(mins/(minutesPerDay*30*12), "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// FormatDateStandard renders t like "Jan 2, 2006". The zero time renders
// as an empty string.
func FormatDateStandard(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
