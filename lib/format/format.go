package format

import (
	"fmt"
	"time"
)

func formatDuration(duration time.Duration) string {
	if ns := duration.Nanoseconds(); ns < 1000 {
		return fmt.Sprintf("%dns", ns)
	} else if us := float64(duration) / float64(time.Microsecond); us < 1000 {
		return fmt.Sprintf("%.3gµs", us)
	} else if ms := float64(duration) / float64(time.Millisecond); ms < 1000 {
		return fmt.Sprintf("%.3gms", ms)
	} else if s := float64(duration) / float64(time.Second); s < 60 {
		return fmt.Sprintf("%.3gs", s)
	} else {
		duration -= duration % time.Second
		day := time.Hour * 24
		if duration < day {
			return duration.String()
		}
		week := day * 7
		if duration < week {
			days := duration / day
			duration %= day
			return fmt.Sprintf("%dd%s", days, duration)
		}
		year := day*365 + day>>2
		if duration < year {
			weeks := duration / week
			duration %= week
			days := duration / day
			duration %= day
			return fmt.Sprintf("%dw%dd%s", weeks, days, duration)
		}
		years := duration / year
		duration %= year
		weeks := duration / week
		duration %= week
		days := duration / day
		duration %= day
		return fmt.Sprintf("%dy%dw%dd%s", years, weeks, days, duration)
	}
}
