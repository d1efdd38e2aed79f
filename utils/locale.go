// utils/locale.go
package utils

import (
	"fmt"
	"log"
	"time"
)

// Arabic weekday names, indexed by time.Weekday (Sunday = 0).
var arabicWeekdays = [7]string{
	"الأحد",
	"الإثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// ResolveLocation picks the effective business timezone. Each candidate is
// probed with time.LoadLocation; the first one the runtime can use wins.
// When no candidate loads (stripped tzdata), a fixed UTC offset zone is used
// instead. The second return reports whether the fallback was taken.
func ResolveLocation(candidates []string, offsetMinutes int) (*time.Location, bool) {
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc, false
		}
	}

	name := fmt.Sprintf("UTC%+d:%02d", offsetMinutes/60, abs(offsetMinutes%60))
	log.Printf("No usable timezone among %v, falling back to %s", candidates, name)
	return time.FixedZone(name, offsetMinutes*60), true
}

// FormatAppointmentTime renders an instant as the (date, time, weekday)
// triple used in reminder captions: day/month/year date, 12-hour clock,
// weekday name in the requested language. Output depends only on the
// arguments, never on ambient locale state.
func FormatAppointmentTime(t time.Time, loc *time.Location, lang string) (date, timeStr, weekday string) {
	local := t.In(loc)

	date = local.Format("02/01/2006")
	timeStr = local.Format("3:04 PM")

	if lang == "ar" {
		weekday = arabicWeekdays[int(local.Weekday())]
	} else {
		weekday = local.Weekday().String()
	}
	return
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
