package mail

import (
	"math/rand/v2"
	"time"
	_ "time/tzdata" // IANA zones for visitors' time-of-day
)

// timeOfDay names the part of the day at the visitor's zone.
// Unknown zones fall back to UTC.
func timeOfDay(tz string, now time.Time) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	switch hour := now.In(loc).Hour(); {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// serverTime formats the server clock as h:mm:ss AM/PM.
func serverTime(now time.Time) string {
	return now.Format("3:04:05 PM")
}

func pick(intn func(int) int, phrasings []string) string {
	if intn == nil {
		intn = rand.IntN
	}

	return phrasings[intn(len(phrasings))]
}
