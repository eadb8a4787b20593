package recipe

import "strconv"

// Time is the duration of one recipe execution.
// It is either a known number of game ticks or Unknown, for activities
// that have no crafting-duration model. Callers must check which one
// they hold before converting to seconds.
type Time struct {
	ticks float64
	known bool
}

// KnownTicks returns a Time of the given number of ticks
func KnownTicks(ticks float64) Time {
	return Time{ticks: ticks, known: true}
}

// UnknownTime returns the Unknown variant
func UnknownTime() Time {
	return Time{}
}

// IsKnown reports whether a duration model exists
func (t Time) IsKnown() bool {
	return t.known
}

// Ticks returns the number of ticks and whether the time is known
func (t Time) Ticks() (float64, bool) {
	return t.ticks, t.known
}

// Seconds converts the time to seconds using the given tick length
func (t Time) Seconds(secondsPerTick float64) (float64, bool) {
	if !t.known {
		return 0, false
	}
	return t.ticks * secondsPerTick, true
}

func (t Time) String() string {
	if !t.known {
		return "unknown"
	}
	return strconv.FormatFloat(t.ticks, 'f', -1, 64) + " ticks"
}
