package economy

import "math"

// RoundHours rounds an hour value to two decimal places
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// RecipeTimeHours converts a per-execution time to the total hours for number
// executions (rounded to 2dp) and the gp/hour the margin represents.
// With totalMargin the margin is the whole batch's profit and is divided by the
// total hours; otherwise it is one execution's profit divided by one execution's hours.
// A zero divisor yields 0 gp/hour.
func RecipeTimeHours(timeSec float64, number int64, margin int64, totalMargin bool) (float64, int64) {
	timeHours := timeSec / SecondsPerHour
	totalHours := RoundHours(float64(number) * timeHours)

	divisor := timeHours
	if totalMargin {
		divisor = totalHours
	}
	if divisor <= 0 {
		return totalHours, 0
	}

	return totalHours, Floor(float64(margin) / divisor)
}

// ExecutionsPerHour returns how many executions of the given length start within an hour
func ExecutionsPerHour(timeSec float64) int64 {
	if timeSec <= 0 {
		return 0
	}
	// Tick lengths like 0.6 are inexact in binary; trim float noise before the ceiling
	rate := math.Round(SecondsPerHour/timeSec*1e9) / 1e9
	return int64(math.Ceil(rate))
}

// SecondsPerExecution converts an hourly rate into seconds per execution
func SecondsPerExecution(perHour float64) float64 {
	if perHour <= 0 {
		return 0
	}
	return SecondsPerHour / perHour
}

// Floor rounds x down to an integer, treating values within 1e-6 of an
// integer as that integer so binary noise (0.29*100 = 28.999...) does not lose a unit
func Floor(x float64) int64 {
	if r := math.Round(x); math.Abs(x-r) < 1e-6 {
		return int64(r)
	}
	return int64(math.Floor(x))
}
