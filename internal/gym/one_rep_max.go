package gym

import "math"

// Calculate1RM estimates the one rep max with the Brzycki formula: weight * 36 / (37 - reps),
// rounded to a whole number. A single rep, and 37 reps or more where the formula breaks down,
// give back the lifted weight untouched.
func Calculate1RM(weight float64, reps int) float64 {
	if reps <= 1 || reps >= 37 {
		return weight
	}
	return math.Round(weight * 36 / float64(37-reps))
}

// estimated1RM is the whole-number form stored with personal records.
func estimated1RM(weight float64, reps int) int {
	return int(math.Round(Calculate1RM(weight, reps)))
}
