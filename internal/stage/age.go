package stage

import "time"

// MonthsSinceBirth returns the number of whole months between the birth date
// and now. A month only counts once the day of month has been reached.
// Birth dates after now clamp to 0.
func MonthsSinceBirth(year int, month time.Month, day int, now time.Time) int {
	birth := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	months := (now.Year()-birth.Year())*12 + int(now.Month()-birth.Month())
	if now.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// MonthsSince is MonthsSinceBirth for a birth date held as a time.Time.
func MonthsSince(birth, now time.Time) int {
	return MonthsSinceBirth(birth.Year(), birth.Month(), birth.Day(), now)
}
