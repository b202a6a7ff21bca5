// Package assess holds the pure derivation rules shared by the API and the
// measurement form: BMI, age at assessment, best-of-two-trials selection and
// the display date format used in the results table and chart labels.
package assess

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for calendar dates (birth and measurement).
const DateLayout = "2006-01-02"

// CalculateBMI returns weight(kg) / height(m)^2 rounded to two decimals.
// A non-positive height yields 0 rather than an infinity.
func CalculateBMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	m := heightCM / 100
	return math.Round(weightKG/(m*m)*100) / 100
}

// CalculateAge returns full years between birthDate and now, decremented when
// the birthday has not yet occurred this year.
func CalculateAge(birthDate string, now time.Time) (int, error) {
	born, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, nil
}

// CalculateBestValue picks the better of two trial readings. NaN marks a
// missing or unreadable trial: one NaN falls back to the other reading, two
// yield 0.
func CalculateBestValue(first, second float64, lowerIsBetter bool) float64 {
	firstBad := math.IsNaN(first)
	secondBad := math.IsNaN(second)
	switch {
	case firstBad && secondBad:
		return 0
	case firstBad:
		return second
	case secondBad:
		return first
	}
	if lowerIsBetter {
		return math.Min(first, second)
	}
	return math.Max(first, second)
}

// FormatDate renders a wire date as "YYYY/M/D" without zero padding, the form
// the results table and chart axis use.
func FormatDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d/%d", d.Year(), int(d.Month()), d.Day())
}
