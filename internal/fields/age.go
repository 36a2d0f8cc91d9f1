package fields

import (
	"fmt"
	"time"
)

// isoDateLayout is the normalized date-of-birth format.
const isoDateLayout = "2006-01-02"

// AgeAt returns whole years elapsed between dob and now using calendar-exact
// year subtraction, so birthdays around leap years never gain or lose a year.
func AgeAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// AgeFromDOB parses an ISO date of birth and returns the age at now. The
// boolean result is false for empty or unparseable input.
func AgeFromDOB(iso string, now time.Time) (int, bool) {
	if iso == "" {
		return 0, false
	}
	dob, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return 0, false
	}
	return AgeAt(dob, now), true
}

// RangeFromAge buckets an age into its decade span, e.g. 27 -> "20-29".
// Negative ages (a future date of birth, usually a misread) yield "".
func RangeFromAge(age int) string {
	if age < 0 {
		return ""
	}
	lower := age / 10 * 10
	return fmt.Sprintf("%d-%d", lower, lower+9)
}

// RangeFromDOB derives the decade bucket straight from an ISO date of birth,
// or "" when the date is unknown. Used both by the pipeline and when the
// operator re-enters a corrected date.
func RangeFromDOB(iso string, now time.Time) string {
	age, ok := AgeFromDOB(iso, now)
	if !ok {
		return ""
	}
	return RangeFromAge(age)
}
