package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	now := date(2026, time.August, 31)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday passed this year", date(1990, time.March, 5), 36},
		{"birthday later this year", date(1990, time.December, 5), 35},
		{"birthday today", date(1990, time.August, 31), 36},
		{"birthday tomorrow", date(1990, time.September, 1), 35},
		{"born this year", date(2026, time.January, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAt(tt.dob, now))
		})
	}
}

// Feb 29 birthdays must not shift across leap years.
func TestAgeAtLeapDay(t *testing.T) {
	dob := date(2000, time.February, 29)
	assert.Equal(t, 24, AgeAt(dob, date(2025, time.February, 28)))
	assert.Equal(t, 25, AgeAt(dob, date(2025, time.March, 1)))
}

func TestAgeFromDOB(t *testing.T) {
	now := date(2026, time.August, 31)

	age, ok := AgeFromDOB("1990-03-05", now)
	assert.True(t, ok)
	assert.Equal(t, 36, age)

	_, ok = AgeFromDOB("", now)
	assert.False(t, ok)

	_, ok = AgeFromDOB("05/03/1990", now)
	assert.False(t, ok)
}

func TestRangeFromAge(t *testing.T) {
	assert.Equal(t, "20-29", RangeFromAge(27))
	assert.Equal(t, "30-39", RangeFromAge(30))
	assert.Equal(t, "0-9", RangeFromAge(0))
	assert.Equal(t, "90-99", RangeFromAge(99))
	assert.Equal(t, "100-109", RangeFromAge(104))
	assert.Equal(t, "", RangeFromAge(-1))
}

func TestRangeFromDOB(t *testing.T) {
	now := date(2026, time.August, 31)
	assert.Equal(t, "30-39", RangeFromDOB("1990-03-05", now))
	assert.Equal(t, "", RangeFromDOB("", now))
	assert.Equal(t, "", RangeFromDOB("no es fecha", now))
	// A future date of birth is a misread, not a negative bucket.
	assert.Equal(t, "", RangeFromDOB("2030-01-01", now))
}
