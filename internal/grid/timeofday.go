package grid

import (
	"fmt"

	"github.com/JacekPodanowski/ZPI-sub002/internal"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// TimeOfDay is a wall-clock time with minute resolution, 00:00 to 23:59.
// The zero value is midnight.
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay parses a "HH:MM" or "HH:MM:SS" string. Seconds are validated and
// then dropped. Any other shape, or a field out of range, is a *ParseError.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hour, minute, _, err := internal.ParseClock(s)
	if err != nil {
		return TimeOfDay{}, &ParseError{Input: s, Err: err}
	}
	return TimeOfDay{minutes: hour*MinutesPerHour + minute}, nil
}

// NewTimeOfDay builds a TimeOfDay from an hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, &ParseError{
			Input: fmt.Sprintf("%02d:%02d", hour, minute),
			Err:   internal.ErrClockRange,
		}
	}
	return TimeOfDay{minutes: hour*MinutesPerHour + minute}, nil
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Hour() int {
	return t.minutes / MinutesPerHour
}

func (t TimeOfDay) Minute() int {
	return t.minutes % MinutesPerHour
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// String formats t as "HH:MM".
func (t TimeOfDay) String() string {
	return formatMinutes(t.minutes)
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/MinutesPerHour, m%MinutesPerHour)
}
