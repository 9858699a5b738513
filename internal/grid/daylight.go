package grid

import (
	"time"

	"github.com/dromara/carbon/v2"
	"github.com/nathan-osman/go-sunrise"

	"github.com/JacekPodanowski/ZPI-sub002/internal"
	"github.com/JacekPodanowski/ZPI-sub002/types"
)

// Band is a vertical stripe of the window, such as the daylight hours.
type Band struct {
	TopFraction    float64
	HeightFraction float64
}

// SunTimes returns sunrise and sunset on day's calendar date at the given location,
// expressed in day's time zone. ok is false when the sun does not rise or set that day.
func SunTimes(day time.Time, latitude, longitude float64) (r types.TimeRange, ok bool) {
	rise, set := sunrise.SunriseSunset(latitude, longitude, day.Year(), day.Month(), day.Day())
	if rise.IsZero() || set.IsZero() {
		return types.TimeRange{}, false
	}
	return types.TimeRange{Start: rise.In(day.Location()), End: set.In(day.Location())}, true
}

// DaylightBand returns the part of window between sunrise and sunset on day,
// or nil when there is none.
func DaylightBand(day time.Time, latitude, longitude float64, window DisplayWindow) *Band {
	sun, ok := SunTimes(day, latitude, longitude)
	if !ok {
		return nil
	}

	start := max(minuteOfDay(day, sun.Start), window.StartMinutes)
	end := min(minuteOfDay(day, sun.End), window.EndMinutes)
	if end <= start {
		return nil
	}

	return &Band{
		TopFraction:    window.Fraction(start),
		HeightFraction: float64(end-start) / float64(window.Span()),
	}
}

// NowFraction returns where now falls within window, or nil when now is not on
// day's calendar date or lies outside the window.
func NowFraction(day, now time.Time, window DisplayWindow) *float64 {
	d := carbon.CreateFromStdTime(day)
	n := carbon.CreateFromStdTime(now.In(day.Location()))
	if n.ToDateString() != d.ToDateString() {
		return nil
	}

	tod, err := NewTimeOfDay(n.Hour(), n.Minute())
	if err != nil || !window.Contains(tod.Minutes()) {
		return nil
	}
	return internal.Ptr(window.Fraction(tod.Minutes()))
}

// minuteOfDay converts t to minutes since the start of day's calendar date, in day's
// location. Instants before that date map to 0 and after it to MinutesPerDay.
func minuteOfDay(day, t time.Time) int {
	d := carbon.CreateFromStdTime(day).ToDateString()
	c := carbon.CreateFromStdTime(t.In(day.Location()))

	// Both dates are rendered in day's location, so "2006-01-02" strings order like
	// the dates themselves.
	switch date := c.ToDateString(); {
	case date < d:
		return 0
	case date > d:
		return MinutesPerDay
	}
	return c.Hour()*MinutesPerHour + c.Minute()
}
