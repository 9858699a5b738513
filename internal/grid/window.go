package grid

import (
	"fmt"

	"github.com/JacekPodanowski/ZPI-sub002/internal"
)

// DefaultPaddingMinutes is the space kept on each side of the items when zooming to fit.
const DefaultPaddingMinutes = 60

// OperatingRange is the pair of whole hours shown when not zooming to fit.
type OperatingRange struct {
	StartHour int // 0-23
	EndHour   int // 1-24
}

// Validate checks that both hours lie in 0-24 and that the range is not empty.
func (r OperatingRange) Validate() error {
	if r.StartHour < 0 || r.StartHour > 24 {
		return fmt.Errorf("start hour %d must be between 0 and 24", r.StartHour)
	}
	if r.EndHour < 0 || r.EndHour > 24 {
		return fmt.Errorf("end hour %d must be between 0 and 24", r.EndHour)
	}
	if r.EndHour <= r.StartHour {
		return fmt.Errorf("end hour %d must be after start hour %d", r.EndHour, r.StartHour)
	}
	return nil
}

// Window returns the operating range as a display window.
func (r OperatingRange) Window() DisplayWindow {
	return DisplayWindow{
		StartMinutes: r.StartHour * MinutesPerHour,
		EndMinutes:   r.EndHour * MinutesPerHour,
	}
}

// DisplayWindow is the rendered part of the day in minutes since midnight.
// Both bounds fall on whole hours.
type DisplayWindow struct {
	StartMinutes int
	EndMinutes   int
}

// Span returns the length of the window in minutes.
func (w DisplayWindow) Span() int {
	return w.EndMinutes - w.StartMinutes
}

// Fraction maps a minute of the day to its position within the window.
// Minutes outside the window map outside [0,1].
func (w DisplayWindow) Fraction(minute int) float64 {
	return float64(minute-w.StartMinutes) / float64(w.Span())
}

// Contains reports whether minute lies within [start, end].
func (w DisplayWindow) Contains(minute int) bool {
	return minute >= w.StartMinutes && minute <= w.EndMinutes
}

func (w DisplayWindow) String() string {
	return fmt.Sprintf("%s-%s", formatMinutes(w.StartMinutes), formatMinutes(w.EndMinutes))
}

// HourMark is a whole-hour grid line within a window.
type HourMark struct {
	Hour     int
	Label    string
	Fraction float64
}

// HourMarks returns one mark per whole hour from the window start to its end, inclusive.
func (w DisplayWindow) HourMarks() []HourMark {
	first := internal.CeilTo(w.StartMinutes, MinutesPerHour)
	var marks []HourMark
	for m := first; m <= w.EndMinutes; m += MinutesPerHour {
		marks = append(marks, HourMark{
			Hour:     m / MinutesPerHour,
			Label:    formatMinutes(m),
			Fraction: w.Fraction(m),
		})
	}
	return marks
}

// ResolveWindow picks the visible part of the day.
//
// Without zoomToFit, or without items, the operating range is used as is. Otherwise
// the window spans the earliest start to the latest end, widened by paddingMinutes
// on both sides, clamped to the day and aligned outwards to whole hours. The result
// always contains every item and spans at least one hour.
func ResolveWindow(items []ScheduledItem, operating OperatingRange, zoomToFit bool, paddingMinutes int) DisplayWindow {
	if !zoomToFit || len(items) == 0 {
		return operating.Window()
	}

	earliest, latest := items[0].Start.Minutes(), items[0].End.Minutes()
	for _, item := range items[1:] {
		earliest = min(earliest, item.Start.Minutes())
		latest = max(latest, item.End.Minutes())
	}
	// Degenerate items may end before they start.
	latest = max(latest, earliest)

	start := internal.FloorTo(internal.Clamp(earliest-paddingMinutes, 0, MinutesPerDay), MinutesPerHour)
	end := internal.CeilTo(internal.Clamp(latest+paddingMinutes, 0, MinutesPerDay), MinutesPerHour)

	if end-start < MinutesPerHour {
		end = start + MinutesPerHour
		if end > MinutesPerDay {
			end = MinutesPerDay
			start = end - MinutesPerHour
		}
	}

	return DisplayWindow{StartMinutes: start, EndMinutes: end}
}
