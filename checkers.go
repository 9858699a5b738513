package daygrid

import (
	"errors"
	"fmt"
	"time"

	"github.com/JacekPodanowski/ZPI-sub002/internal"
	"github.com/JacekPodanowski/ZPI-sub002/internal/grid"
	"github.com/JacekPodanowski/ZPI-sub002/types"
)

// ConditionCheck is the outcome of validating one part of a RendererRequest.
type ConditionCheck struct {
	fail bool
	err  error
}

func (c ConditionCheck) Failed() bool {
	return c.fail
}

func (c ConditionCheck) Err() error {
	return c.err
}

func failed(err error) ConditionCheck {
	return ConditionCheck{fail: true, err: err}
}

func CheckOperatingHours(startHour, endHour int) ConditionCheck {
	cc := ConditionCheck{fail: false}
	r := grid.OperatingRange{StartHour: startHour, EndHour: endHour}
	if err := r.Validate(); err != nil {
		return failed(fmt.Errorf("operating hours: %w", err))
	}
	return cc
}

func CheckPadding(s types.DurationString) ConditionCheck {
	cc := ConditionCheck{fail: false}
	if _, err := paddingMinutes(s); err != nil {
		return failed(err)
	}
	return cc
}

// CheckCoordinates passes when both coordinates are unset, or both are set and in range.
func CheckCoordinates(latitude, longitude *float64) ConditionCheck {
	cc := ConditionCheck{fail: false}
	switch {
	case latitude == nil && longitude == nil:
		return cc
	case latitude == nil || longitude == nil:
		return failed(errors.New("latitude and longitude must be set together"))
	case *latitude < -90 || *latitude > 90:
		return failed(fmt.Errorf("latitude %v must be between -90 and 90", *latitude))
	case *longitude < -180 || *longitude > 180:
		return failed(fmt.Errorf("longitude %v must be between -180 and 180", *longitude))
	}
	return cc
}

// paddingMinutes converts a padding duration into whole minutes. Padding larger than
// a day is clamped, since the window can never exceed it.
func paddingMinutes(s types.DurationString) (int, error) {
	d, err := internal.ParseDuration(string(s))
	if err != nil {
		return 0, fmt.Errorf("padding: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("padding %s must not be negative", s)
	}
	if d%time.Minute != 0 {
		return 0, fmt.Errorf("padding %s must be a whole number of minutes", s)
	}
	return internal.Clamp(int(d/time.Minute), 0, grid.MinutesPerDay), nil
}
