package internal

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrClockFormat = errors.New("format must be HH:MM or HH:MM:SS")
	ErrClockRange  = errors.New("value out of range")
)

// ParseClock parses a HH:MM or HH:MM:SS string into its numeric fields.
// Every field must be exactly two digits. Hours are 0-23, minutes and seconds 0-59.
func ParseClock(s string) (hour, minute, second int, err error) {
	switch len(s) {
	case 5, 8:
	default:
		return 0, 0, 0, fmt.Errorf("parse clock %q: %w", s, ErrClockFormat)
	}

	fields := [3]int{}
	n := (len(s) + 1) / 3
	for i := 0; i < n; i++ {
		off := i * 3
		if i > 0 && s[off-1] != ':' {
			return 0, 0, 0, fmt.Errorf("parse clock %q: %w", s, ErrClockFormat)
		}
		v, ok := twoDigits(s[off], s[off+1])
		if !ok {
			return 0, 0, 0, fmt.Errorf("parse clock %q: %w", s, ErrClockFormat)
		}
		fields[i] = v
	}

	hour, minute, second = fields[0], fields[1], fields[2]
	if hour > 23 {
		return 0, 0, 0, fmt.Errorf("parse clock %q: hour %d: %w", s, hour, ErrClockRange)
	}
	if minute > 59 {
		return 0, 0, 0, fmt.Errorf("parse clock %q: minute %d: %w", s, minute, ErrClockRange)
	}
	if second > 59 {
		return 0, 0, 0, fmt.Errorf("parse clock %q: second %d: %w", s, second, ErrClockRange)
	}
	return hour, minute, second, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// ParseDuration parses a duration string such as "30m" or "1h".
func ParseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("couldn't parse string duration: \"%s\" see https://pkg.go.dev/time#ParseDuration for valid time units: %w", s, err)
	}
	return d, nil
}
