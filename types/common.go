package types

import (
	"fmt"
	"time"
)

// DurationString represents a duration, such as "30m" or "1h".
// See https://pkg.go.dev/time#ParseDuration for all valid time units.
type DurationString string

// TimeString is a 24-hr format time "HH:MM" or "HH:MM:SS" such as "07:30".
type TimeString string

// ItemKind tells a fixed appointment apart from an open availability window.
type ItemKind string

const (
	Event        ItemKind = "event"
	Availability ItemKind = "availability"
)

func (k ItemKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k ItemKind) Valid() bool {
	return k == Event || k == Availability
}

// UnmarshalText accepts the kind names case-sensitively. An empty value means Event.
func (k *ItemKind) UnmarshalText(text []byte) error {
	v := ItemKind(text)
	if v == "" {
		v = Event
	}
	if !v.Valid() {
		return fmt.Errorf("unknown item kind %q", text)
	}
	*k = v
	return nil
}

// ItemSpec is the decoded, still unparsed form of a scheduled item, as it arrives
// from a YAML or JSON document.
type ItemSpec struct {
	ID    string     `yaml:"id" json:"id"`
	Start TimeString `yaml:"start" json:"start"`
	End   TimeString `yaml:"end" json:"end"`
	Kind  ItemKind   `yaml:"kind" json:"kind"`
	// Payload is carried through untouched.
	Payload any `yaml:"payload,omitempty" json:"payload,omitempty"`
}

// TimeRange represents a time range with start and end times.
type TimeRange struct {
	Start time.Time
	End   time.Time
}
