package types

import "time"

// RendererRequest contains the configuration for creating a new Renderer.
type RendererRequest struct {
	// Required
	// First operating hour shown when not zooming to fit, 0-23.
	StartHour int `yaml:"start_hour"`

	// Required
	// Hour the operating range ends at, 1-24. Must be greater than StartHour.
	EndHour int `yaml:"end_hour"`

	// Optional
	// Shrink the window to the padded extents of the day's items.
	ZoomToFit bool `yaml:"zoom_to_fit"`

	// Optional
	// Padding added on each side of the items when zooming to fit.
	// Defaults to "1h". Must be a whole, non-negative number of minutes.
	Padding DurationString `yaml:"padding"`

	// Optional
	// Coordinates used to compute the daylight band. Both or neither must be set.
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`

	// Optional
	// Clock used for the "now" marker. When nil no marker is produced.
	Now func() time.Time `yaml:"-"`
}
