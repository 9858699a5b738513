// Package daygrid lays out the items of a single day for a calendar view: it picks
// the visible window of the day and places every item on a grid, vertically by time
// and horizontally in columns when items overlap.
//
//	r, err := daygrid.NewRenderer(daygrid.RendererRequest{StartHour: 6, EndHour: 22, ZoomToFit: true})
//	layout, err := r.Render(day,
//		daygrid.NewItem().ID("standup").Between("09:00", "09:15").Build(),
//		daygrid.NewItem().ID("open").Between("13:00", "17:00").Availability().Build(),
//	)
package daygrid

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JacekPodanowski/ZPI-sub002/internal/grid"
	"github.com/JacekPodanowski/ZPI-sub002/types"
)

var ErrInvalidArgs = errors.New("invalid arguments provided")

type (
	RendererRequest = types.RendererRequest

	DisplayWindow        = grid.DisplayWindow
	LayoutDescriptor     = grid.LayoutDescriptor
	SkippedItem          = grid.SkippedItem
	HourMark             = grid.HourMark
	Band                 = grid.Band
	ParseError           = grid.ParseError
	InvalidIntervalError = grid.InvalidIntervalError
	DuplicateIDError     = grid.DuplicateIDError
)

var (
	ErrParse           = grid.ErrParse
	ErrInvalidInterval = grid.ErrInvalidInterval
	ErrDuplicateID     = grid.ErrDuplicateID
	ErrMissingID       = grid.ErrMissingID
)

const (
	MaxColumns        = grid.MaxColumns
	FallbackColumn    = grid.FallbackColumn
	MinVisibleMinutes = grid.MinVisibleMinutes
)

// Renderer computes day layouts. It holds only its validated configuration and is
// safe for concurrent use.
type Renderer struct {
	operating      grid.OperatingRange
	zoomToFit      bool
	paddingMinutes int

	coordinates *coordinates
	now         func() time.Time
}

type coordinates struct {
	latitude  float64
	longitude float64
}

// DayLayout is the result of rendering one day.
type DayLayout struct {
	Window      DisplayWindow
	Descriptors []LayoutDescriptor
	// Skipped lists the items left out because a time did not parse.
	Skipped   []SkippedItem
	HourMarks []HourMark
	// Daylight is nil unless the renderer has coordinates and the sun is up
	// during the window.
	Daylight *Band
	// NowFraction is nil unless the renderer has a clock and "now" falls inside
	// the window on the rendered day.
	NowFraction *float64
}

// Get returns the descriptor of the item with the given id.
func (l *DayLayout) Get(id string) (LayoutDescriptor, bool) {
	for _, d := range l.Descriptors {
		if d.ItemID == id {
			return d, true
		}
	}
	return LayoutDescriptor{}, false
}

// NewRenderer validates request and returns a Renderer for it.
func NewRenderer(request RendererRequest) (*Renderer, error) {
	if request.Padding == "" {
		request.Padding = "1h"
	}

	checks := []ConditionCheck{
		CheckOperatingHours(request.StartHour, request.EndHour),
		CheckPadding(request.Padding),
		CheckCoordinates(request.Latitude, request.Longitude),
	}
	for _, c := range checks {
		if c.fail {
			slog.Error("Invalid renderer request", "error", c.err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, c.err)
		}
	}

	padding, _ := paddingMinutes(request.Padding)

	r := &Renderer{
		operating:      grid.OperatingRange{StartHour: request.StartHour, EndHour: request.EndHour},
		zoomToFit:      request.ZoomToFit,
		paddingMinutes: padding,
		now:            request.Now,
	}
	if request.Latitude != nil {
		r.coordinates = &coordinates{latitude: *request.Latitude, longitude: *request.Longitude}
	}
	return r, nil
}

// Render lays out items for day. Only day's calendar date and location are used.
//
// Items whose times do not parse are left out and reported in DayLayout.Skipped.
// Duplicate ids, missing ids and items that end before they start fail the whole call.
func (r *Renderer) Render(day time.Time, items ...Item) (*DayLayout, error) {
	builder := grid.NewItemSet()
	for _, item := range items {
		builder.Add(item.spec())
	}

	set, err := builder.Build()
	if err != nil {
		slog.Debug("Rejecting items", "day", day.Format(time.DateOnly), "error", err)
		return nil, err
	}

	for _, s := range set.Skipped {
		slog.Warn("Skipping item with unparseable time", "item", s.ItemID, "error", s.Reason)
	}

	window := grid.ResolveWindow(set.Items, r.operating, r.zoomToFit, r.paddingMinutes)

	layout := &DayLayout{
		Window:      window,
		Descriptors: grid.Layout(set.Items, window),
		Skipped:     set.Skipped,
		HourMarks:   window.HourMarks(),
	}
	if r.coordinates != nil {
		layout.Daylight = grid.DaylightBand(day, r.coordinates.latitude, r.coordinates.longitude, window)
	}
	if r.now != nil {
		layout.NowFraction = grid.NowFraction(day, r.now(), window)
	}
	return layout, nil
}
