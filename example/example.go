package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/golang-cz/devslog"
	"gopkg.in/yaml.v3"

	daygrid "github.com/JacekPodanowski/ZPI-sub002"
	"github.com/JacekPodanowski/ZPI-sub002/types"
)

type dayFile struct {
	Renderer daygrid.RendererRequest `yaml:"renderer"`
	Items    []types.ItemSpec        `yaml:"items"`
}

func main() {
	path := flag.String("file", "day.yaml", "YAML file with the renderer request and items")
	date := flag.String("date", time.Now().Format(time.DateOnly), "day to render (YYYY-MM-DD)")
	flag.Parse()

	slog.SetDefault(slog.New(devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: slog.LevelDebug},
	})))

	day, err := time.ParseInLocation(time.DateOnly, *date, time.Local)
	if err != nil {
		slog.Error("Invalid date", "date", *date, "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		slog.Error("Error reading day file", "path", *path, "error", err)
		os.Exit(1)
	}

	var f dayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		slog.Error("Error decoding day file", "path", *path, "error", err)
		os.Exit(1)
	}
	f.Renderer.Now = time.Now

	renderer, err := daygrid.NewRenderer(f.Renderer)
	if err != nil {
		slog.Error("Error creating renderer", "error", err)
		os.Exit(1)
	}

	layout, err := renderer.Render(day, daygrid.ItemsFromSpecs(f.Items)...)
	if err != nil {
		slog.Error("Error rendering day", "error", err)
		os.Exit(1)
	}

	slog.Info("Rendered day",
		"window", layout.Window.String(),
		"items", len(layout.Descriptors),
		"skipped", len(layout.Skipped),
	)
	fmt.Print(draw(layout, 48, 80))
}

// draw renders layout as text, rows tall and cols wide.
func draw(layout *daygrid.DayLayout, rows, cols int) string {
	const gutter = 6

	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", gutter+cols))
	}

	if layout.Daylight != nil {
		from, to := rowRange(layout.Daylight.TopFraction, layout.Daylight.HeightFraction, rows)
		for r := from; r < to; r++ {
			canvas[r][gutter-1] = '|'
		}
	}

	for _, m := range layout.HourMarks {
		r := min(int(m.Fraction*float64(rows)), rows-1)
		copy(canvas[r], []rune(m.Label))
	}

	var outside []string
	for _, d := range layout.Descriptors {
		if d.Outside {
			outside = append(outside, d.ItemID)
			continue
		}
		width := cols / d.ColumnCount
		left := gutter + d.Column*width
		from, to := rowRange(d.TopFraction, d.HeightFraction, rows)

		fill := '#'
		if d.Kind == types.Availability {
			fill = '.'
		}
		for r := from; r < to; r++ {
			for c := left + 1; c < left+width-1; c++ {
				canvas[r][c] = fill
			}
		}
		label := []rune(d.ItemID)
		if len(label) > width-2 {
			label = label[:max(width-2, 0)]
		}
		copy(canvas[from][left+1:], label)
	}

	if layout.NowFraction != nil {
		r := min(int(*layout.NowFraction*float64(rows)), rows-1)
		for c := gutter; c < gutter+cols; c++ {
			if canvas[r][c] == ' ' {
				canvas[r][c] = '-'
			}
		}
	}

	var b strings.Builder
	for _, line := range canvas {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	if len(outside) > 0 {
		fmt.Fprintf(&b, "outside the window: %s\n", strings.Join(outside, ", "))
	}
	for _, s := range layout.Skipped {
		fmt.Fprintf(&b, "skipped %s: %v\n", s.ItemID, s.Reason)
	}
	return b.String()
}

func rowRange(top, height float64, rows int) (int, int) {
	from := min(int(top*float64(rows)), rows-1)
	to := max(min(int((top+height)*float64(rows)), rows), from+1)
	return from, to
}
