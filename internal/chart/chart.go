// Package chart renders the thesis figures as static PNG files: the
// vision-classification pie chart and the correct-answers-per-case
// grouped bar chart.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Slice is one wedge of a pie chart.
type Slice struct {
	Label string
	Value float64
}

// Bar is one bar of a bar chart.
type Bar struct {
	Label string
	Value float64
	Hex   string // fill color, e.g. "6BAED6"; empty uses the default palette
}

// Group colors matching the original figures.
const (
	HexLikelyColorBlind = "6BAED6"
	HexNormalVision     = "FDAE6B"
)

// RenderPie writes a pie chart PNG. Zero-value slices are dropped since
// the renderer cannot draw an empty wedge.
func RenderPie(w io.Writer, title string, slices []Slice) error {
	var values []chart.Value
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{Label: s.Label, Value: s.Value})
	}
	if len(values) == 0 {
		return fmt.Errorf("pie chart %q: no non-zero slices", title)
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  600,
		Height: 600,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// RenderBars writes a bar chart PNG.
func RenderBars(w io.Writer, title string, bars []Bar) error {
	if len(bars) == 0 {
		return fmt.Errorf("bar chart %q: no bars", title)
	}

	values := make([]chart.Value, 0, len(bars))
	for _, b := range bars {
		v := chart.Value{Label: b.Label, Value: b.Value}
		if b.Hex != "" {
			v.Style = chart.Style{
				FillColor:   drawing.ColorFromHex(b.Hex),
				StrokeColor: drawing.ColorFromHex(b.Hex),
			}
		}
		values = append(values, v)
	}

	bar := chart.BarChart{
		Title:    title,
		Width:    200 * len(values),
		Height:   500,
		BarWidth: 50,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: values,
	}
	if err := bar.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// WriteFile renders with fn into a newly created file at path.
func WriteFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
