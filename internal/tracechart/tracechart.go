// Package tracechart renders code width traces as SVG charts.
package tracechart

import (
	"errors"
	"io"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"
)

var errEmptyTrace = errors.New("tracechart: empty width trace")

// Steps returns the points where the width changes, plus the first and the last code.
// Each change is preceded by the last code at the previous width,
// so the series draws as a step function.
func Steps(widths []uint8) (xs, ys []int) {
	if len(widths) == 0 {
		return nil, nil
	}
	xs = append(xs, 0)
	ys = append(ys, int(widths[0]))
	for i := 1; i < len(widths); i++ {
		if widths[i] == widths[i-1] {
			continue
		}
		if xs[len(xs)-1] != i-1 {
			xs = append(xs, i-1)
			ys = append(ys, int(widths[i-1]))
		}
		xs = append(xs, i)
		ys = append(ys, int(widths[i]))
	}
	last := len(widths) - 1
	if xs[len(xs)-1] != last {
		xs = append(xs, last)
		ys = append(ys, int(widths[last]))
	}
	return xs, ys
}

// Render writes an SVG chart of widths to w.
func Render(w io.Writer, title string, widths []uint8) error {
	xs, ys := Steps(widths)
	if len(xs) == 0 {
		return errEmptyTrace
	}
	if len(xs) == 1 {
		// A single code still needs a line.
		xs = append(xs, 1)
		ys = append(ys, ys[0])
	}
	toFloat := func(v int, _ int) float64 { return float64(v) }
	maxY := lo.Max(ys)
	minY := lo.Min(ys)

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{
			Name:  "code",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(xs[len(xs)-1])},
		},
		YAxis: chart.YAxis{
			Name:  "width (bits)",
			Range: &chart.ContinuousRange{Min: float64(minY - 1), Max: float64(maxY + 1)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "width",
				XValues: lo.Map(xs, toFloat),
				YValues: lo.Map(ys, toFloat),
			},
		},
	}
	return graph.Render(chart.SVG, w)
}
