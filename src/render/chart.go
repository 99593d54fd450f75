package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kmalekinasab/webrtc-evaluation/src/rtcstats"
)

// MetricChart renders one metric as a filled time-series chart with a dashed
// average reference line. Charts are meant to be stacked vertically; only the
// bottom one renders the shared time axis, the rest pass bottom=false to
// suppress it.
func MetricChart(m rtcstats.Metric, width, height int, bottom bool) image.Image {
	col := seriesColor(m.Color)
	last := len(m.Times) - 1
	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Data",
			XValues: m.Times,
			YValues: m.Values,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				FillColor:   col.WithAlpha(51),
			},
		},
		chart.TimeSeries{
			Name:    fmt.Sprintf("Avg: %.2f", m.Average),
			XValues: []time.Time{m.Times[0], m.Times[last]},
			YValues: []float64{m.Average, m.Average},
			Style: chart.Style{
				StrokeColor:     chart.ColorAlternateGray,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
	}
	xAxis := chart.XAxis{Style: chart.Hidden()}
	padBottom := 12
	if bottom {
		xAxis = chart.XAxis{
			Name:  "Time",
			Ticks: timeTicks(m.Times[0], m.Times[last]),
		}
		padBottom = 28
	}
	ch := chart.Chart{
		Title:      m.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: padBottom}},
		XAxis:      xAxis,
		YAxis: chart.YAxis{
			Name:  m.Unit,
			Range: &chart.ContinuousRange{Min: 0, Max: yAxisMax(m.Values)},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		rtcstats.Errorf("chart render failed for %s: %v", m.Title, err)
		return DrawNotice(Blank(width, height), fmt.Sprintf("render error: %s", m.Title))
	}
	img, err := png.Decode(&buf)
	if err != nil {
		rtcstats.Errorf("chart decode failed for %s: %v", m.Title, err)
		return DrawNotice(Blank(width, height), fmt.Sprintf("decode error: %s", m.Title))
	}
	return img
}

// yAxisMax forces the y-range to [0, 1.2*max]. Auto-scaling would hide the
// zero baseline and exaggerate noise on near-constant series like frame
// dimensions.
func yAxisMax(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return 1
	}
	return max * 1.2
}

// timeTicks labels the shared axis hour:minute across the metric's span.
func timeTicks(minT, maxT time.Time) []chart.Tick {
	span := maxT.Sub(minT)
	if span <= 0 {
		span = time.Minute
	}
	step := span / 6
	if step < time.Second {
		step = time.Second
	}
	ticks := make([]chart.Tick, 0, 8)
	for t := minT; t.Before(maxT); t = t.Add(step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Format("15:04")})
	}
	ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(maxT), Label: maxT.Format("15:04")})
	return ticks
}

func seriesColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
