package render

import (
	"testing"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/kmalekinasab/webrtc-evaluation/src/rtcstats"
)

func testMetric() rtcstats.Metric {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return rtcstats.Metric{
		Title:   "Jitter",
		Unit:    "ms",
		Color:   "#c0392b",
		Times:   []time.Time{start, start.Add(5 * time.Second), start.Add(10 * time.Second)},
		Values:  []float64{10, 20, 30},
		Average: 20,
	}
}

func TestMetricChart_RendersAtRequestedSize(t *testing.T) {
	for _, bottom := range []bool{false, true} {
		img := MetricChart(testMetric(), 800, 300, bottom)
		if img == nil {
			t.Fatalf("bottom=%v: nil image", bottom)
		}
		b := img.Bounds()
		if b.Dx() != 800 || b.Dy() != 300 {
			t.Fatalf("bottom=%v: got %dx%d want 800x300", bottom, b.Dx(), b.Dy())
		}
	}
}

func TestYAxisMax_FixedHeadroom(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"positive", []float64{10, 30, 20}, 36},
		{"allzero", []float64{0, 0}, 1},
		{"negative", []float64{-5, -1}, 1},
	}
	for _, c := range cases {
		if got := yAxisMax(c.values); got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestTimeTicks_SpanEndpoints(t *testing.T) {
	minT := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	maxT := minT.Add(10 * time.Minute)
	ticks := timeTicks(minT, maxT)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	if ticks[0].Value != chart.TimeToFloat64(minT) {
		t.Fatalf("first tick not at span start")
	}
	if ticks[len(ticks)-1].Value != chart.TimeToFloat64(maxT) {
		t.Fatalf("last tick not at span end")
	}
	if ticks[0].Label != "12:00" || ticks[len(ticks)-1].Label != "12:10" {
		t.Fatalf("unexpected labels: first=%q last=%q", ticks[0].Label, ticks[len(ticks)-1].Label)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value < ticks[i-1].Value {
			t.Fatalf("ticks not sorted at %d", i)
		}
	}
}

func TestDrawNotice_PreservesBounds(t *testing.T) {
	img := DrawNotice(Blank(200, 100), "no matching metrics")
	if img == nil {
		t.Fatalf("nil image")
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("got %dx%d want 200x100", b.Dx(), b.Dy())
	}
	if out := DrawNotice(Blank(10, 10), "  "); out == nil {
		t.Fatalf("blank text must return the input image")
	}
}
