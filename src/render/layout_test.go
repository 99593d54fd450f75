package render

import "testing"

func TestChartSize_Clamps(t *testing.T) {
	cases := []struct {
		name       string
		rawW       int
		wantW      int
		minH, maxH int
	}{
		{"narrow", 300, 800, 220, 420},
		{"typical", 1100, 1100, 220, 420},
		{"wide", 2400, 2400, 220, 420},
	}
	for _, c := range cases {
		w, h := ChartSize(c.rawW)
		if w != c.wantW {
			t.Fatalf("%s: width got %d want %d", c.name, w, c.wantW)
		}
		if h < c.minH || h > c.maxH {
			t.Fatalf("%s: height %d outside [%d,%d]", c.name, h, c.minH, c.maxH)
		}
	}
}
