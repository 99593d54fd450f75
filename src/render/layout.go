package render

// ChartSize clamps chart dimensions derived from the available window width so
// stacked charts stay readable at any window size.
func ChartSize(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.28)
	if h < 220 {
		h = 220
	}
	if h > 420 {
		h = 420
	}
	return w, h
}
