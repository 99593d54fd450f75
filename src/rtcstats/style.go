package rtcstats

// StyleRule maps a lowercase metric-name fragment to display attributes.
// Rules are matched in order against the lowercased metric name and the first
// fragment contained in the name wins, so overlapping fragments resolve
// deterministically.
type StyleRule struct {
	Match string // lowercase fragment searched for in the metric name
	Title string
	Color string // hex, "#rrggbb"
	Unit  string // y-axis unit label
}

// DefaultStyleRules returns the built-in display configuration covering the
// metrics worth charting from a webrtc-internals export.
func DefaultStyleRules() []StyleRule {
	return []StyleRule{
		{Match: "roundtriptime", Title: "Round Trip Time", Color: "#f39c12", Unit: "ms"},
		{Match: "jitter", Title: "Jitter", Color: "#c0392b", Unit: "ms"},
		{Match: "bitrate", Title: "Bitrate (Ms)", Color: "#8e44ad", Unit: "Kbit/s"},
		{Match: "framespersecond", Title: "Frames Per Second", Color: "#2980b9", Unit: "fps"},
		{Match: "framewidth", Title: "Frame Width", Color: "#27ae60", Unit: "pixels"},
		{Match: "frameheight", Title: "Frame Height", Color: "#2c3e50", Unit: "pixels"},
		{Match: "framesdecoded/s", Title: "Frames Decoded per Second", Color: "#27ae60", Unit: "frames/s"},
	}
}
