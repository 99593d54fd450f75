package rtcstats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Metric is one extracted time series ready for display.
// Invariant: len(Times) == len(Values) >= 2; Times spans [start, end] of the
// source entry with evenly interpolated intermediate samples.
type Metric struct {
	Title   string
	Unit    string
	Color   string
	Times   []time.Time
	Values  []float64
	Average float64
}

// rawEntry mirrors the per-metric object of a webrtc-internals export. The
// values field is itself a string holding a bracketed numeric list.
type rawEntry struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Values    string `json:"values"`
	StatsType string `json:"statsType"`
}

// GatherMetrics reads a webrtc-internals JSON export and extracts one Metric
// per entry whose name matches a style rule. A file read or top-level parse
// failure is fatal; per-entry problems are logged and the entry skipped, so
// extraction always returns whatever valid metrics were found.
func GatherMetrics(path string, rules []StyleRule) ([]Metric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseMetrics(data, rules)
}

// ParseMetrics extracts metrics from raw export bytes. Some exports wrap the
// top-level object in a single-element array; that wrapper is unwrapped first.
func ParseMetrics(data []byte, rules []StyleRule) ([]Metric, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(data, &arr); err != nil {
			return nil, fmt.Errorf("parse export: %w", err)
		}
		if len(arr) != 1 {
			return nil, fmt.Errorf("parse export: expected one wrapped object, got %d elements", len(arr))
		}
		data = arr[0]
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	// Map iteration order is randomized, so pick matches first and order them
	// by rule, then name. Charts come out grouped by kind and stable across
	// runs.
	type pick struct {
		name string
		rule int
	}
	picks := make([]pick, 0, len(entries))
	for name := range entries {
		if ri, ok := matchRule(name, rules); ok {
			picks = append(picks, pick{name: name, rule: ri})
		}
	}
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].rule != picks[j].rule {
			return picks[i].rule < picks[j].rule
		}
		return picks[i].name < picks[j].name
	})

	metrics := make([]Metric, 0, len(picks))
	for _, p := range picks {
		rule := rules[p.rule]
		var ent rawEntry
		if err := json.Unmarshal(entries[p.name], &ent); err != nil {
			Warnf("skipping %s: malformed entry: %v", p.name, err)
			continue
		}
		start, err := parseTime(ent.StartTime)
		if err != nil {
			Warnf("skipping %s: bad startTime %q: %v", p.name, ent.StartTime, err)
			continue
		}
		end, err := parseTime(ent.EndTime)
		if err != nil {
			Warnf("skipping %s: bad endTime %q: %v", p.name, ent.EndTime, err)
			continue
		}
		values, err := parseValues(ent.Values)
		if err != nil {
			Warnf("skipping %s: bad values: %v", p.name, err)
			continue
		}
		if len(values) < 2 {
			Debugf("skipping %s: %d sample(s), need at least 2", p.name, len(values))
			continue
		}
		title := rule.Title
		if rule.Match == "roundtriptime" && ent.StatsType != "" {
			title = fmt.Sprintf("%s (%s)", title, ent.StatsType)
		}
		metrics = append(metrics, Metric{
			Title:   title,
			Unit:    rule.Unit,
			Color:   rule.Color,
			Times:   timeAxis(start, end, len(values)),
			Values:  values,
			Average: mean(values),
		})
	}
	return metrics, nil
}

// matchRule returns the index of the first rule whose fragment is contained in
// the lowercased name.
func matchRule(name string, rules []StyleRule) (int, bool) {
	lower := strings.ToLower(name)
	for i, r := range rules {
		if strings.Contains(lower, r.Match) {
			return i, true
		}
	}
	return 0, false
}

// timeLayouts accepted for startTime/endTime. Exports carry RFC3339 with a
// trailing "Z"; some tooling drops the zone entirely, in which case UTC is
// assumed.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// parseValues decodes the string-encoded numeric list, e.g. "[1, 2.5, 3]".
func parseValues(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty value list")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// timeAxis spreads n samples evenly across [start, end]. Endpoints are assigned
// exactly rather than computed, so they never drift from the source interval.
func timeAxis(start, end time.Time, n int) []time.Time {
	span := end.Sub(start)
	axis := make([]time.Time, n)
	axis[0] = start
	for i := 1; i < n-1; i++ {
		axis[i] = start.Add(time.Duration(float64(span) * float64(i) / float64(n-1)))
	}
	axis[n-1] = end
	return axis
}

func mean(vs []float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
