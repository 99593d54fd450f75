package rtcstats

import (
	"strings"
	"testing"
)

func TestDefaultStyleRules_FragmentsAreLowercase(t *testing.T) {
	for _, r := range DefaultStyleRules() {
		if r.Match != strings.ToLower(r.Match) {
			t.Fatalf("fragment not lowercase: %q", r.Match)
		}
		if r.Title == "" || r.Color == "" || r.Unit == "" {
			t.Fatalf("incomplete rule: %+v", r)
		}
	}
}

func TestMatchRule_FirstMatchWins(t *testing.T) {
	rules := DefaultStyleRules()
	// Name contains both framespersecond and frameheight fragments; the
	// earlier rule must win regardless of name layout.
	ri, ok := matchRule("frameHeight_framesPerSecond", rules)
	if !ok {
		t.Fatalf("expected a match")
	}
	if rules[ri].Match != "framespersecond" {
		t.Fatalf("expected framespersecond to win, got %q", rules[ri].Match)
	}
}

func TestMatchRule_NoMatch(t *testing.T) {
	if _, ok := matchRule("packetsLost", DefaultStyleRules()); ok {
		t.Fatalf("expected no match for packetsLost")
	}
}
