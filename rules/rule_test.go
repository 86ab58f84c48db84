package rules

import (
	"errors"
	"testing"
)

func TestConwayApply(t *testing.T) {
	rule := Conway()

	cases := []struct {
		neighbors int
		alive     bool
		want      bool
	}{
		{0, true, false},
		{1, true, false},
		{2, true, true},
		{3, true, true},
		{4, true, false},
		{8, true, false},
		{2, false, false},
		{3, false, true},
		{4, false, false},
	}
	for _, tc := range cases {
		if got := rule.Apply(tc.neighbors, tc.alive); got != tc.want {
			t.Fatalf("Apply(%d, %v) = %v, want %v", tc.neighbors, tc.alive, got, tc.want)
		}
	}
}

func TestHighLifeApply(t *testing.T) {
	rule := HighLife()

	if !rule.Apply(6, false) {
		t.Fatal("Apply(6, false) = false, want true under B36/S23")
	}
	if rule.Apply(6, true) {
		t.Fatal("Apply(6, true) = true, want false under B36/S23")
	}
}

func TestParseRoundTrip(t *testing.T) {
	rule, err := Parse("B3/S23")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rule.Name() != "B3/S23" {
		t.Fatalf("Name() = %q, want %q", rule.Name(), "B3/S23")
	}
}

func TestParseRejectsMalformedRulestrings(t *testing.T) {
	for _, s := range []string{"", "B3S23", "X3/S23", "B3/Z23", "B9/S23", "B3/S2a"} {
		if _, err := Parse(s); !errors.Is(err, ErrBadRuleString) {
			t.Fatalf("Parse(%q) err = %v, want ErrBadRuleString", s, err)
		}
	}
}

func TestApplyOutOfRangeNeighborCounts(t *testing.T) {
	rule := Conway()
	if rule.Apply(-1, true) || rule.Apply(9, true) {
		t.Fatal("out-of-range neighbor counts must never keep a cell alive")
	}
}
