package proforma

import (
	"testing"
	"time"
)

func TestCompletionDateDefaultsToFractionOfHorizon(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	got := engine.completionDate(date(2026, time.January), 12, nil)
	if want := date(2026, time.November); !got.Equal(want) {
		t.Errorf("12-month horizon completion = %v, want %v", got, want)
	}

	got = engine.completionDate(date(2026, time.January), 6, nil)
	// ceil(0.8x6) = 5 months.
	if want := date(2026, time.June); !got.Equal(want) {
		t.Errorf("6-month horizon completion = %v, want %v", got, want)
	}
}

func TestCompletionDateExplicitOverrideNormalized(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	explicit := time.Date(2026, time.September, 17, 14, 30, 0, 0, time.UTC)

	got := engine.completionDate(date(2026, time.January), 12, &explicit)
	if want := date(2026, time.September); !got.Equal(want) {
		t.Errorf("explicit completion = %v, want %v", got, want)
	}
}

func TestConstructionMonthCount(t *testing.T) {
	cases := []struct {
		start      time.Time
		completion time.Time
		want       int
	}{
		{date(2026, time.January), date(2026, time.November), 10},
		{date(2026, time.March), date(2027, time.January), 10},
		{date(2026, time.January), date(2026, time.February), 1},
		// Completion at or before start still yields one month.
		{date(2026, time.January), date(2026, time.January), 1},
		{date(2026, time.June), date(2026, time.January), 1},
	}
	for _, tc := range cases {
		if got := constructionMonthCount(tc.start, tc.completion); got != tc.want {
			t.Errorf("constructionMonthCount(%v, %v) = %d, want %d", tc.start, tc.completion, got, tc.want)
		}
	}
}

func TestClassifyBoundary(t *testing.T) {
	completion := date(2026, time.July)

	if got := classify(date(2026, time.June), completion); got != PhaseConstruction {
		t.Errorf("month before completion = %q, want construction", got)
	}
	// The completion month itself is post-construction.
	if got := classify(date(2026, time.July), completion); got != PhasePostConstruction {
		t.Errorf("completion month = %q, want post-construction", got)
	}
}
