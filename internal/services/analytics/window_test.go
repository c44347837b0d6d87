package analytics

import (
	"testing"
	"time"

	"IPCAPulse/internal/domain/models"
)

func monthly(t *testing.T, startYear int, startMonth time.Month, values ...float64) models.Series {
	t.Helper()
	obs := make([]models.Observation, len(values))
	for i, v := range values {
		obs[i] = models.Observation{
			Date:  time.Date(startYear, startMonth+time.Month(i), 1, 0, 0, 0, 0, time.UTC),
			Value: v,
		}
	}
	return models.NewSeries(obs)
}

func TestSelectWindowClipsRange(t *testing.T) {
	s := monthly(t, 2024, time.January, 0.1, 0.2, 0.3, 0.4, 0.5)
	got := SelectWindow(s,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	)
	if got.Len() != 3 {
		t.Fatalf("expected 3 observations, got %d", got.Len())
	}
	if got.Obs[0].Value != 0.2 || got.Obs[2].Value != 0.4 {
		t.Fatalf("wrong window contents: %v", got.Obs)
	}
}

func TestSelectWindowMalformedInputReturnsFullSeries(t *testing.T) {
	s := monthly(t, 2024, time.January, 0.1, 0.2, 0.3)
	got := SelectWindow(s, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	if got.Len() != s.Len() {
		t.Fatalf("expected full series fallback, got %d of %d", got.Len(), s.Len())
	}
}

func TestSelectWindowOutOfRangeEqualsFullRange(t *testing.T) {
	s := monthly(t, 2024, time.January, 0.1, 0.2, 0.3)
	wide := SelectWindow(s,
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	exact := SelectWindow(s, s.MinDate(), s.MaxDate())
	if wide.Len() != exact.Len() {
		t.Fatalf("clamped selection differs: %d vs %d", wide.Len(), exact.Len())
	}
	for i := range wide.Obs {
		if wide.Obs[i] != exact.Obs[i] {
			t.Fatalf("observation %d differs", i)
		}
	}
}

func TestSelectWindowSwapsTransposedBounds(t *testing.T) {
	s := monthly(t, 2024, time.January, 0.1, 0.2, 0.3, 0.4)
	got := SelectWindow(s,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	if got.Len() != 2 {
		t.Fatalf("expected transposed bounds to be swapped, got %d observations", got.Len())
	}
}

func TestSelectWindowDoesNotMutateSource(t *testing.T) {
	s := monthly(t, 2024, time.January, 0.1, 0.2, 0.3)
	got := SelectWindow(s, s.MinDate(), s.MaxDate())
	got.Obs[0].Value = 99
	if s.Obs[0].Value != 0.1 {
		t.Fatalf("canonical series mutated through window")
	}
}
