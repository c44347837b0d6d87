package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"IPCAPulse/internal/domain/models"
)

func TestComputeAggregatesKnownValues(t *testing.T) {
	s := monthly(t, 2024, time.January, 1.0, 2.0, -1.0)
	got, err := ComputeAggregates(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCumulative := ((1.01)*(1.02)*(0.99) - 1) * 100
	if math.Abs(got.CumulativeChangePct-wantCumulative) > 1e-9 {
		t.Errorf("cumulative: got %v want %v", got.CumulativeChangePct, wantCumulative)
	}
	if math.Abs(got.MeanMonthlyPct-2.0/3.0) > 1e-9 {
		t.Errorf("mean: got %v want %v", got.MeanMonthlyPct, 2.0/3.0)
	}
	if got.MaxMonthlyPct != 2.0 {
		t.Errorf("max: got %v want 2.0", got.MaxMonthlyPct)
	}
}

func TestComputeAggregatesAllZero(t *testing.T) {
	s := monthly(t, 2024, time.January, 0, 0, 0, 0)
	got, err := ComputeAggregates(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CumulativeChangePct != 0 || got.MeanMonthlyPct != 0 || got.MaxMonthlyPct != 0 {
		t.Fatalf("all-zero series should yield zero KPIs: %+v", got)
	}
}

func TestComputeAggregatesEmptyWindow(t *testing.T) {
	_, err := ComputeAggregates(models.Series{})
	var ew *models.EmptyWindowError
	if !errors.As(err, &ew) {
		t.Fatalf("expected EmptyWindowError, got %v", err)
	}
}

// Compounding is a product, so regrouping the multiplication must give
// the same result within tolerance.
func TestCompoundingAssociativity(t *testing.T) {
	values := make([]float64, 120)
	for i := range values {
		values[i] = 0.5 + 0.01*float64(i%7) - 0.003*float64(i%11)
	}
	s := monthly(t, 2010, time.January, values...)

	got, err := ComputeAggregates(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Regroup: product of two halves.
	left, right := 1.0, 1.0
	for i, v := range values {
		if i < len(values)/2 {
			left *= 1 + v/100
		} else {
			right *= 1 + v/100
		}
	}
	want := (left*right - 1) * 100

	if math.Abs(got.CumulativeChangePct-want) > 1e-9*math.Abs(want) {
		t.Fatalf("regrouped product differs: got %v want %v", got.CumulativeChangePct, want)
	}
}

func TestComputeAggregatesNegativeMax(t *testing.T) {
	s := monthly(t, 2024, time.January, -0.5, -0.2, -0.9)
	got, err := ComputeAggregates(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MaxMonthlyPct != -0.2 {
		t.Fatalf("max over negative values: got %v want -0.2", got.MaxMonthlyPct)
	}
}
