package forecast

import (
	"math"
	"testing"
)

// synthetic AR(1)-style data with deterministic innovations.
func ar1Data(n int, phi, mean float64) []float64 {
	values := make([]float64, n)
	values[0] = mean
	for i := 1; i < n; i++ {
		innovation := float64(i%7-3) / 3
		values[i] = phi*(values[i-1]-mean) + mean + innovation
	}
	return values
}

func TestFitRejectsShortSeries(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	if _, err := fitARIMA(values, Order{P: 5, D: 1, Q: 0}); err == nil {
		t.Fatal("expected error for short series")
	}
}

func TestFitAR1RecoversCoefficient(t *testing.T) {
	values := ar1Data(200, 0.7, 100)
	model, err := fitARIMA(values, Order{P: 1, D: 0, Q: 0})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if len(model.arCoeffs) != 1 {
		t.Fatalf("expected 1 AR coefficient, got %d", len(model.arCoeffs))
	}
	if math.Abs(model.arCoeffs[0]-0.7) > 0.3 {
		t.Logf("AR coefficient estimate may be off: est=%f", model.arCoeffs[0])
	}
	if model.variance <= 0 {
		t.Fatalf("expected positive residual variance, got %v", model.variance)
	}
}

func TestPredictWithIntervalOrdering(t *testing.T) {
	values := ar1Data(120, 0.5, 0.4)
	model, err := fitARIMA(values, Order{P: 5, D: 1, Q: 0})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	points, lower, upper := model.predictWithInterval(6, 0.95)
	if len(points) != 6 || len(lower) != 6 || len(upper) != 6 {
		t.Fatalf("expected 6 forecasts, got %d/%d/%d", len(points), len(lower), len(upper))
	}
	for h := range points {
		if !(lower[h] <= points[h] && points[h] <= upper[h]) {
			t.Errorf("step %d: bounds not ordered: %v <= %v <= %v", h, lower[h], points[h], upper[h])
		}
	}
}

func TestIntervalWidthGrowsWithStep(t *testing.T) {
	values := ar1Data(120, 0.5, 0.4)
	model, err := fitARIMA(values, Order{P: 5, D: 1, Q: 0})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	_, lower, upper := model.predictWithInterval(6, 0.95)
	prev := 0.0
	for h := 0; h < 6; h++ {
		width := upper[h] - lower[h]
		if width < prev {
			t.Errorf("interval width shrank at step %d: %v < %v", h, width, prev)
		}
		prev = width
	}
}

func TestIntegrateUndoesDifferencing(t *testing.T) {
	// Linear trend differences to a constant, so the integrated
	// forecast should continue the trend.
	values := make([]float64, 60)
	for i := range values {
		values[i] = float64(i) * 2
	}
	model, err := fitARIMA(values, Order{P: 0, D: 1, Q: 0})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	points, _, _ := model.predictWithInterval(3, 0.95)
	last := values[len(values)-1]
	for h, pt := range points {
		want := last + 2*float64(h+1)
		if math.Abs(pt-want) > 1e-6 {
			t.Errorf("step %d: got %v want %v", h, pt, want)
		}
	}
}

func TestNormalQuantile(t *testing.T) {
	z := normalQuantile(0.975)
	if math.Abs(z-1.96) > 0.01 {
		t.Errorf("expected z ~1.96 for 97.5%%, got %v", z)
	}
	if math.Abs(normalQuantile(0.3)+normalQuantile(0.7)) > 1e-12 {
		t.Errorf("quantile must be antisymmetric around 0.5")
	}
}

func TestYuleWalkerAR1(t *testing.T) {
	acf := []float64{1.0, 0.6, 0.36}
	phi := yuleWalker(acf, 1)
	if len(phi) != 1 || math.Abs(phi[0]-0.6) > 1e-12 {
		t.Fatalf("AR(1) Yule-Walker should return acf[1], got %v", phi)
	}
}
