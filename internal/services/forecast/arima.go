// Package forecast implements the ARIMA forecasting engine for the
// monthly inflation series.
package forecast

import (
	"errors"
	"math"
)

// Order is the ARIMA model order (p, d, q).
type Order struct {
	P int // autoregressive terms
	D int // differencing order
	Q int // moving-average terms
}

// params returns the number of estimated coefficients plus intercept.
func (o Order) params() int { return o.P + o.Q + 1 }

// arimaModel holds a fitted ARIMA model. Estimation is conditional sum
// of squares: Yule-Walker initial AR estimates refined by gradient
// descent on the differenced series.
type arimaModel struct {
	order     Order
	arCoeffs  []float64
	maCoeffs  []float64
	intercept float64
	variance  float64
	data      []float64 // original series
	diffData  []float64 // after d rounds of differencing
	residuals []float64
}

var errTooShort = errors.New("insufficient observations for the configured order")

// minObservations is the fit precondition: more observations than
// parameters, with headroom for a usable estimate.
func minObservations(o Order) int { return o.P + o.D + o.Q + 10 }

func fitARIMA(values []float64, order Order) (*arimaModel, error) {
	if len(values) < minObservations(order) {
		return nil, errTooShort
	}

	m := &arimaModel{
		order:    order,
		arCoeffs: make([]float64, order.P),
		maCoeffs: make([]float64, order.Q),
		data:     values,
	}

	diff := values
	for i := 0; i < order.D; i++ {
		diff = difference(diff)
		if len(diff) == 0 {
			return nil, errors.New("differencing emptied the series")
		}
	}
	m.diffData = diff

	if err := m.estimate(); err != nil {
		return nil, err
	}

	for _, c := range m.arCoeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.New("estimation did not converge")
		}
	}
	if math.IsNaN(m.variance) || m.variance < 0 {
		return nil, errors.New("estimation produced a degenerate variance")
	}

	return m, nil
}

func difference(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out
}

func (m *arimaModel) estimate() error {
	y := m.diffData
	n := len(y)
	p := m.order.P
	q := m.order.Q

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	m.intercept = mean / float64(n)

	if p == 0 && q == 0 {
		// White noise model.
		m.variance = 0
		m.residuals = make([]float64, n)
		for i, v := range y {
			m.residuals[i] = v - m.intercept
			m.variance += m.residuals[i] * m.residuals[i]
		}
		m.variance /= float64(n - 1)
		return nil
	}

	// Yule-Walker initial AR estimates.
	if p > 0 {
		if acf := autocorrelation(y, p); acf != nil {
			if phi := yuleWalker(acf, p); phi != nil {
				copy(m.arCoeffs, phi)
			}
		}
	}
	for i := range m.maCoeffs {
		m.maCoeffs[i] = 0.1
	}

	m.refineCSS(y)

	// Final residuals and variance.
	startIdx := maxInt(p, q)
	m.residuals = make([]float64, n)
	for t := 0; t < n; t++ {
		if t < startIdx {
			m.residuals[t] = y[t] - m.intercept
			continue
		}
		m.residuals[t] = y[t] - m.predictOne(y, m.residuals, t)
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	if count > p+q+1 {
		m.variance = sse / float64(count-p-q-1)
	} else if count > 0 {
		m.variance = sse / float64(count)
	}

	return nil
}

// predictOne computes the one-step conditional expectation at index t.
func (m *arimaModel) predictOne(y, residuals []float64, t int) float64 {
	pred := m.intercept
	for i := 0; i < m.order.P && t-i-1 >= 0; i++ {
		pred += m.arCoeffs[i] * (y[t-i-1] - m.intercept)
	}
	for i := 0; i < m.order.Q && t-i-1 >= 0; i++ {
		pred += m.maCoeffs[i] * residuals[t-i-1]
	}
	return pred
}

// refineCSS iteratively minimizes the conditional sum of squares with a
// small fixed-rate gradient step, keeping coefficients inside the
// stationarity/invertibility bounds.
func (m *arimaModel) refineCSS(y []float64) {
	n := len(y)
	p := m.order.P
	q := m.order.Q
	startIdx := maxInt(p, q)

	const (
		maxIter      = 100
		tolerance    = 1e-6
		learningRate = 0.01
	)

	for iter := 0; iter < maxIter; iter++ {
		residuals := make([]float64, n)
		prevSSE := 0.0
		for t := startIdx; t < n; t++ {
			residuals[t] = y[t] - m.predictOne(y, residuals, t)
			prevSSE += residuals[t] * residuals[t]
		}

		arGrad := make([]float64, p)
		maGrad := make([]float64, q)
		for t := startIdx; t < n; t++ {
			for i := 0; i < p && t-i-1 >= 0; i++ {
				arGrad[i] -= 2 * residuals[t] * (y[t-i-1] - m.intercept)
			}
			for i := 0; i < q && t-i-1 >= 0; i++ {
				maGrad[i] -= 2 * residuals[t] * residuals[t-i-1]
			}
		}

		for i := 0; i < p; i++ {
			m.arCoeffs[i] -= learningRate * arGrad[i] / float64(n)
			m.arCoeffs[i] = math.Max(-0.99, math.Min(0.99, m.arCoeffs[i]))
		}
		for i := 0; i < q; i++ {
			m.maCoeffs[i] -= learningRate * maGrad[i] / float64(n)
			m.maCoeffs[i] = math.Max(-0.99, math.Min(0.99, m.maCoeffs[i]))
		}

		newSSE := 0.0
		residuals = make([]float64, n)
		for t := startIdx; t < n; t++ {
			residuals[t] = y[t] - m.predictOne(y, residuals, t)
			newSSE += residuals[t] * residuals[t]
		}

		if math.Abs(prevSSE-newSSE) < tolerance {
			break
		}
	}
}

// predictWithInterval generates point forecasts with two-sided per-step
// confidence bounds. The bounds are independent per step, not a joint
// band; the standard error grows with the step for integrated series.
func (m *arimaModel) predictWithInterval(steps int, confidence float64) (points, lower, upper []float64) {
	p := m.order.P
	q := m.order.Q
	d := m.order.D

	y := m.diffData
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)
	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := m.intercept
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.arCoeffs[i] * (extY[t-i-1] - m.intercept)
		}
		// Future residuals have expectation zero.
		for i := 0; i < q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.maCoeffs[i] * extResiduals[t-i-1]
		}
		extY[t] = pred
		extResiduals[t] = 0
	}

	points = make([]float64, steps)
	copy(points, extY[n:])

	if d > 0 {
		points = m.integrate(points)
	}

	z := normalQuantile((1 + confidence) / 2)
	lower = make([]float64, steps)
	upper = make([]float64, steps)
	for h := 0; h < steps; h++ {
		se := math.Sqrt(m.variance)
		if d > 0 {
			se *= math.Sqrt(float64(h + 1))
		}
		lower[h] = points[h] - z*se
		upper[h] = points[h] + z*se
	}

	return points, lower, upper
}

// integrate undoes differencing to return forecasts on the original scale.
func (m *arimaModel) integrate(forecasts []float64) []float64 {
	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	for i := 0; i < m.order.D; i++ {
		lastVal := m.data[len(m.data)-1-i]
		for j := range result {
			if j == 0 {
				result[j] += lastVal
			} else {
				result[j] += result[j-1]
			}
		}
	}

	return result
}

// autocorrelation returns ACF values for lags 0..maxLag.
func autocorrelation(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// yuleWalker estimates AR coefficients from the ACF via Levinson-Durbin.
func yuleWalker(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	if order == 1 {
		phi[0] = acf[1]
		return phi
	}

	phi[0] = acf[1]
	v := 1 - phi[0]*phi[0]

	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		lambda /= v

		newPhi := make([]float64, i+1)
		for j := 0; j < i; j++ {
			newPhi[j] = phi[j] - lambda*phi[i-1-j]
		}
		newPhi[i] = lambda
		copy(phi, newPhi)

		v *= 1 - lambda*lambda
		if v <= 0 {
			break
		}
	}

	return phi
}

// normalQuantile returns the z-value for a given probability
// (Abramowitz-Stegun rational approximation).
func normalQuantile(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	if p < 0.5 {
		return -normalQuantile(1 - p)
	}

	t := math.Sqrt(-2 * math.Log(1-p))
	c0, c1, c2 := 2.515517, 0.802853, 0.010328
	d1, d2, d3 := 1.432788, 0.189269, 0.001308

	return t - (c0+c1*t+c2*t*t)/(1+d1*t+d2*t*t+d3*t*t*t)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
