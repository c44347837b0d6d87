package models

import "fmt"

// FetchError means the remote series is unavailable: transport failure,
// non-success status, or a record that failed to parse. A single corrupt
// record fails the whole fetch; silent drops would corrupt the
// compounding math downstream.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("series fetch failed: %v", e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// EmptyWindowError means the selected window has zero observations and
// KPIs cannot be computed.
type EmptyWindowError struct{}

func (e *EmptyWindowError) Error() string {
	return "selected window contains no observations"
}

// ForecastError means the model could not be fitted: insufficient
// observations for the configured order, or a degenerate fit.
type ForecastError struct {
	Reason string
}

func (e *ForecastError) Error() string {
	return fmt.Sprintf("forecast failed: %s", e.Reason)
}
