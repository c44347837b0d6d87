package models

// Requests for dashboard HTTP endpoints. Defined in domain for consistency and reuse.
//
// From/To are ISO dates (YYYY-MM-DD). Both optional: a missing or
// one-sided range falls back to the full series, matching the permissive
// window policy.

type SeriesRequest struct {
	From string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
}

type AggregatesRequest struct {
	From string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
}

type DashboardRequest struct {
	From string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
}
