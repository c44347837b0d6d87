package models

import "time"

// AggregateResult holds the three KPIs for a selected window. All values
// are percentages. Cumulative is compounded; Mean is the simple average
// of the monthly rates (deliberately not the compounded equivalent).
type AggregateResult struct {
	CumulativeChangePct float64 `json:"cumulative_change_pct"`
	MeanMonthlyPct      float64 `json:"mean_monthly_pct"`
	MaxMonthlyPct       float64 `json:"max_monthly_pct"`
}

// ForecastPoint is one forecasted month with its per-step 95% interval.
// Invariant: Lower <= Point <= Upper.
type ForecastPoint struct {
	Date  time.Time `json:"date"`
	Point float64   `json:"point"`
	Lower float64   `json:"lower"`
	Upper float64   `json:"upper"`
}

// ForecastResult is an ordered sequence of exactly Horizon points with
// strictly increasing monthly dates beginning one month after the last
// observation of the input series.
type ForecastResult struct {
	Points     []ForecastPoint `json:"points"`
	Horizon    int             `json:"horizon"`
	Confidence float64         `json:"confidence"`
	GapsFilled int             `json:"gaps_filled"`
	Model      string          `json:"model"`
}

// DashboardResult bundles the outputs of all pipeline stages. Any subset
// may be present; Warnings names the stages that failed.
type DashboardResult struct {
	Series     *Series          `json:"series,omitempty"`
	Aggregates *AggregateResult `json:"aggregates,omitempty"`
	Forecast   *ForecastResult  `json:"forecast,omitempty"`
	Warnings   []StageWarning   `json:"warnings,omitempty"`
}

// StageWarning is a stage-scoped failure surfaced to the Presenter.
type StageWarning struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}
