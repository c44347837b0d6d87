// Package bcb fetches time series from the Central Bank of Brazil SGS
// (Sistema Gerenciador de Séries Temporais) REST API.
package bcb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"IPCAPulse/internal/domain/models"
	domsvc "IPCAPulse/internal/domain/service"
	xhttp "IPCAPulse/pkg/http"
	"IPCAPulse/pkg/util"
)

// Client implements a SeriesSource backed by the SGS JSON endpoint.
// Series 433 is the IPCA monthly variation (%).
type Client struct {
	baseURL    string
	seriesCode int
	http       *xhttp.Client
}

// New creates a new SGS series client.
func New(baseURL string, seriesCode int, timeout time.Duration) domsvc.SeriesSource {
	return &Client{
		baseURL:    baseURL,
		seriesCode: seriesCode,
		http:       xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// sgsRecord is one SGS entry: a day-first date and a value that the API
// serves as a string, though a number is tolerated.
type sgsRecord struct {
	Date  string   `json:"data"`
	Value sgsValue `json:"valor"`
}

type sgsValue float64

func (v *sgsValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse value %q: %w", s, err)
		}
		*v = sgsValue(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse value %s: %w", b, err)
	}
	*v = sgsValue(f)
	return nil
}

// Fetch retrieves the full series and normalizes it: dates parsed
// day-first, sorted ascending, deduplicated. A single unparsable record
// fails the whole fetch; dropping records silently would corrupt the
// compounding math downstream.
func (c *Client) Fetch(ctx context.Context) (models.Series, error) {
	url := fmt.Sprintf("%s/bcdata.sgs.%d/dados?formato=json", c.baseURL, c.seriesCode)

	var records []sgsRecord
	if err := c.http.GetJSON(ctx, url, &records); err != nil {
		return models.Series{}, &models.FetchError{Cause: err}
	}

	obs := make([]models.Observation, 0, len(records))
	for i, rec := range records {
		date, ok := util.ParseDayFirst(rec.Date)
		if !ok {
			return models.Series{}, &models.FetchError{
				Cause: fmt.Errorf("record %d: bad date %q", i, rec.Date),
			}
		}
		obs = append(obs, models.Observation{
			Date:  util.TruncateToDay(date),
			Value: float64(rec.Value),
		})
	}

	// Do not trust source ordering.
	return models.NewSeries(obs), nil
}
