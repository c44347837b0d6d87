package bcb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"IPCAPulse/internal/domain/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	src := New(srv.URL, 433, 5*time.Second)
	return srv, src.(*Client)
}

func TestFetchParsesAndSorts(t *testing.T) {
	body := `[
		{"data":"01/03/2024","valor":"0.16"},
		{"data":"01/01/2024","valor":"0.42"},
		{"data":"01/02/2024","valor":0.83}
	]`
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	series, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("expected 3 observations, got %d", series.Len())
	}
	if series.Obs[0].Date.Month() != time.January || series.Obs[2].Date.Month() != time.March {
		t.Fatalf("series not sorted ascending: %v", series.Obs)
	}
	if series.Obs[1].Value != 0.83 {
		t.Fatalf("numeric valor not parsed: %v", series.Obs[1])
	}
}

func TestFetchDeduplicatesKeepingLast(t *testing.T) {
	body := `[
		{"data":"01/01/2024","valor":"0.10"},
		{"data":"01/01/2024","valor":"0.42"}
	]`
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	series, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Len() != 1 {
		t.Fatalf("expected deduplication, got %d entries", series.Len())
	}
	if series.Obs[0].Value != 0.42 {
		t.Fatalf("expected last record kept, got %v", series.Obs[0].Value)
	}
}

func TestFetchFailsClosedOnCorruptRecord(t *testing.T) {
	body := `[
		{"data":"01/01/2024","valor":"0.42"},
		{"data":"not-a-date","valor":"0.10"}
	]`
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	_, err := c.Fetch(context.Background())
	var fe *models.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestFetchFailsClosedOnCorruptValue(t *testing.T) {
	body := `[{"data":"01/01/2024","valor":"n/a"}]`
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	_, err := c.Fetch(context.Background())
	var fe *models.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Fetch(context.Background())
	var fe *models.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}
