package models

import (
	"testing"
	"time"
)

func obs(y int, m time.Month, v float64) Observation {
	return Observation{Date: time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), Value: v}
}

func TestNewSeriesSortsAscending(t *testing.T) {
	s := NewSeries([]Observation{
		obs(2024, time.March, 0.3),
		obs(2024, time.January, 0.1),
		obs(2024, time.February, 0.2),
	})
	if s.Len() != 3 {
		t.Fatalf("expected 3, got %d", s.Len())
	}
	for i := 1; i < s.Len(); i++ {
		if !s.Obs[i-1].Date.Before(s.Obs[i].Date) {
			t.Fatalf("not strictly ascending at %d", i)
		}
	}
}

func TestNewSeriesDeduplicatesKeepingLast(t *testing.T) {
	s := NewSeries([]Observation{
		obs(2024, time.January, 0.1),
		obs(2024, time.January, 0.9),
	})
	if s.Len() != 1 || s.Obs[0].Value != 0.9 {
		t.Fatalf("dedup wrong: %+v", s.Obs)
	}
}

func TestSeriesMinMaxDates(t *testing.T) {
	s := NewSeries([]Observation{
		obs(2024, time.February, 0.2),
		obs(2024, time.April, 0.4),
	})
	if s.MinDate().Month() != time.February || s.MaxDate().Month() != time.April {
		t.Fatalf("min/max wrong: %v %v", s.MinDate(), s.MaxDate())
	}
}

func TestSeriesCopyIsIndependent(t *testing.T) {
	s := NewSeries([]Observation{obs(2024, time.January, 0.1)})
	c := s.Copy()
	c.Obs[0].Value = 99
	if s.Obs[0].Value != 0.1 {
		t.Fatal("copy shares backing array")
	}
}

func TestEmptySeries(t *testing.T) {
	var s Series
	if !s.IsEmpty() {
		t.Fatal("zero series should be empty")
	}
	if !s.MinDate().IsZero() || !s.MaxDate().IsZero() {
		t.Fatal("empty series dates should be zero")
	}
}
