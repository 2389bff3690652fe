package data

import (
	"sort"
	"time"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// DefaultBarFilter implements BarFilter for common filtering operations
type DefaultBarFilter struct{}

// NewDefaultBarFilter creates a new default bar filter
func NewDefaultBarFilter() *DefaultBarFilter {
	return &DefaultBarFilter{}
}

// FilterByTrailingPeriod keeps the bars dated within period of the
// newest date anywhere in the set. The cutoff is global so every
// ticker is trimmed against the same calendar window.
func (f *DefaultBarFilter) FilterByTrailingPeriod(bars []types.Bar, period time.Duration) []types.Bar {
	if period <= 0 || len(bars) == 0 {
		return bars
	}

	latest := bars[0].Date
	for _, b := range bars {
		if b.Date.After(latest) {
			latest = b.Date
		}
	}
	cutoff := latest.Add(-period)

	filtered := make([]types.Bar, 0, len(bars))
	for _, b := range bars {
		if !b.Date.Before(cutoff) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// FilterByDateRange keeps bars inside [start, end]
func (f *DefaultBarFilter) FilterByDateRange(bars []types.Bar, start, end time.Time) []types.Bar {
	if len(bars) == 0 {
		return bars
	}

	var filtered []types.Bar
	for _, b := range bars {
		if !b.Date.Before(start) && !b.Date.After(end) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// SortByTickerDate sorts bars in place into the canonical input order:
// ticker ascending, date ascending, ties keeping input order.
func SortByTickerDate(bars []types.Bar) {
	sort.SliceStable(bars, func(i, j int) bool {
		if bars[i].Ticker != bars[j].Ticker {
			return bars[i].Ticker < bars[j].Ticker
		}
		return bars[i].Date.Before(bars[j].Date)
	})
}

// SortByGroupTickerDate sorts bars in place into the order the
// combined file is written in.
func SortByGroupTickerDate(bars []types.Bar) {
	sort.SliceStable(bars, func(i, j int) bool {
		if bars[i].Group != bars[j].Group {
			return bars[i].Group < bars[j].Group
		}
		if bars[i].Ticker != bars[j].Ticker {
			return bars[i].Ticker < bars[j].Ticker
		}
		return bars[i].Date.Before(bars[j].Date)
	})
}

// Deduplicate removes bars sharing a (ticker, date) key, keeping the
// first occurrence.
func Deduplicate(bars []types.Bar) []types.Bar {
	if len(bars) <= 1 {
		return bars
	}

	type key struct {
		ticker string
		date   time.Time
	}
	seen := make(map[key]bool, len(bars))
	filtered := bars[:0]
	for _, b := range bars {
		k := key{ticker: b.Ticker, date: b.Date}
		if seen[k] {
			continue
		}
		seen[k] = true
		filtered = append(filtered, b)
	}
	return filtered
}

// LatestDate returns the newest bar date in the set; ok is false for
// an empty set.
func LatestDate(bars []types.Bar) (time.Time, bool) {
	if len(bars) == 0 {
		return time.Time{}, false
	}
	latest := bars[0].Date
	for _, b := range bars {
		if b.Date.After(latest) {
			latest = b.Date
		}
	}
	return latest, true
}
