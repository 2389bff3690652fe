package data

import (
	"sort"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// Partition is one ticker's bars in their input order.
type Partition struct {
	Ticker string
	Bars   []types.Bar
}

// PartitionByTicker splits bars into per-ticker partitions, emitted in
// ticker order. Within a partition the bars keep the order they
// arrived in, so loader-sorted input yields date-sorted partitions.
func PartitionByTicker(bars []types.Bar) []Partition {
	byTicker := make(map[string][]types.Bar)
	for _, b := range bars {
		byTicker[b.Ticker] = append(byTicker[b.Ticker], b)
	}

	tickers := make([]string, 0, len(byTicker))
	for t := range byTicker {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	parts := make([]Partition, 0, len(tickers))
	for _, t := range tickers {
		parts = append(parts, Partition{Ticker: t, Bars: byTicker[t]})
	}
	return parts
}
