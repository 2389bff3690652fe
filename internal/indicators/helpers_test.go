package indicators

import (
	"time"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

func day(i int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

// barsFromCloses builds a single-ticker partition where each bar's
// high and low bracket the close by one point.
func barsFromCloses(closes ...float64) []types.Bar {
	bars := make([]types.Bar, len(closes))
	for i, c := range closes {
		bars[i] = types.Bar{
			Date:   day(i),
			Ticker: "TEST",
			Group:  types.GroupOversold,
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func barOHLC(i int, o, h, l, c float64) types.Bar {
	return types.Bar{
		Date:   day(i),
		Ticker: "TEST",
		Group:  types.GroupOversold,
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: 1000,
	}
}

// walkCloses generates a deterministic price walk for benchmarks.
func walkCloses(n int) []float64 {
	closes := make([]float64, n)
	price := 100.0
	for i := 0; i < n; i++ {
		if i%3 == 0 {
			price += 1.5
		} else {
			price -= 0.7
		}
		closes[i] = price
	}
	return closes
}
