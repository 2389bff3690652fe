package scan

import (
	"math"
	"time"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

func day(i int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

func ohlcBar(ticker, group string, i int, o, h, l, c float64) types.Bar {
	return types.Bar{
		Date:     day(i),
		Ticker:   ticker,
		Group:    group,
		Open:     o,
		High:     h,
		Low:      l,
		Close:    c,
		AdjClose: c,
	}
}

// closeBars builds sane bars around the given closes: each bar opens
// midway from the prior close with a small range beyond the body.
func closeBars(ticker, group string, closes ...float64) []types.Bar {
	bars := make([]types.Bar, len(closes))
	for i, c := range closes {
		o := c
		if i > 0 {
			o = (closes[i-1] + c) / 2
		}
		h := math.Max(o, c) + 0.2
		l := math.Min(o, c) - 0.2
		bars[i] = ohlcBar(ticker, group, i, o, h, l, c)
	}
	return bars
}

// trendBars builds n bars whose closes step monotonically from start.
func trendBars(ticker, group string, n int, start, step float64) []types.Bar {
	bars := make([]types.Bar, n)
	c := start
	for i := range bars {
		o := c - step/2
		h := math.Max(o, c) + 0.2
		l := math.Min(o, c) - 0.2
		bars[i] = ohlcBar(ticker, group, i, o, h, l, c)
		c += step
	}
	return bars
}

// oversoldReversalBars is a steady decline ending in a bullish
// engulfing bar. The final bar's RSI is deeply oversold (about 7.47)
// and its prior three-bar low is 89.5.
func oversoldReversalBars(ticker string) []types.Bar {
	g := types.GroupOversold
	return []types.Bar{
		ohlcBar(ticker, g, 0, 101, 101.5, 99.5, 100),
		ohlcBar(ticker, g, 1, 100, 100.5, 97.5, 98),
		ohlcBar(ticker, g, 2, 98, 98.5, 95.5, 96),
		ohlcBar(ticker, g, 3, 96, 96.5, 93.5, 94),
		ohlcBar(ticker, g, 4, 94, 94.5, 91.5, 92),
		ohlcBar(ticker, g, 5, 92, 92.5, 89.5, 90),
		ohlcBar(ticker, g, 6, 89.9, 92.6, 89.4, 92.1),
	}
}

// overboughtReversalBars mirrors oversoldReversalBars: a steady climb
// ending in a bearish engulfing bar with RSI about 92.53 and a prior
// three-bar high of 110.5.
func overboughtReversalBars(ticker string) []types.Bar {
	g := types.GroupOverbought
	return []types.Bar{
		ohlcBar(ticker, g, 0, 99, 100.5, 98.5, 100),
		ohlcBar(ticker, g, 1, 100, 102.5, 99.5, 102),
		ohlcBar(ticker, g, 2, 102, 104.5, 101.5, 104),
		ohlcBar(ticker, g, 3, 104, 106.5, 103.5, 106),
		ohlcBar(ticker, g, 4, 106, 108.5, 105.5, 108),
		ohlcBar(ticker, g, 5, 108, 110.5, 107.5, 110),
		ohlcBar(ticker, g, 6, 110.1, 110.6, 107.4, 107.9),
	}
}
