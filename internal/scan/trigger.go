// Package scan implements the daily watchlist scans that sit in front
// of the backtest: momentum triggers, graded quality setups, and RSI
// extremes. Each scanner consumes loader-ordered bars and produces
// rows ready for the report writers.
package scan

import (
	"sort"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// TriggerScanner flags every bar whose RSI moved against the previous
// session's reading: rising RSI emits a long RSI_UP row, falling RSI a
// short RSI_DOWN row. A flat reading emits nothing.
type TriggerScanner struct{}

// NewTriggerScanner creates a trigger scanner.
func NewTriggerScanner() *TriggerScanner {
	return &TriggerScanner{}
}

// Run scans every ticker's history and returns the signal rows sorted
// by date then ticker.
func (s *TriggerScanner) Run(bars []types.Bar) ([]types.SignalRow, error) {
	if len(bars) == 0 {
		return nil, apperrors.ErrEmptyInput
	}

	var rows []types.SignalRow
	for _, part := range data.PartitionByTicker(bars) {
		rows = append(rows, s.scanPartition(part.Bars)...)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].Ticker < rows[j].Ticker
	})
	return rows, nil
}

func (s *TriggerScanner) scanPartition(bars []types.Bar) []types.SignalRow {
	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
	}

	rsi := indicators.RSI(closes, indicators.RSIPeriod)
	h3 := indicators.PriorHigh(highs, indicators.StopWindow, indicators.StopWindow)
	l3 := indicators.PriorLow(lows, indicators.StopWindow, indicators.StopWindow)

	var rows []types.SignalRow
	for i := 1; i < len(bars); i++ {
		if !rsi[i].Valid || !rsi[i-1].Valid {
			continue
		}

		var side types.Side
		var trigger string
		switch {
		case rsi[i].Value > rsi[i-1].Value:
			side, trigger = types.SideLong, types.TriggerRSIUp
		case rsi[i].Value < rsi[i-1].Value:
			side, trigger = types.SideShort, types.TriggerRSIDown
		default:
			continue
		}

		rows = append(rows, types.SignalRow{
			Date:    bars[i].Date,
			Ticker:  bars[i].Ticker,
			Group:   bars[i].Group,
			Side:    side,
			Trigger: trigger,
			Open:    bars[i].Open,
			High:    bars[i].High,
			Low:     bars[i].Low,
			Close:   bars[i].Close,
			RSI14:   rsi[i].Value,
			H3:      h3[i],
			L3:      l3[i],
		})
	}
	return rows
}
