package scan

import (
	"sort"
	"time"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/internal/setup"
	"github.com/ducminhle1904/swing-scanner/internal/trade"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// minRisk floors the stop distance so a close sitting on its stop
// still produces a finite target.
const minRisk = 1e-6

// QualityScanner grades reversal setups on the latest session in the
// data: oversold tickers printing a bullish engulfing bar at a
// depressed RSI, and the overbought mirror. Rows are graded by reward
// ratio and rejects are dropped.
type QualityScanner struct {
	rewardMultiple float64
}

// NewQualityScanner creates a quality scanner. A non-positive multiple
// falls back to the default reward multiple.
func NewQualityScanner(rewardMultiple float64) *QualityScanner {
	if rewardMultiple <= 0 {
		rewardMultiple = trade.DefaultRewardMultiple
	}
	return &QualityScanner{rewardMultiple: rewardMultiple}
}

// Run scans the newest session across all tickers. It returns the
// surviving rows sorted by side, grade, then ticker, along with the
// session date they were graded on.
func (s *QualityScanner) Run(bars []types.Bar) ([]types.QualityRow, time.Time, error) {
	if len(bars) == 0 {
		return nil, time.Time{}, apperrors.ErrEmptyInput
	}
	lastDate, _ := data.LatestDate(bars)

	var rows []types.QualityRow
	for _, part := range data.PartitionByTicker(bars) {
		rows = append(rows, s.scanPartition(part.Bars, lastDate)...)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Side != rows[j].Side {
			return rows[i].Side < rows[j].Side
		}
		if ri, rj := rows[i].Grade.Rank(), rows[j].Grade.Rank(); ri != rj {
			return ri < rj
		}
		return rows[i].Ticker < rows[j].Ticker
	})
	return rows, lastDate, nil
}

func (s *QualityScanner) scanPartition(bars []types.Bar, lastDate time.Time) []types.QualityRow {
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
	bull, bear := indicators.Engulfing(bars)

	var rows []types.QualityRow
	for i := 1; i < len(bars); i++ {
		if !bars[i].Date.Equal(lastDate) {
			continue
		}
		if !rsi[i].Valid || !h3[i].Valid || !l3[i].Valid {
			continue
		}

		var side types.Side
		switch {
		case bars[i].Group == types.GroupOversold && rsi[i].Value <= setup.ReversalOversoldRSI && bull[i]:
			side = types.SideLong
		case bars[i].Group == types.GroupOverbought && rsi[i].Value >= setup.ReversalOverboughtRSI && bear[i]:
			side = types.SideShort
		default:
			continue
		}

		row := s.buildRow(bars[i], side, rsi[i].Value, h3[i].Value, l3[i].Value)
		if row.Grade == types.GradeReject {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *QualityScanner) buildRow(b types.Bar, side types.Side, rsi, h3, l3 float64) types.QualityRow {
	var stop, risk, target float64
	if side == types.SideLong {
		stop = l3
		risk = b.Close - stop
	} else {
		stop = h3
		risk = stop - b.Close
	}
	if risk < minRisk {
		risk = minRisk
	}
	if side == types.SideLong {
		target = b.Close + s.rewardMultiple*risk
	} else {
		target = b.Close - s.rewardMultiple*risk
	}

	return types.QualityRow{
		Date:    b.Date,
		Ticker:  b.Ticker,
		Group:   b.Group,
		Side:    side,
		Trigger: types.TriggerQualityReversal,
		Open:    b.Open,
		High:    b.High,
		Low:     b.Low,
		Close:   b.Close,
		RSI14:   rsi,
		H3:      h3,
		L3:      l3,
		Stop:    stop,
		Target:  target,
		RR:      s.rewardMultiple,
		Grade:   types.GradeOf(s.rewardMultiple),
	}
}
