package scan

import (
	"math"
	"sort"
	"time"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// RSI readings that put a ticker on the extremes report.
const (
	ExtremeOversoldRSI   = 30.0
	ExtremeOverboughtRSI = 70.0
)

// minExtremeBars is the shortest history that yields a trustworthy
// reading: one seed bar plus the longer of the RSI and ATR windows.
const minExtremeBars = indicators.ATRWindow + 1

// ExtremesScanner reports watchlist tickers whose latest RSI sits at
// an extreme, with volatility and trend context attached. Unlike the
// other scans it uses the unguarded RSI so a one-way tape reads as a
// true 0 or 100.
type ExtremesScanner struct{}

// NewExtremesScanner creates an extremes scanner.
func NewExtremesScanner() *ExtremesScanner {
	return &ExtremesScanner{}
}

// ExtremesResult is the full output of one extremes run: the extreme
// rows, the watchlist tickers missing from the data, and the universe
// that was scanned.
type ExtremesResult struct {
	Rows     []types.ExtremeRow
	Misses   []string
	Universe []string
}

// Run scans each watchlist ticker's bars as of the given date. An
// empty watchlist falls back to every ticker present in the data.
// Rows come back sorted by side then ticker; misses are the watchlist
// entries with no bars at all.
func (s *ExtremesScanner) Run(bars []types.Bar, watchlist []string, asOf time.Time) (*ExtremesResult, error) {
	if len(bars) == 0 {
		return nil, apperrors.ErrEmptyInput
	}

	parts := data.PartitionByTicker(bars)
	byTicker := make(map[string][]types.Bar, len(parts))
	for _, part := range parts {
		byTicker[part.Ticker] = part.Bars
	}

	universe := watchlist
	if len(universe) == 0 {
		universe = make([]string, 0, len(parts))
		for _, part := range parts {
			universe = append(universe, part.Ticker)
		}
	}

	asOfDay := time.Date(asOf.UTC().Year(), asOf.UTC().Month(), asOf.UTC().Day(), 0, 0, 0, 0, time.UTC)

	result := &ExtremesResult{Universe: universe}
	for _, ticker := range universe {
		tickerBars, ok := byTicker[ticker]
		if !ok {
			result.Misses = append(result.Misses, ticker)
			continue
		}
		if row, ok := s.scanTicker(ticker, tickerBars, asOfDay); ok {
			result.Rows = append(result.Rows, row)
		}
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		if result.Rows[i].Side != result.Rows[j].Side {
			return result.Rows[i].Side < result.Rows[j].Side
		}
		return result.Rows[i].Ticker < result.Rows[j].Ticker
	})
	sort.Strings(result.Misses)
	return result, nil
}

func (s *ExtremesScanner) scanTicker(ticker string, bars []types.Bar, asOf time.Time) (types.ExtremeRow, bool) {
	if len(bars) < minExtremeBars {
		return types.ExtremeRow{}, false
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	last := len(bars) - 1

	rsi := indicators.RSIExact(closes, indicators.RSIPeriod)[last]
	if !rsi.Valid {
		return types.ExtremeRow{}, false
	}

	var side types.Side
	switch {
	case rsi.Value <= ExtremeOversoldRSI:
		side = types.SideLong
	case rsi.Value >= ExtremeOverboughtRSI:
		side = types.SideShort
	default:
		return types.ExtremeRow{}, false
	}

	return types.ExtremeRow{
		Ticker: ticker,
		RSI14:  round2(rsi.Value),
		Side:   side,
		Close:  round2(closes[last]),
		AsOf:   asOf,
		ATR20:  round2Float(indicators.ATR(bars, indicators.ATRWindow)[last]),
		MA50:   round2Float(indicators.SMA(closes, indicators.MATrendWindow)[last]),
		MA200:  round2Float(indicators.SMA(closes, indicators.MASlowWindow)[last]),
	}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Float(v types.Float) types.Float {
	if !v.Valid {
		return v
	}
	return types.F(round2(v.Value))
}
