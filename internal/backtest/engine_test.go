package backtest

import (
	"testing"
	"time"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(i int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

func bar(ticker string, i int, o, h, l, c float64) types.Bar {
	return types.Bar{
		Date:   day(i),
		Ticker: ticker,
		Group:  types.GroupOversold,
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: 1000,
	}
}

// reversalPattern builds a partition with exactly one oversold
// reversal: five two-point declines drive RSI near zero, a green bar
// engulfs the last red body at index 6, and tail gently rising green
// bars follow so forward windows have something to measure.
func reversalPattern(ticker string, base float64, tail int) []types.Bar {
	bars := []types.Bar{
		bar(ticker, 0, base+1, base+1.5, base-0.5, base),
		bar(ticker, 1, base, base+0.5, base-2.5, base-2),
		bar(ticker, 2, base-2, base-1.5, base-4.5, base-4),
		bar(ticker, 3, base-4, base-3.5, base-6.5, base-6),
		bar(ticker, 4, base-6, base-5.5, base-8.5, base-8),
		bar(ticker, 5, base-8, base-7.5, base-10.5, base-10),
		bar(ticker, 6, base-10.1, base-7.4, base-10.6, base-7.9),
	}
	c := base - 7.9
	for i := 0; i < tail; i++ {
		c += 0.1
		bars = append(bars, bar(ticker, 7+i, c-0.05, c+0.2, c-0.2, c))
	}
	return bars
}

func TestEngine_Run_EmptyInput(t *testing.T) {
	engine := NewEngine(0, 1)

	_, err := engine.Run(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
}

func TestEngine_Run_NoQualifyingSetups(t *testing.T) {
	// Flat neutral bars never trigger a rule.
	bars := make([]types.Bar, 0, 30)
	for i := 0; i < 30; i++ {
		b := bar("QUIET", i, 100, 100.5, 99.5, 100)
		b.Group = types.GroupBreakouts
		bars = append(bars, b)
	}

	res, err := NewEngine(0, 1).Run(bars)
	require.NoError(t, err)

	assert.Empty(t, res.Trades)
	assert.Empty(t, res.Stats)
	assert.Equal(t, 1, res.Tickers)
	assert.Equal(t, 30, res.Bars)
}

func TestEngine_Run_FindsReversalLong(t *testing.T) {
	res, err := NewEngine(0, 1).Run(reversalPattern("AAPL", 100, 0))
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)

	rec := res.Trades[0]
	assert.Equal(t, types.SetupReversalLong, rec.Setup)
	assert.Equal(t, types.SideLong, rec.Side)
	assert.Equal(t, day(6), rec.Date)
	assert.Equal(t, "AAPL", rec.Ticker)

	// Entry 92.1, stop under the last three lows at 89.5.
	assert.InDelta(t, 92.1, rec.Close, 1e-9)
	assert.InDelta(t, 89.5, rec.Stop, 1e-9)
	assert.InDelta(t, 2.6, rec.Risk, 1e-9)
	assert.InDelta(t, 95.35, rec.Target, 1e-9)
	assert.Equal(t, 1.25, rec.RR)
}

func TestEngine_Run_SignalOnLastBarHasNoOutcomes(t *testing.T) {
	res, err := NewEngine(0, 1).Run(reversalPattern("AAPL", 100, 0))
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)

	rec := res.Trades[0]
	assert.False(t, rec.Ret5.Valid)
	assert.False(t, rec.Ret10.Valid)
	assert.False(t, rec.Ret15.Valid)
	assert.False(t, rec.Win5.Valid)
	assert.False(t, rec.TgtHit10)
	assert.False(t, rec.StpHit10)

	// The stats rows still exist, with empty return columns.
	require.Len(t, res.Stats, len(types.Horizons))
	for _, s := range res.Stats {
		assert.Equal(t, 0, s.N)
		assert.False(t, s.Avg.Valid)
		assert.Equal(t, 0.0, s.TgtHit10)
		assert.Equal(t, 0.0, s.StpHit10)
	}
}

func TestEngine_Run_MeasuresForwardReturns(t *testing.T) {
	res, err := NewEngine(0, 1).Run(reversalPattern("AAPL", 100, 16))
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)

	rec := res.Trades[0]
	require.True(t, rec.Ret5.Valid)
	assert.InDelta(t, 0.5/92.1, rec.Ret5.Value, 1e-9)
	require.True(t, rec.Ret10.Valid)
	assert.InDelta(t, 1.0/92.1, rec.Ret10.Value, 1e-9)
	require.True(t, rec.Ret15.Valid)
	assert.InDelta(t, 1.5/92.1, rec.Ret15.Value, 1e-9)
	assert.True(t, rec.Win5.Valid)
	assert.True(t, rec.Win5.Value)

	// The drift never reaches the 95.35 target nor the 89.5 stop.
	assert.False(t, rec.TgtHit10)
	assert.False(t, rec.StpHit10)

	require.Len(t, res.Stats, len(types.Horizons))
	for _, s := range res.Stats {
		assert.Equal(t, types.SetupReversalLong, s.Setup)
		assert.Equal(t, 1, s.N)
		require.True(t, s.Avg.Valid)
		require.True(t, s.PosRate.Valid)
		assert.Equal(t, 1.0, s.PosRate.Value)
	}
}

func TestEngine_Run_SortsByDateThenTicker(t *testing.T) {
	bars := append(reversalPattern("BBB", 100, 0), reversalPattern("AAA", 200, 0)...)

	res, err := NewEngine(0, 1).Run(bars)
	require.NoError(t, err)
	require.Len(t, res.Trades, 2)

	// Both signals land on the same date; ticker breaks the tie.
	assert.Equal(t, "AAA", res.Trades[0].Ticker)
	assert.Equal(t, "BBB", res.Trades[1].Ticker)
}

func TestEngine_Run_NoCrossTickerLeakage(t *testing.T) {
	// Ticker A ends deeply oversold with a red bar. Ticker B's lone
	// green bar would engulf it if partitions leaked into each other.
	a := reversalPattern("A", 100, 0)[:6]
	b := []types.Bar{bar("B", 6, 89.9, 92.6, 89.4, 92.1)}

	res, err := NewEngine(0, 1).Run(append(a, b...))
	require.NoError(t, err)
	assert.Empty(t, res.Trades)
}

func TestEngine_Run_ParallelMatchesSequential(t *testing.T) {
	tickers := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF"}
	var bars []types.Bar
	for i, tk := range tickers {
		bars = append(bars, reversalPattern(tk, 100+float64(i*10), 16)...)
	}

	sequential, err := NewEngine(0, 1).Run(bars)
	require.NoError(t, err)
	parallel, err := NewEngine(0, 4).Run(bars)
	require.NoError(t, err)

	assert.Equal(t, sequential.Trades, parallel.Trades)
	assert.Equal(t, sequential.Stats, parallel.Stats)
}

func TestEngine_Run_Idempotent(t *testing.T) {
	bars := reversalPattern("AAPL", 100, 16)
	engine := NewEngine(0, 2)

	first, err := engine.Run(bars)
	require.NoError(t, err)
	second, err := engine.Run(bars)
	require.NoError(t, err)

	assert.Equal(t, first.Trades, second.Trades)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestEngine_Run_CustomRewardMultiple(t *testing.T) {
	res, err := NewEngine(2.0, 1).Run(reversalPattern("AAPL", 100, 0))
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)

	rec := res.Trades[0]
	assert.Equal(t, 2.0, rec.RR)
	assert.InDelta(t, 92.1+2.0*2.6, rec.Target, 1e-9)
}
