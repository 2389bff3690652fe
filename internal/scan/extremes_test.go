package scan

import (
	"testing"
	"time"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noonUTC = time.Date(2024, 4, 2, 12, 30, 0, 0, time.UTC)

func TestExtremesScanner_EmptyInput(t *testing.T) {
	_, err := NewExtremesScanner().Run(nil, nil, noonUTC)
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
}

func TestExtremesScanner_FlagsBothExtremes(t *testing.T) {
	bars := trendBars("DOWN", types.GroupOversold, 25, 100, -2)
	bars = append(bars, trendBars("UP", types.GroupOverbought, 25, 100, 2)...)

	result, err := NewExtremesScanner().Run(bars, nil, noonUTC)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.Misses)

	// One-way declines read as RSI 0, one-way climbs as RSI 100.
	long := result.Rows[0]
	assert.Equal(t, "DOWN", long.Ticker)
	assert.Equal(t, types.SideLong, long.Side)
	assert.Equal(t, 0.0, long.RSI14)
	assert.Equal(t, 100.0-2*24, long.Close)

	short := result.Rows[1]
	assert.Equal(t, "UP", short.Ticker)
	assert.Equal(t, types.SideShort, short.Side)
	assert.Equal(t, 100.0, short.RSI14)
}

func TestExtremesScanner_TruncatesAsOfToUTCDate(t *testing.T) {
	bars := trendBars("DOWN", types.GroupOversold, 25, 100, -2)

	result, err := NewExtremesScanner().Run(bars, nil, noonUTC)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), result.Rows[0].AsOf)
}

func TestExtremesScanner_ContextValues(t *testing.T) {
	bars := trendBars("DOWN", types.GroupOversold, 25, 100, -2)

	result, err := NewExtremesScanner().Run(bars, nil, noonUTC)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	require.True(t, row.ATR20.Valid)
	assert.InDelta(t, 2.2, row.ATR20.Value, 1e-9)

	// 25 bars cannot fill the 50 and 200 day averages.
	assert.False(t, row.MA50.Valid)
	assert.False(t, row.MA200.Valid)
}

func TestExtremesScanner_SkipsShortHistory(t *testing.T) {
	bars := trendBars("DOWN", types.GroupOversold, minExtremeBars-1, 100, -2)

	result, err := NewExtremesScanner().Run(bars, nil, noonUTC)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)

	// Present in the data, so not a miss either.
	assert.Empty(t, result.Misses)
}

func TestExtremesScanner_NeutralRSISkipped(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%2)
	}
	bars := closeBars("FLAT", types.GroupBreakouts, closes...)

	result, err := NewExtremesScanner().Run(bars, nil, noonUTC)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestExtremesScanner_UndefinedRSISkipped(t *testing.T) {
	bars := trendBars("STILL", types.GroupBreakouts, 25, 100, 0)

	result, err := NewExtremesScanner().Run(bars, nil, noonUTC)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestExtremesScanner_MissesComeFromWatchlist(t *testing.T) {
	bars := trendBars("DOWN", types.GroupOversold, 25, 100, -2)
	watchlist := []string{"ZENV", "DOWN", "AAAA"}

	result, err := NewExtremesScanner().Run(bars, watchlist, noonUTC)
	require.NoError(t, err)
	assert.Equal(t, watchlist, result.Universe)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"AAAA", "ZENV"}, result.Misses)
}

func TestExtremesScanner_SortsBySideThenTicker(t *testing.T) {
	var bars []types.Bar
	bars = append(bars, trendBars("ZD", types.GroupOversold, 25, 100, -2)...)
	bars = append(bars, trendBars("AU", types.GroupOverbought, 25, 100, 2)...)
	bars = append(bars, trendBars("AD", types.GroupOversold, 25, 100, -2)...)

	result, err := NewExtremesScanner().Run(bars, nil, noonUTC)
	require.NoError(t, err)
	require.Len(t, result.Rows, 3)

	assert.Equal(t, "AD", result.Rows[0].Ticker)
	assert.Equal(t, "ZD", result.Rows[1].Ticker)
	assert.Equal(t, "AU", result.Rows[2].Ticker)
}
