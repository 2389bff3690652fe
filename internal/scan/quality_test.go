package scan

import (
	"testing"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityScanner_EmptyInput(t *testing.T) {
	_, _, err := NewQualityScanner(0).Run(nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
}

func TestQualityScanner_FindsReversalLong(t *testing.T) {
	rows, date, err := NewQualityScanner(0).Run(oversoldReversalBars("AAPL"))
	require.NoError(t, err)
	assert.Equal(t, day(6), date)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, day(6), row.Date)
	assert.Equal(t, "AAPL", row.Ticker)
	assert.Equal(t, types.GroupOversold, row.Group)
	assert.Equal(t, types.SideLong, row.Side)
	assert.Equal(t, types.TriggerQualityReversal, row.Trigger)
	assert.Equal(t, 92.1, row.Close)
	assert.InDelta(t, 7.47, row.RSI14, 0.01)
	assert.Equal(t, 96.5, row.H3)
	assert.Equal(t, 89.5, row.L3)

	// Stop at the prior three-bar low, target 1.25 risks above entry.
	assert.Equal(t, 89.5, row.Stop)
	assert.InDelta(t, 95.35, row.Target, 1e-9)
	assert.Equal(t, 1.25, row.RR)
	assert.Equal(t, types.GradeBPlus, row.Grade)
}

func TestQualityScanner_FindsReversalShort(t *testing.T) {
	rows, _, err := NewQualityScanner(0).Run(overboughtReversalBars("TSLA"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, types.SideShort, row.Side)
	assert.InDelta(t, 92.53, row.RSI14, 0.01)
	assert.Equal(t, 110.5, row.Stop)
	assert.InDelta(t, 104.65, row.Target, 1e-9)
}

func TestQualityScanner_OnlyLatestSessionCounts(t *testing.T) {
	// Adding a quiet bar after the engulfing session moves the scan date
	// forward and the old setup stops being reported.
	bars := append(oversoldReversalBars("AAPL"),
		ohlcBar("AAPL", types.GroupOversold, 7, 92.3, 94.8, 92.0, 94.5))

	rows, date, err := NewQualityScanner(0).Run(bars)
	require.NoError(t, err)
	assert.Equal(t, day(7), date)
	assert.Empty(t, rows)
}

func TestQualityScanner_GroupGatesTheSides(t *testing.T) {
	bars := oversoldReversalBars("AAPL")
	for i := range bars {
		bars[i].Group = types.GroupBreakouts
	}

	rows, _, err := NewQualityScanner(0).Run(bars)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQualityScanner_RewardMultipleDrivesGrade(t *testing.T) {
	rows, _, err := NewQualityScanner(1.8).Run(oversoldReversalBars("AAPL"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.8, rows[0].RR)
	assert.Equal(t, types.GradeAPlus, rows[0].Grade)
	assert.InDelta(t, 92.1+1.8*2.6, rows[0].Target, 1e-9)
}

func TestQualityScanner_RejectGradeDropsRows(t *testing.T) {
	rows, _, err := NewQualityScanner(1.2).Run(oversoldReversalBars("AAPL"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQualityScanner_RiskFloorKeepsStopOverlaps(t *testing.T) {
	// A stop above the entry close would give a negative risk; the floor
	// keeps the row with a hairline target instead of dropping it.
	s := NewQualityScanner(0)
	b := ohlcBar("AAPL", types.GroupOversold, 6, 89.9, 92.6, 89.4, 92.1)

	row := s.buildRow(b, types.SideLong, 25.0, 96.5, 92.5)
	assert.Equal(t, 92.5, row.Stop)
	assert.InDelta(t, 92.1+1.25*minRisk, row.Target, 1e-12)
	assert.Equal(t, types.GradeBPlus, row.Grade)
}

func TestQualityScanner_SortsBySideGradeTicker(t *testing.T) {
	var bars []types.Bar
	bars = append(bars, oversoldReversalBars("ZZ")...)
	bars = append(bars, overboughtReversalBars("MM")...)
	bars = append(bars, oversoldReversalBars("AA")...)

	rows, _, err := NewQualityScanner(0).Run(bars)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "AA", rows[0].Ticker)
	assert.Equal(t, types.SideLong, rows[0].Side)
	assert.Equal(t, "ZZ", rows[1].Ticker)
	assert.Equal(t, "MM", rows[2].Ticker)
	assert.Equal(t, types.SideShort, rows[2].Side)
}
