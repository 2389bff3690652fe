package trade

import (
	"testing"
	"time"

	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

// signalFrame builds a one-bar frame with the series Build reads.
func signalFrame(c float64, h3, l3 types.Float) *indicators.Frame {
	return &indicators.Frame{
		Bars: []types.Bar{{
			Date:   testDate,
			Ticker: "AAPL",
			Group:  types.GroupOversold,
			Open:   c - 1,
			High:   c + 2,
			Low:    c - 2,
			Close:  c,
		}},
		RSI14: []types.Float{types.F(25)},
		MA50:  []types.Float{types.F(c + 5)},
		MA200: []types.Float{{}},
		H3:    []types.Float{h3},
		L3:    []types.Float{l3},
	}
}

func TestBuild_ReversalLongNumbers(t *testing.T) {
	f := signalFrame(100, types.Float{}, types.F(90))

	rec, ok := Build(f, 0, types.SetupReversalLong, types.SideLong, DefaultRewardMultiple)
	require.True(t, ok)

	assert.Equal(t, 90.0, rec.Stop)
	assert.Equal(t, 10.0, rec.Risk)
	assert.Equal(t, 112.5, rec.Target)
	assert.Equal(t, 1.25, rec.RR)
}

func TestBuild_ShortNumbers(t *testing.T) {
	f := signalFrame(100, types.F(110), types.Float{})

	rec, ok := Build(f, 0, types.SetupReversalShort, types.SideShort, DefaultRewardMultiple)
	require.True(t, ok)

	assert.Equal(t, 110.0, rec.Stop)
	assert.Equal(t, 10.0, rec.Risk)
	assert.Equal(t, 87.5, rec.Target)
}

func TestBuild_LongLevelsBracketEntry(t *testing.T) {
	f := signalFrame(52.3, types.Float{}, types.F(50.1))

	rec, ok := Build(f, 0, types.SetupContLong, types.SideLong, DefaultRewardMultiple)
	require.True(t, ok)

	assert.Less(t, rec.Stop, rec.Close)
	assert.Greater(t, rec.Target, rec.Close)
}

func TestBuild_ShortLevelsBracketEntry(t *testing.T) {
	f := signalFrame(52.3, types.F(55), types.Float{})

	rec, ok := Build(f, 0, types.SetupContShort, types.SideShort, DefaultRewardMultiple)
	require.True(t, ok)

	assert.Greater(t, rec.Stop, rec.Close)
	assert.Less(t, rec.Target, rec.Close)
}

func TestBuild_RejectsZeroRisk(t *testing.T) {
	f := signalFrame(100, types.Float{}, types.F(100))

	_, ok := Build(f, 0, types.SetupReversalLong, types.SideLong, DefaultRewardMultiple)
	assert.False(t, ok)
}

func TestBuild_RejectsNegativeRisk(t *testing.T) {
	// Stop anchor above the close: the long would risk nothing.
	f := signalFrame(100, types.Float{}, types.F(105))

	_, ok := Build(f, 0, types.SetupReversalLong, types.SideLong, DefaultRewardMultiple)
	assert.False(t, ok)
}

func TestBuild_RejectsUndefinedAnchor(t *testing.T) {
	f := signalFrame(100, types.Float{}, types.Float{})

	_, ok := Build(f, 0, types.SetupReversalLong, types.SideLong, DefaultRewardMultiple)
	assert.False(t, ok)

	_, ok = Build(f, 0, types.SetupReversalShort, types.SideShort, DefaultRewardMultiple)
	assert.False(t, ok)
}

func TestBuild_RejectsNoSetup(t *testing.T) {
	f := signalFrame(100, types.F(110), types.F(90))

	_, ok := Build(f, 0, types.SetupNone, types.SideNone, DefaultRewardMultiple)
	assert.False(t, ok)
}

func TestBuild_CustomRewardMultiple(t *testing.T) {
	f := signalFrame(100, types.Float{}, types.F(90))

	rec, ok := Build(f, 0, types.SetupReversalLong, types.SideLong, 2.0)
	require.True(t, ok)

	assert.Equal(t, 120.0, rec.Target)
	assert.Equal(t, 2.0, rec.RR)
}

func TestBuild_CarriesBarAndIndicatorColumns(t *testing.T) {
	f := signalFrame(100, types.Float{}, types.F(90))

	rec, ok := Build(f, 0, types.SetupReversalLong, types.SideLong, DefaultRewardMultiple)
	require.True(t, ok)

	assert.Equal(t, testDate, rec.Date)
	assert.Equal(t, "AAPL", rec.Ticker)
	assert.Equal(t, types.GroupOversold, rec.Group)
	assert.Equal(t, types.SetupReversalLong, rec.Setup)
	assert.Equal(t, types.SideLong, rec.Side)
	assert.Equal(t, 99.0, rec.Open)
	assert.Equal(t, 102.0, rec.High)
	assert.Equal(t, 98.0, rec.Low)
	assert.Equal(t, 100.0, rec.Close)
	assert.Equal(t, types.F(25), rec.RSI14)
	assert.Equal(t, types.F(105), rec.MA50)
	assert.False(t, rec.MA200.Valid)
	assert.Equal(t, types.F(90), rec.L3)
}
