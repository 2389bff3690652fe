package indicators

import (
	"testing"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngulfing_FirstBarNeverSignals(t *testing.T) {
	bars := []types.Bar{
		barOHLC(0, 10, 12, 8, 9),
		barOHLC(1, 8.9, 12, 8, 10.1),
	}

	bull, bear := Engulfing(bars)
	require.Len(t, bull, 2)
	require.Len(t, bear, 2)
	assert.False(t, bull[0])
	assert.False(t, bear[0])
}

func TestEngulfing_BullishPattern(t *testing.T) {
	// Red bar then a green bar whose body swallows it.
	bars := []types.Bar{
		barOHLC(0, 10, 10.5, 8.5, 9),
		barOHLC(1, 8.9, 10.5, 8.5, 10.1),
	}

	bull, bear := Engulfing(bars)
	assert.True(t, bull[1])
	assert.False(t, bear[1])
}

func TestEngulfing_BearishPattern(t *testing.T) {
	bars := []types.Bar{
		barOHLC(0, 9, 10.5, 8.5, 10),
		barOHLC(1, 10.1, 10.5, 8.5, 8.9),
	}

	bull, bear := Engulfing(bars)
	assert.False(t, bull[1])
	assert.True(t, bear[1])
}

func TestEngulfing_BodyEdgesMayTouch(t *testing.T) {
	// Engulfing close equal to the prior open, and open equal to the
	// prior close, still qualifies.
	bars := []types.Bar{
		barOHLC(0, 10, 10.5, 8.5, 9),
		barOHLC(1, 9, 10.5, 8.5, 10),
	}

	bull, _ := Engulfing(bars)
	assert.True(t, bull[1])
}

func TestEngulfing_GreenAfterGreenIsNotBullish(t *testing.T) {
	bars := []types.Bar{
		barOHLC(0, 9, 10.5, 8.5, 10),
		barOHLC(1, 8.9, 10.7, 8.5, 10.6),
	}

	bull, bear := Engulfing(bars)
	assert.False(t, bull[1])
	assert.False(t, bear[1])
}

func TestEngulfing_DojiPreviousBar(t *testing.T) {
	// A flat prior body is neither red nor green, so nothing engulfs it.
	bars := []types.Bar{
		barOHLC(0, 10, 10.5, 9.5, 10),
		barOHLC(1, 9, 11, 8.5, 10.9),
	}

	bull, bear := Engulfing(bars)
	assert.False(t, bull[1])
	assert.False(t, bear[1])
}

func TestEngulfing_SmallGreenBodyInsideRed(t *testing.T) {
	// The green body must reach past both edges of the red body.
	bars := []types.Bar{
		barOHLC(0, 10, 10.5, 8.5, 9),
		barOHLC(1, 9.2, 10.5, 8.5, 9.8),
	}

	bull, _ := Engulfing(bars)
	assert.False(t, bull[1])
}

func TestEngulfing_FlagsAreMutuallyExclusive(t *testing.T) {
	// A deterministic walk that alternates widening green and red
	// bodies, so both patterns fire somewhere in the series.
	bars := make([]types.Bar, 64)
	price := 100.0
	for i := range bars {
		span := 0.5 + float64(i%5)
		if i%2 == 0 {
			bars[i] = barOHLC(i, price+span, price+span+1, price-1, price)
		} else {
			bars[i] = barOHLC(i, price-span, price+1, price-span-1, price)
		}
		price += float64(i%3) - 1
	}

	bull, bear := Engulfing(bars)
	sawBull, sawBear := false, false
	for i := range bars {
		assert.False(t, bull[i] && bear[i], "bar %d carries both flags", i)
		sawBull = sawBull || bull[i]
		sawBear = sawBear || bear[i]
	}
	require.True(t, sawBull, "walk never produced a bullish engulfing")
	require.True(t, sawBear, "walk never produced a bearish engulfing")
}

func TestEngulfing_Empty(t *testing.T) {
	bull, bear := Engulfing(nil)
	assert.Empty(t, bull)
	assert.Empty(t, bear)
}
