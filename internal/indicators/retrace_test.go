package indicators

import (
	"testing"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrace_MidSpan(t *testing.T) {
	closes := []float64{7.5}
	high := []types.Float{types.F(10)}
	low := []types.Float{types.F(5)}

	out := Retrace(closes, high, low)
	require.Len(t, out, 1)
	assert.Equal(t, 0.5, out[0])
}

func TestRetrace_ClampsAboveSwingHigh(t *testing.T) {
	out := Retrace([]float64{11}, []types.Float{types.F(10)}, []types.Float{types.F(5)})
	assert.Equal(t, 0.0, out[0])
}

func TestRetrace_ClampsBelowSwingLow(t *testing.T) {
	out := Retrace([]float64{4}, []types.Float{types.F(10)}, []types.Float{types.F(5)})
	assert.Equal(t, 1.0, out[0])
}

func TestRetrace_AtAnchors(t *testing.T) {
	high := []types.Float{types.F(10), types.F(10)}
	low := []types.Float{types.F(5), types.F(5)}

	out := Retrace([]float64{10, 5}, high, low)
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 1.0, out[1])
}

func TestRetrace_ZeroSpanIsZero(t *testing.T) {
	out := Retrace([]float64{10}, []types.Float{types.F(10)}, []types.Float{types.F(10)})
	assert.Equal(t, 0.0, out[0])
}

func TestRetrace_UndefinedAnchorsAreZero(t *testing.T) {
	closes := []float64{7.5, 7.5}
	high := []types.Float{{}, types.F(10)}
	low := []types.Float{types.F(5), {}}

	out := Retrace(closes, high, low)
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 0.0, out[1])
}
