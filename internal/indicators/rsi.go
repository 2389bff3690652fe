package indicators

import (
	"math"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// zeroLossEps replaces an average decline of exactly zero before the
// RS division, so an all-gain stretch pushes RSI toward (but never
// onto) 100 instead of dividing by zero.
const zeroLossEps = 1e-12

// RSI computes the Wilder-smoothed Relative Strength Index for each
// index of closes. The gain/loss accumulators seed at the first price
// change, so index 0 is undefined and every later index is defined.
func RSI(closes []float64, period int) []types.Float {
	out := make([]types.Float, len(closes))
	if len(closes) < 2 || period < 1 {
		return out
	}

	alpha := 1.0 / float64(period)
	var avgGain, avgLoss float64
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain := math.Max(delta, 0)
		loss := math.Max(-delta, 0)

		if i == 1 {
			avgGain = gain
			avgLoss = loss
		} else {
			avgGain = (1-alpha)*avgGain + alpha*gain
			avgLoss = (1-alpha)*avgLoss + alpha*loss
		}

		// The accumulator keeps the true average; only the divisor is
		// floored.
		divisor := avgLoss
		if divisor == 0 {
			divisor = zeroLossEps
		}
		rs := avgGain / divisor
		out[i] = types.F(100 - 100/(1+rs))
	}
	return out
}

// RSIExact is the variant without the epsilon floor: an all-gain window
// saturates at exactly 100 and a flat window is undefined. The extremes
// scan uses it so flat tickers are skipped rather than reported as
// oversold.
func RSIExact(closes []float64, period int) []types.Float {
	out := make([]types.Float, len(closes))
	if len(closes) < 2 || period < 1 {
		return out
	}

	alpha := 1.0 / float64(period)
	var avgGain, avgLoss float64
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain := math.Max(delta, 0)
		loss := math.Max(-delta, 0)

		if i == 1 {
			avgGain = gain
			avgLoss = loss
		} else {
			avgGain = (1-alpha)*avgGain + alpha*gain
			avgLoss = (1-alpha)*avgLoss + alpha*loss
		}

		switch {
		case avgLoss > 0:
			rs := avgGain / avgLoss
			out[i] = types.F(100 - 100/(1+rs))
		case avgGain > 0:
			out[i] = types.F(100)
		default:
			// Flat so far: 0/0, no meaningful reading.
		}
	}
	return out
}
