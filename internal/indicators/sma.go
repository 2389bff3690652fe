package indicators

import "github.com/ducminhle1904/swing-scanner/pkg/types"

// SMA computes the trailing simple moving average including the current
// index. Values are undefined until a full window of history exists.
func SMA(values []float64, window int) []types.Float {
	out := make([]types.Float, len(values))
	if window < 1 {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = types.F(sum / float64(window))
		}
	}
	return out
}
