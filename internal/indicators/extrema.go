package indicators

import "github.com/ducminhle1904/swing-scanner/pkg/types"

// PriorHigh returns, for each index, the maximum over the window bars
// strictly before it (the current bar never sees its own high). The
// value is undefined until at least minPeriods prior bars exist;
// minPeriods=1 leaves only the first bar undefined, minPeriods=window
// demands a full window.
func PriorHigh(values []float64, window, minPeriods int) []types.Float {
	return priorExtremum(values, window, minPeriods, func(a, b float64) bool { return a > b })
}

// PriorLow is the minimum counterpart of PriorHigh.
func PriorLow(values []float64, window, minPeriods int) []types.Float {
	return priorExtremum(values, window, minPeriods, func(a, b float64) bool { return a < b })
}

func priorExtremum(values []float64, window, minPeriods int, better func(a, b float64) bool) []types.Float {
	out := make([]types.Float, len(values))
	if window < 1 {
		return out
	}
	if minPeriods < 1 {
		minPeriods = 1
	}

	for i := range values {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		if i-lo < minPeriods {
			continue
		}
		ext := values[lo]
		for j := lo + 1; j < i; j++ {
			if better(values[j], ext) {
				ext = values[j]
			}
		}
		out[i] = types.F(ext)
	}
	return out
}

// ForwardHigh returns, for each index, the maximum over the window bars
// strictly after it, clipped at the end of the slice. Only the last
// index is undefined (no future bar exists there). Forward series feed
// outcome resolution exclusively; the classifier never reads them.
func ForwardHigh(values []float64, window int) []types.Float {
	return forwardExtremum(values, window, func(a, b float64) bool { return a > b })
}

// ForwardLow is the minimum counterpart of ForwardHigh.
func ForwardLow(values []float64, window int) []types.Float {
	return forwardExtremum(values, window, func(a, b float64) bool { return a < b })
}

func forwardExtremum(values []float64, window int, better func(a, b float64) bool) []types.Float {
	out := make([]types.Float, len(values))
	if window < 1 {
		return out
	}

	for i := range values {
		lo := i + 1
		hi := i + window
		if hi > len(values)-1 {
			hi = len(values) - 1
		}
		if lo > hi {
			continue
		}
		ext := values[lo]
		for j := lo + 1; j <= hi; j++ {
			if better(values[j], ext) {
				ext = values[j]
			}
		}
		out[i] = types.F(ext)
	}
	return out
}

// FutureValue returns, for each index, the value d bars ahead;
// undefined within d bars of the end.
func FutureValue(values []float64, d int) []types.Float {
	out := make([]types.Float, len(values))
	if d < 0 {
		return out
	}
	for i := range values {
		if i+d < len(values) {
			out[i] = types.F(values[i+d])
		}
	}
	return out
}
