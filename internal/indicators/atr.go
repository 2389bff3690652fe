package indicators

import (
	"math"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// TrueRange returns the per-bar true range: the largest of high-low,
// |high-prevClose| and |low-prevClose|. The first bar has no previous
// close, so its true range is simply high-low.
func TrueRange(bars []types.Bar) []float64 {
	tr := make([]float64, len(bars))
	for i, b := range bars {
		hl := b.High - b.Low
		if i == 0 {
			tr[i] = hl
			continue
		}
		prevClose := bars[i-1].Close
		hc := math.Abs(b.High - prevClose)
		lc := math.Abs(b.Low - prevClose)
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	return tr
}

// ATR is the simple moving average of the true range over period bars.
// Entries before a full window are undefined.
func ATR(bars []types.Bar, period int) []types.Float {
	return SMA(TrueRange(bars), period)
}
