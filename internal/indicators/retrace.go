package indicators

import "github.com/ducminhle1904/swing-scanner/pkg/types"

// Retrace computes the pullback fraction of the close inside the
// [swingLow, swingHigh] span: 0 at the swing high, 1 at the swing low,
// clamped to [0,1]. A zero span or undefined anchors yield 0 ("no
// retracement"), never an undefined value, so the result is a plain
// float series.
func Retrace(closes []float64, swingHigh, swingLow []types.Float) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		hi, lo := swingHigh[i], swingLow[i]
		if !hi.Valid || !lo.Valid {
			continue
		}
		span := hi.Value - lo.Value
		if span == 0 {
			continue
		}
		pct := (hi.Value - closes[i]) / span
		if pct < 0 {
			pct = 0
		} else if pct > 1 {
			pct = 1
		}
		out[i] = pct
	}
	return out
}
