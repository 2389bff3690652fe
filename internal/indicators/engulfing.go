package indicators

import "github.com/ducminhle1904/swing-scanner/pkg/types"

// Engulfing computes the bullish and bearish engulfing flags for a
// single ticker partition. Each bar is compared only against the bar
// immediately before it within the same partition, so the first bar is
// always false for both. A bar can never carry both flags: bullish
// demands a green candle, bearish a red one.
func Engulfing(bars []types.Bar) (bull, bear []bool) {
	bull = make([]bool, len(bars))
	bear = make([]bool, len(bars))

	for i := 1; i < len(bars); i++ {
		cur, prev := bars[i], bars[i-1]

		bull[i] = cur.Close > cur.Open && prev.Close < prev.Open &&
			cur.Close >= prev.Open && cur.Open <= prev.Close
		bear[i] = cur.Close < cur.Open && prev.Close > prev.Open &&
			cur.Close <= prev.Open && cur.Open >= prev.Close
	}
	return bull, bear
}
