package indicators

import "github.com/ducminhle1904/swing-scanner/pkg/types"

// Window lengths shared by the backtest and the scanners.
const (
	RSIPeriod     = 14
	StopWindow    = 3  // prior-bar extremum used for stop placement
	SwingWindow   = 10 // lookback for swing high/low and retrace anchor
	ForwardWindow = 10 // bars checked for target/stop touches

	MAFastWindow  = 20
	MATrendWindow = 50
	MASlowWindow  = 200

	ATRWindow = 20
)

// Frame holds the derived series for one ticker partition. Every slice
// is index-aligned with Bars. ComputeFeatures fills only the
// signal-side series; the forward-looking series stay nil until
// ComputeForward runs, so classification code cannot read ahead of the
// bar it is deciding on.
type Frame struct {
	Bars []types.Bar

	RSI14 []types.Float
	MA20  []types.Float
	MA50  []types.Float
	MA200 []types.Float

	BullEngulf []bool
	BearEngulf []bool

	// H3 and L3 are the highest high and lowest low of up to StopWindow
	// bars strictly before the current one. LH10 and LL10 are the same
	// over SwingWindow bars.
	H3   []types.Float
	L3   []types.Float
	LH10 []types.Float
	LL10 []types.Float

	// RetracePct is the pullback of the close inside the LL10..LH10
	// span, clamped to [0,1]. Bars with no usable span carry 0.
	RetracePct []float64

	CloseFut5  []types.Float
	CloseFut10 []types.Float
	CloseFut15 []types.Float
	FwdHigh10  []types.Float
	FwdLow10   []types.Float

	closes []float64
	highs  []float64
	lows   []float64
}

// ComputeFeatures builds the signal-side series for a single ticker's
// bars. Bars must be sorted by date and belong to one ticker; series
// never look across partition boundaries.
func ComputeFeatures(bars []types.Bar) *Frame {
	f := &Frame{
		Bars:   bars,
		closes: make([]float64, len(bars)),
		highs:  make([]float64, len(bars)),
		lows:   make([]float64, len(bars)),
	}
	for i, b := range bars {
		f.closes[i] = b.Close
		f.highs[i] = b.High
		f.lows[i] = b.Low
	}

	f.RSI14 = RSI(f.closes, RSIPeriod)
	f.MA20 = SMA(f.closes, MAFastWindow)
	f.MA50 = SMA(f.closes, MATrendWindow)
	f.MA200 = SMA(f.closes, MASlowWindow)
	f.BullEngulf, f.BearEngulf = Engulfing(bars)
	f.H3 = PriorHigh(f.highs, StopWindow, 1)
	f.L3 = PriorLow(f.lows, StopWindow, 1)
	f.LH10 = PriorHigh(f.highs, SwingWindow, 1)
	f.LL10 = PriorLow(f.lows, SwingWindow, 1)
	f.RetracePct = Retrace(f.closes, f.LH10, f.LL10)
	return f
}

// ComputeForward attaches the outcome-side series: the close d bars
// ahead for each measurement horizon, and the extrema of the
// ForwardWindow bars strictly after the current one.
func (f *Frame) ComputeForward() {
	f.CloseFut5 = FutureValue(f.closes, 5)
	f.CloseFut10 = FutureValue(f.closes, 10)
	f.CloseFut15 = FutureValue(f.closes, 15)
	f.FwdHigh10 = ForwardHigh(f.highs, ForwardWindow)
	f.FwdLow10 = ForwardLow(f.lows, ForwardWindow)
}

// Len returns the number of bars in the partition.
func (f *Frame) Len() int { return len(f.Bars) }

// CloseFut returns the future-close series for the given horizon, or
// nil for an unknown horizon.
func (f *Frame) CloseFut(horizon int) []types.Float {
	switch horizon {
	case 5:
		return f.CloseFut5
	case 10:
		return f.CloseFut10
	case 15:
		return f.CloseFut15
	}
	return nil
}
