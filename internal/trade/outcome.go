package trade

import (
	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// Measure fills rec's outcome fields from the frame's forward series.
// Returns for each horizon are signed from the trade's point of view,
// so a falling close is a gain for a short. A horizon whose future
// close falls off the end of the partition leaves both the return and
// the win flag undefined; the record itself is kept.
//
// Target and stop touches are checked against the extremes of the ten
// bars after entry. When that window is empty both flags stay false.
// Both flags can be true on the same record when the window spans both
// levels; bar order inside the window is unknown at daily resolution,
// so neither touch is assumed to come first.
func Measure(rec *types.TradeRecord, f *indicators.Frame, i int) {
	entry := rec.Close
	for _, d := range types.Horizons {
		fut := f.CloseFut(d)[i]
		var ret types.Float
		var win types.Bool
		if fut.Valid {
			r := (fut.Value - entry) / entry
			if rec.Side == types.SideShort {
				r = -r
			}
			ret = types.F(r)
			win = types.B(r > 0)
		}
		switch d {
		case 5:
			rec.Ret5, rec.Win5 = ret, win
		case 10:
			rec.Ret10, rec.Win10 = ret, win
		case 15:
			rec.Ret15, rec.Win15 = ret, win
		}
	}

	fwdHigh := f.FwdHigh10[i]
	fwdLow := f.FwdLow10[i]
	switch rec.Side {
	case types.SideLong:
		rec.TgtHit10 = fwdHigh.Valid && fwdHigh.Value >= rec.Target
		rec.StpHit10 = fwdLow.Valid && fwdLow.Value <= rec.Stop
	case types.SideShort:
		rec.TgtHit10 = fwdLow.Valid && fwdLow.Value <= rec.Target
		rec.StpHit10 = fwdHigh.Valid && fwdHigh.Value >= rec.Stop
	}
}
