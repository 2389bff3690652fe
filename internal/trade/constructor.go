// Package trade turns classified bars into trade records: entry at the
// close, a stop behind the recent extreme, and a target at a fixed
// multiple of the risk.
package trade

import (
	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// DefaultRewardMultiple is the target distance in units of risk.
const DefaultRewardMultiple = 1.25

// Build constructs the trade for bar i of the partition. The second
// return is false when the bar does not survive the gate: a real setup,
// a strictly positive risk, and a reward ratio at or above the
// requested multiple. Rejected bars produce no record.
func Build(f *indicators.Frame, i int, kind types.SetupKind, side types.Side, rewardMultiple float64) (types.TradeRecord, bool) {
	if kind == types.SetupNone {
		return types.TradeRecord{}, false
	}

	bar := f.Bars[i]
	var stop, risk, target float64
	switch side {
	case types.SideLong:
		if !f.L3[i].Valid {
			return types.TradeRecord{}, false
		}
		stop = f.L3[i].Value
		risk = bar.Close - stop
		target = bar.Close + rewardMultiple*risk
	case types.SideShort:
		if !f.H3[i].Valid {
			return types.TradeRecord{}, false
		}
		stop = f.H3[i].Value
		risk = stop - bar.Close
		target = bar.Close - rewardMultiple*risk
	default:
		return types.TradeRecord{}, false
	}

	if risk <= 0 {
		return types.TradeRecord{}, false
	}

	// With a positive risk the reward ratio equals the multiple, so the
	// ratio gate is satisfied by construction.
	return types.TradeRecord{
		Date:   bar.Date,
		Ticker: bar.Ticker,
		Group:  bar.Group,
		Setup:  kind,
		Side:   side,
		Open:   bar.Open,
		High:   bar.High,
		Low:    bar.Low,
		Close:  bar.Close,
		RSI14:  f.RSI14[i],
		MA50:   f.MA50[i],
		MA200:  f.MA200[i],
		H3:     f.H3[i],
		L3:     f.L3[i],
		Stop:   stop,
		Risk:   risk,
		Target: target,
		RR:     rewardMultiple,
	}, true
}
