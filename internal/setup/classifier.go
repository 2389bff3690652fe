// Package setup classifies daily bars into tradeable setups. Rules are
// evaluated in a fixed priority order and the first match wins; every
// comparison against an undefined value fails the rule.
package setup

import (
	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// Rule thresholds. RSI bounds are inclusive on both ends.
const (
	ReversalOversoldRSI   = 30.0
	ReversalOverboughtRSI = 70.0

	ContLongRSILow   = 40.0
	ContLongRSIHigh  = 65.0
	ContShortRSILow  = 35.0
	ContShortRSIHigh = 60.0

	// MaxRetracePct caps how deep a pullback may cut into the recent
	// swing before a continuation entry is off the table.
	MaxRetracePct = 0.38
)

// Classify returns the setup for bar i of the partition, or SetupNone.
// Priority runs reversals before continuations and longs before shorts.
// Only signal-side series are read, so the result is identical whether
// or not the frame's forward series have been computed.
func Classify(f *indicators.Frame, i int) (types.SetupKind, types.Side) {
	switch {
	case reversalLong(f, i):
		return types.SetupReversalLong, types.SideLong
	case reversalShort(f, i):
		return types.SetupReversalShort, types.SideShort
	case contLong(f, i):
		return types.SetupContLong, types.SideLong
	case contShort(f, i):
		return types.SetupContShort, types.SideShort
	}
	return types.SetupNone, types.SideNone
}

// reversalLong fires on an oversold-group ticker printing a bullish
// engulfing bar while RSI is washed out. The prior low must exist so a
// stop can be placed under it.
func reversalLong(f *indicators.Frame, i int) bool {
	return f.Bars[i].Group == types.GroupOversold &&
		f.RSI14[i].LTE(ReversalOversoldRSI) &&
		f.BullEngulf[i] &&
		f.L3[i].Valid
}

func reversalShort(f *indicators.Frame, i int) bool {
	return f.Bars[i].Group == types.GroupOverbought &&
		f.RSI14[i].GTE(ReversalOverboughtRSI) &&
		f.BearEngulf[i] &&
		f.H3[i].Valid
}

// contLong fires in an uptrend on a shallow pullback or a fresh
// breakout above the swing high, confirmed by either an engulfing bar
// or the breakout itself.
func contLong(f *indicators.Frame, i int) bool {
	c := f.Bars[i].Close
	breakout := f.LH10[i].Valid && c > f.LH10[i].Value
	return f.MA50[i].Valid && c > f.MA50[i].Value &&
		f.RSI14[i].Between(ContLongRSILow, ContLongRSIHigh) &&
		(f.RetracePct[i] <= MaxRetracePct || breakout) &&
		(f.BullEngulf[i] || breakout) &&
		f.L3[i].Valid
}

func contShort(f *indicators.Frame, i int) bool {
	c := f.Bars[i].Close
	breakdown := f.LL10[i].Valid && c < f.LL10[i].Value
	return f.MA50[i].Valid && c < f.MA50[i].Value &&
		f.RSI14[i].Between(ContShortRSILow, ContShortRSIHigh) &&
		(f.RetracePct[i] <= MaxRetracePct || breakdown) &&
		(f.BearEngulf[i] || breakdown) &&
		f.H3[i].Valid
}
