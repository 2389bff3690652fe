package types

import "time"

// Horizons are the forward-return evaluation distances, in bars.
var Horizons = [3]int{5, 10, 15}

// TradeRecord is one qualifying bar that passed the quality filter,
// carrying its construction levels and realized forward outcomes.
type TradeRecord struct {
	Date   time.Time
	Ticker string
	Group  string
	Setup  SetupKind
	Side   Side

	Open  float64
	High  float64
	Low   float64
	Close float64

	RSI14 Float
	MA50  Float
	MA200 Float
	H3    Float
	L3    Float

	Stop   float64
	Risk   float64 // strictly positive for every record; not serialized
	Target float64
	RR     float64

	Ret5  Float
	Ret10 Float
	Ret15 Float
	Win5  Bool
	Win10 Bool
	Win15 Bool

	TgtHit10 bool
	StpHit10 bool
}

// Ret returns the signed forward return for a horizon in Horizons.
func (t TradeRecord) Ret(horizon int) Float {
	switch horizon {
	case 5:
		return t.Ret5
	case 10:
		return t.Ret10
	case 15:
		return t.Ret15
	default:
		return Undefined()
	}
}
