package types

import "time"

// Group labels carried on input rows. The watchlist workflow assigns
// them before any bar reaches this system.
const (
	GroupOversold   = "oversold"
	GroupOverbought = "overbought"
	GroupBreakouts  = "breakouts"
)

// Bar is one ticker/date OHLC observation plus its regime label.
// Bars for a ticker must be ordered by Date before any series math.
type Bar struct {
	Date     time.Time
	Ticker   string
	Group    string
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}
