package types

// AggregateStat is one (Setup, Side, horizon) row of the stats table.
// Avg/Median/PosRate are undefined when no return at that horizon was
// resolvable; the hit rates are attached at the (Setup, Side) level and
// repeat across the group's horizons.
type AggregateStat struct {
	Setup    SetupKind `json:"Setup"`
	Side     Side      `json:"Side"`
	Horizon  int       `json:"horizon"`
	N        int       `json:"n"`
	Avg      Float     `json:"avg"`
	Median   Float     `json:"median"`
	PosRate  Float     `json:"pos_rate"`
	TgtHit10 float64   `json:"tgt_hit10"`
	StpHit10 float64   `json:"stp_hit10"`
}
