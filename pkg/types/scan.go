package types

import "time"

// Trigger names carried on scan rows.
const (
	TriggerRSIUp           = "RSI_UP"
	TriggerRSIDown         = "RSI_DOWN"
	TriggerQualityReversal = "QUALITY_REVERSAL"
)

// SignalRow is one momentum trigger: a bar whose RSI moved against the
// prior bar's reading. Both RSI values are defined by construction;
// the reference levels may not be early in a ticker's history.
type SignalRow struct {
	Date    time.Time
	Ticker  string
	Group   string
	Side    Side
	Trigger string

	Open  float64
	High  float64
	Low   float64
	Close float64

	RSI14 float64
	H3    Float
	L3    Float
}

// Grade buckets a reward ratio into the quality tiers traders act on.
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeBPlus  Grade = "B+"
	GradeReject Grade = "REJECT"
)

// GradeOf assigns the tier for a reward ratio.
func GradeOf(rr float64) Grade {
	switch {
	case rr >= 1.75:
		return GradeAPlus
	case rr >= 1.50:
		return GradeA
	case rr >= 1.25:
		return GradeBPlus
	default:
		return GradeReject
	}
}

// Rank orders grades best first for output sorting.
func (g Grade) Rank() int {
	switch g {
	case GradeAPlus:
		return 0
	case GradeA:
		return 1
	case GradeBPlus:
		return 2
	default:
		return 3
	}
}

// QualityRow is one actionable reversal setup on the latest session:
// all context values are defined or the row would not exist.
type QualityRow struct {
	Date    time.Time
	Ticker  string
	Group   string
	Side    Side
	Trigger string

	Open  float64
	High  float64
	Low   float64
	Close float64

	RSI14 float64
	H3    float64
	L3    float64

	Stop   float64
	Target float64
	RR     float64
	Grade  Grade
}

// ExtremeRow is one watchlist ticker whose latest RSI sits at an
// extreme. The longer-window context values stay undefined when the
// ticker's history is too short for them.
type ExtremeRow struct {
	Ticker string
	RSI14  float64
	Side   Side
	Close  float64
	AsOf   time.Time

	ATR20 Float
	MA50  Float
	MA200 Float
}
