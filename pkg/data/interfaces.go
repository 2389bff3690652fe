package data

import (
	"time"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// BarProvider interface for loading daily bars from various sources
type BarProvider interface {
	// LoadBars loads bars from the specified source, sorted by ticker
	// then date with duplicate (ticker, date) rows removed
	LoadBars(source string) ([]types.Bar, error)

	// ValidateBars validates the integrity of the loaded bars
	ValidateBars(bars []types.Bar) error

	// GetName returns the name of the provider
	GetName() string
}

// BarFilter interface for filtering and transforming bars
type BarFilter interface {
	// FilterByTrailingPeriod keeps bars within period of the newest date
	FilterByTrailingPeriod(bars []types.Bar, period time.Duration) []types.Bar

	// FilterByDateRange keeps bars inside [start, end]
	FilterByDateRange(bars []types.Bar, start, end time.Time) []types.Bar
}

// ColumnMapping names the CSV headers each bar field is read from.
// AdjClose and Volume are optional; a file without them still loads.
type ColumnMapping struct {
	Date       string
	Ticker     string
	Group      string
	Open       string
	High       string
	Low        string
	Close      string
	AdjClose   string
	Volume     string
	DateFormat string
}

// DefaultColumnMapping matches the combined.csv layout the fetcher
// writes.
var DefaultColumnMapping = ColumnMapping{
	Date:       "Date",
	Ticker:     "Ticker",
	Group:      "Group",
	Open:       "Open",
	High:       "High",
	Low:        "Low",
	Close:      "Close",
	AdjClose:   "Adj Close",
	Volume:     "Volume",
	DateFormat: "2006-01-02",
}

// Required returns the headers a file must carry to be usable.
func (m ColumnMapping) Required() []string {
	return []string{m.Date, m.Ticker, m.Group, m.Open, m.High, m.Low, m.Close}
}
