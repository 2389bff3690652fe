package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ducminhle1904/swing-scanner/internal/backtest"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// RunSummary is the machine-readable sidecar written next to the CSV
// artifacts so pipelines can check a run without parsing tables.
type RunSummary struct {
	GeneratedAt time.Time             `json:"generated_at"`
	DataFile    string                `json:"data_file"`
	Tickers     int                   `json:"tickers"`
	Bars        int                   `json:"bars"`
	Trades      int                   `json:"trades"`
	Longs       int                   `json:"longs"`
	Shorts      int                   `json:"shorts"`
	Duration    string                `json:"duration"`
	Stats       []types.AggregateStat `json:"stats"`
}

// DefaultJSONFormatter implements JSON output functionality
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// BuildRunSummary collects headline numbers from a backtest result.
func (f *DefaultJSONFormatter) BuildRunSummary(result *backtest.Result, dataFile string, duration time.Duration) RunSummary {
	longs := 0
	shorts := 0
	for _, t := range result.Trades {
		if t.Side == types.SideLong {
			longs++
		} else {
			shorts++
		}
	}

	return RunSummary{
		GeneratedAt: time.Now().UTC(),
		DataFile:    dataFile,
		Tickers:     result.Tickers,
		Bars:        result.Bars,
		Trades:      len(result.Trades),
		Longs:       longs,
		Shorts:      shorts,
		Duration:    duration.Round(time.Millisecond).String(),
		Stats:       result.Stats,
	}
}

// WriteRunSummaryJSON writes the summary to a JSON file.
func WriteRunSummaryJSON(summary RunSummary, path string) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}
