// Package reporting writes scan and backtest results to the console
// and to CSV, Excel, and JSON artifacts.
package reporting

import (
	"time"

	"github.com/ducminhle1904/swing-scanner/internal/backtest"
	"github.com/ducminhle1904/swing-scanner/internal/scan"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// ConsoleReporter defines the terminal output surface.
type ConsoleReporter interface {
	PrintBacktestSummary(result *backtest.Result, duration time.Duration)
	PrintStatsTable(stats []types.AggregateStat)
	PrintQualityTable(rows []types.QualityRow, asOf time.Time)
	PrintExtremesSummary(result *scan.ExtremesResult)
}

// FileReporter defines the file output surface.
type FileReporter interface {
	WriteTradesCSV(trades []types.TradeRecord, path string) error
	WriteStatsCSV(stats []types.AggregateStat, path string) error
	WriteSignalsCSV(rows []types.SignalRow, path string) error
	WriteQualityCSV(rows []types.QualityRow, path string) error
	WriteExtremesCSV(rows []types.ExtremeRow, path string) error
	WriteBarsCSV(bars []types.Bar, path string) error
	WriteTickerList(tickers []string, path string) error
	WriteBacktestXLSX(result *backtest.Result, path string) error
}

// PathManager defines output path management.
type PathManager interface {
	OutputPath(name string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting surfaces.
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}

// ExcelStyles holds the style ids used across workbook sheets.
type ExcelStyles struct {
	HeaderStyle  int
	BaseStyle    int
	PriceStyle   int
	PercentStyle int
	LongStyle    int
	ShortStyle   int
	SummaryStyle int
}
