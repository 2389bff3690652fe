package reporting

import (
	"fmt"
	"time"

	"github.com/ducminhle1904/swing-scanner/internal/backtest"
	"github.com/ducminhle1904/swing-scanner/internal/scan"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// DefaultReporter implements the complete Reporter interface
type DefaultReporter struct {
	console *DefaultConsoleReporter
	csv     *DefaultCSVReporter
	excel   *DefaultExcelReporter
	json    *DefaultJSONFormatter
	paths   *DefaultPathManager
}

// NewDefaultReporter creates a new default reporter with all outputs
// rooted at outDir.
func NewDefaultReporter(outDir string) *DefaultReporter {
	return &DefaultReporter{
		console: NewDefaultConsoleReporter(),
		csv:     NewDefaultCSVReporter(),
		excel:   NewDefaultExcelReporter(),
		json:    NewDefaultJSONFormatter(),
		paths:   NewDefaultPathManager(outDir),
	}
}

// Console output methods
func (r *DefaultReporter) PrintBacktestSummary(result *backtest.Result, duration time.Duration) {
	r.console.PrintBacktestSummary(result, duration)
}

func (r *DefaultReporter) PrintStatsTable(stats []types.AggregateStat) {
	r.console.PrintStatsTable(stats)
}

func (r *DefaultReporter) PrintQualityTable(rows []types.QualityRow, asOf time.Time) {
	r.console.PrintQualityTable(rows, asOf)
}

func (r *DefaultReporter) PrintExtremesSummary(result *scan.ExtremesResult) {
	r.console.PrintExtremesSummary(result)
}

// File output methods
func (r *DefaultReporter) WriteTradesCSV(trades []types.TradeRecord, path string) error {
	return r.csv.WriteTradesCSV(trades, path)
}

func (r *DefaultReporter) WriteStatsCSV(stats []types.AggregateStat, path string) error {
	return r.csv.WriteStatsCSV(stats, path)
}

func (r *DefaultReporter) WriteSignalsCSV(rows []types.SignalRow, path string) error {
	return r.csv.WriteSignalsCSV(rows, path)
}

func (r *DefaultReporter) WriteQualityCSV(rows []types.QualityRow, path string) error {
	return r.csv.WriteQualityCSV(rows, path)
}

func (r *DefaultReporter) WriteExtremesCSV(rows []types.ExtremeRow, path string) error {
	return r.csv.WriteExtremesCSV(rows, path)
}

func (r *DefaultReporter) WriteBarsCSV(bars []types.Bar, path string) error {
	return r.csv.WriteBarsCSV(bars, path)
}

func (r *DefaultReporter) WriteTickerList(tickers []string, path string) error {
	return r.csv.WriteTickerList(tickers, path)
}

func (r *DefaultReporter) WriteBacktestXLSX(result *backtest.Result, path string) error {
	return r.excel.WriteBacktestXLSX(result, path)
}

// Path management methods
func (r *DefaultReporter) OutputPath(name string) string {
	return r.paths.OutputPath(name)
}

func (r *DefaultReporter) EnsureDirectoryExists(path string) error {
	return r.paths.EnsureDirectoryExists(path)
}

// ReportingConfig controls which artifacts a manager run produces.
type ReportingConfig struct {
	OutDir        string
	EnableConsole bool
	ExcelEnabled  bool
	JSONEnabled   bool
}

// ReportingManager provides a high-level interface for all reporting needs
type ReportingManager struct {
	reporter *DefaultReporter
	config   ReportingConfig
}

// NewReportingManager creates a new reporting manager with configuration
func NewReportingManager(config ReportingConfig) *ReportingManager {
	return &ReportingManager{
		reporter: NewDefaultReporter(config.OutDir),
		config:   config,
	}
}

// ReportBacktest writes the trade and stats artifacts, plus the
// workbook and JSON sidecar when enabled, and prints the run summary.
// The plain wrote-lines always print so cron logs show where the
// artifacts went.
func (m *ReportingManager) ReportBacktest(result *backtest.Result, dataFile string, duration time.Duration) error {
	if m.config.EnableConsole {
		m.reporter.PrintBacktestSummary(result, duration)
		m.reporter.PrintStatsTable(result.Stats)
	}

	tradesPath := m.reporter.OutputPath(TradesFile)
	if err := m.reporter.WriteTradesCSV(result.Trades, tradesPath); err != nil {
		return err
	}

	statsPath := m.reporter.OutputPath(StatsFile)
	if err := m.reporter.WriteStatsCSV(result.Stats, statsPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %d trades -> %s\n", len(result.Trades), tradesPath)
	fmt.Printf("Stats -> %s\n", statsPath)

	if m.config.ExcelEnabled {
		if err := m.reporter.WriteBacktestXLSX(result, m.reporter.OutputPath(BacktestWorkbookFile)); err != nil {
			return err
		}
	}

	if m.config.JSONEnabled {
		summary := m.reporter.json.BuildRunSummary(result, dataFile, duration)
		if err := WriteRunSummaryJSON(summary, m.reporter.OutputPath(RunSummaryFile)); err != nil {
			return err
		}
	}

	return nil
}
