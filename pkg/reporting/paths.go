package reporting

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputDir is where artifacts land when no directory is given.
const DefaultOutputDir = "data"

// Artifact names shared by the commands and the reporting manager.
const (
	CombinedFile         = "combined.csv"
	SignalsFile          = "signals.csv"
	QualityFile          = "quality_today.csv"
	TradesFile           = "quality_trades.csv"
	StatsFile            = "quality_stats.csv"
	BacktestWorkbookFile = "quality_backtest.xlsx"
	RunSummaryFile       = "run_summary.json"
	ExtremesFile         = "extremes.csv"
	ExtremesListFile     = "extremes.txt"
	MissedTickersFile    = "missed_tickers.txt"
)

// DefaultPathManager implements path management functionality
type DefaultPathManager struct {
	outDir string
}

// NewDefaultPathManager creates a path manager rooted at outDir,
// falling back to DefaultOutputDir when outDir is blank.
func NewDefaultPathManager(outDir string) *DefaultPathManager {
	dir := strings.TrimSpace(outDir)
	if dir == "" {
		dir = DefaultOutputDir
	}
	return &DefaultPathManager{outDir: dir}
}

// OutputPath returns the full path for a named artifact.
func (p *DefaultPathManager) OutputPath(name string) string {
	return filepath.Join(p.outDir, name)
}

// EnsureDirectoryExists creates the parent directory of a file path if
// it doesn't exist.
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
