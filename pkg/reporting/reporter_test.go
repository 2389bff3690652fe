package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/swing-scanner/internal/backtest"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

func TestDefaultReporter_InterfaceCompliance(t *testing.T) {
	var _ Reporter = NewDefaultReporter("out")
}

func TestReportingManager_ReportBacktest_WritesAllArtifacts(t *testing.T) {
	result := &backtest.Result{
		Trades: []types.TradeRecord{
			{
				Date:   testDay,
				Ticker: "AAPL",
				Group:  types.GroupOversold,
				Setup:  types.SetupReversalLong,
				Side:   types.SideLong,
				Open:   100.5,
				High:   102,
				Low:    99.25,
				Close:  101.5,
				Stop:   99,
				Target: 104.625,
				RR:     1.25,
			},
		},
		Stats: []types.AggregateStat{
			{Setup: types.SetupReversalLong, Side: types.SideLong, Horizon: 5, N: 1},
		},
		Tickers: 1,
		Bars:    250,
	}

	outDir := t.TempDir()
	manager := NewReportingManager(ReportingConfig{
		OutDir:       outDir,
		ExcelEnabled: true,
		JSONEnabled:  true,
	})

	require.NoError(t, manager.ReportBacktest(result, "data/combined.csv", 0))

	for _, name := range []string{TradesFile, StatsFile, BacktestWorkbookFile, RunSummaryFile} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	lines := readLines(t, filepath.Join(outDir, TradesFile))
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "AAPL")

	b, err := os.ReadFile(filepath.Join(outDir, RunSummaryFile))
	require.NoError(t, err)
	var summary RunSummary
	require.NoError(t, json.Unmarshal(b, &summary))
	assert.Equal(t, 1, summary.Trades)
	assert.Equal(t, "data/combined.csv", summary.DataFile)
}

func TestReportingManager_ReportBacktest_SkipsDisabledArtifacts(t *testing.T) {
	outDir := t.TempDir()
	manager := NewReportingManager(ReportingConfig{OutDir: outDir})

	require.NoError(t, manager.ReportBacktest(&backtest.Result{}, "combined.csv", 0))

	_, err := os.Stat(filepath.Join(outDir, TradesFile))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, BacktestWorkbookFile))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(outDir, RunSummaryFile))
	assert.True(t, os.IsNotExist(err))
}
