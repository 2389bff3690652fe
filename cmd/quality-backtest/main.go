package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ducminhle1904/swing-scanner/cmd/common"
	"github.com/ducminhle1904/swing-scanner/internal/backtest"
	"github.com/ducminhle1904/swing-scanner/internal/config"
	"github.com/ducminhle1904/swing-scanner/internal/logger"
	"github.com/ducminhle1904/swing-scanner/internal/monitoring"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/reporting"
)

const AppName = "Quality Backtest"

func main() {
	flags := NewBacktestFlags()
	commonFlags := common.RegisterCommonFlags()
	flag.Parse()

	common.SetupLogger(commonFlags)

	if common.CheckHelpAndVersion(AppName, commonFlags, usageFormatter()) {
		return
	}

	common.LoadEnvFile(*commonFlags.EnvFile)
	cfg := config.Load()

	opts := resolveOptions(flags, commonFlags, cfg)
	if err := validateOptions(flags, &opts); err != nil {
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		os.Exit(1)
	}
}

func usageFormatter() *common.UsageFormatter {
	return common.NewUsageFormatter(AppName, "Backtest quality reversal and continuation setups over daily bars").
		AddExample("quality-backtest", "Run over data/combined.csv with defaults").
		AddExample("quality-backtest -data data/combined.csv -reward 1.5", "Custom reward multiple").
		AddExample("quality-backtest -period 90d -workers 4", "Trailing 90 days across 4 workers").
		AddExample("quality-backtest -no-excel -no-json", "CSV artifacts only").
		AddExample("quality-backtest -monitor -log", "Expose metrics and keep a session log")
}

func run(opts backtestOptions) error {
	common.Header(fmt.Sprintf("%s v%s", AppName, common.ProjectVersion))

	common.Section("Configuration")
	common.Info("Data: %s", opts.DataFile)
	common.Info("Reward multiple: %.2f", opts.Reward)
	if opts.Workers > 0 {
		common.Info("Workers: %d", opts.Workers)
	} else {
		common.Info("Workers: auto")
	}
	if opts.Period > 0 {
		common.Info("Period: trailing %dd", int(opts.Period.Hours()/24))
	}
	common.Info("Output: %s", opts.OutDir)

	var health *monitoring.HealthChecker
	if opts.Monitor {
		health = monitoring.NewHealthChecker()
		monitoring.StartServer(opts.MonitorAddr, health)
		common.Info("Monitoring on %s (/metrics, /healthz)", opts.MonitorAddr)
	}

	var runLog *logger.Logger
	if opts.LogRun {
		lg, err := logger.NewLogger("quality_backtest")
		if err != nil {
			common.Warn("Could not open session log: %v", err)
		} else {
			runLog = lg
			defer runLog.Close()
			common.Info("Session log: %s", runLog.GetLogPath())
			runLog.Info("Data file: %s, reward multiple %.2f", opts.DataFile, opts.Reward)
		}
	}

	start := time.Now()
	paths := reporting.NewDefaultPathManager(opts.OutDir)

	common.Progress("Loading %s", opts.DataFile)
	manager := data.NewBarManager()
	bars, err := manager.LoadCombined(opts.DataFile)
	if err != nil {
		return failEmptyInput(opts, paths, health, runLog, err)
	}

	if opts.Period > 0 {
		before := len(bars)
		bars = manager.FilterByTrailingPeriod(bars, opts.Period)
		common.Info("Period filter kept %d of %d bars", len(bars), before)
	}
	monitoring.RecordBarsLoaded("combined", len(bars))

	engine := backtest.NewEngine(opts.Reward, opts.Workers)
	result, err := engine.Run(bars)
	if err != nil {
		return failEmptyInput(opts, paths, health, runLog, err)
	}

	duration := time.Since(start)
	for _, t := range result.Trades {
		monitoring.RecordSetup(string(t.Setup), string(t.Side))
	}

	reports := reporting.NewReportingManager(reporting.ReportingConfig{
		OutDir:        opts.OutDir,
		EnableConsole: opts.Console,
		ExcelEnabled:  opts.ExcelOn,
		JSONEnabled:   opts.JSONOn,
	})
	if err := reports.ReportBacktest(result, opts.DataFile, duration); err != nil {
		common.Error("Writing artifacts: %v", err)
		if health != nil {
			health.RecordFailure(err.Error())
		}
		monitoring.RecordError("write_artifacts")
		return err
	}

	monitoring.RecordRowsWritten("quality_trades", len(result.Trades))
	monitoring.RecordRowsWritten("quality_stats", len(result.Stats))
	monitoring.ObserveRunDuration("quality-backtest", duration)
	if health != nil {
		health.RecordRun(len(result.Trades))
	}
	if runLog != nil {
		runLog.LogDataLoaded(opts.DataFile, result.Bars, result.Tickers)
		runLog.LogRunCompleted(len(result.Trades), paths.OutputPath(reporting.TradesFile), duration)
	}

	common.Success("Backtest completed in %s", common.FormatDuration(duration))
	return nil
}

// failEmptyInput writes the empty trade and stats artifacts so
// downstream steps see fresh files, reports the failure, and leaves
// the caller to exit non-zero.
func failEmptyInput(opts backtestOptions, paths *reporting.DefaultPathManager, health *monitoring.HealthChecker, runLog *logger.Logger, cause error) error {
	common.Error("%v", cause)

	if err := reporting.WriteTradesCSV(nil, paths.OutputPath(reporting.TradesFile)); err != nil {
		common.Error("Writing empty trades file: %v", err)
	}
	if err := reporting.WriteStatsCSV(nil, paths.OutputPath(reporting.StatsFile)); err != nil {
		common.Error("Writing empty stats file: %v", err)
	}

	monitoring.RecordError("empty_input")
	if health != nil {
		health.RecordFailure(cause.Error())
	}
	if runLog != nil {
		runLog.LogError("load input", cause)
	}
	return cause
}

func monitorAddr(port int) string {
	return fmt.Sprintf(":%d", port)
}
