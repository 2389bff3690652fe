package main

import (
	"flag"
	"time"

	"github.com/ducminhle1904/swing-scanner/cmd/common"
	"github.com/ducminhle1904/swing-scanner/internal/config"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
)

// BacktestFlags holds all command line flags for the quality backtest
// command. Unset flags fall back to the environment configuration.
type BacktestFlags struct {
	// Input
	DataFile *string
	Period   *string

	// Engine
	Reward  *float64
	Workers *int

	// Output
	OutDir  *string
	NoExcel *bool
	NoJSON  *bool
	LogRun  *bool
	Monitor *bool
}

// NewBacktestFlags creates and registers the backtest command line flags
func NewBacktestFlags() *BacktestFlags {
	return &BacktestFlags{
		DataFile: flag.String("data", "", "Path to combined bars CSV (default from DATA_FILE)"),
		Period:   flag.String("period", "", "Limit data to trailing period (7d, 30d, 180d)"),

		Reward:  flag.Float64("reward", 0, "Reward multiple for targets (default from REWARD_MULTIPLE)"),
		Workers: flag.Int("workers", -1, "Worker count, 0 = one per CPU (default from WORKERS)"),

		OutDir:  flag.String("out", "", "Output directory (default from OUTPUT_DIR)"),
		NoExcel: flag.Bool("no-excel", false, "Skip the Excel workbook artifact"),
		NoJSON:  flag.Bool("no-json", false, "Skip the run summary JSON artifact"),
		LogRun:  flag.Bool("log", false, "Write a session log file under logs/"),
		Monitor: flag.Bool("monitor", false, "Serve /metrics and /healthz while running"),
	}
}

// backtestOptions are the flag values merged with the environment
// configuration, ready to run with.
type backtestOptions struct {
	DataFile    string
	OutDir      string
	Reward      float64
	Workers     int
	Period      time.Duration
	ExcelOn     bool
	JSONOn      bool
	LogRun      bool
	Monitor     bool
	MonitorAddr string
	Console     bool
}

// resolveOptions merges explicit flags over the environment config.
func resolveOptions(flags *BacktestFlags, commonFlags *common.CommonFlags, cfg *config.Config) backtestOptions {
	opts := backtestOptions{
		DataFile:    cfg.Data.CombinedFile,
		OutDir:      cfg.Data.OutputDir,
		Reward:      cfg.Backtest.RewardMultiple,
		Workers:     cfg.Backtest.Workers,
		ExcelOn:     !*flags.NoExcel,
		JSONOn:      !*flags.NoJSON,
		LogRun:      *flags.LogRun,
		Monitor:     *flags.Monitor,
		MonitorAddr: monitorAddr(cfg.Monitoring.PrometheusPort),
		Console:     !*commonFlags.Silent,
	}

	if *flags.DataFile != "" {
		opts.DataFile = *flags.DataFile
	}
	if *flags.OutDir != "" {
		opts.OutDir = *flags.OutDir
	}
	if *flags.Reward > 0 {
		opts.Reward = *flags.Reward
	}
	if *flags.Workers >= 0 {
		opts.Workers = *flags.Workers
	}
	return opts
}

// validateOptions checks the merged options, including the period
// string, which is parsed here so validation and use agree.
func validateOptions(flags *BacktestFlags, opts *backtestOptions) error {
	v := common.NewFlagValidator()
	v.ValidateFloat("reward", opts.Reward, 0.01, 100)
	v.ValidateInt("workers", opts.Workers, 0, 256)

	if *flags.Period != "" {
		d, ok := data.ParseTrailingPeriod(*flags.Period)
		if !ok {
			v.AddError("invalid period format: " + *flags.Period + " (use 7d, 30d, 180d)")
		} else {
			opts.Period = d
		}
	}

	if v.HasErrors() {
		v.PrintErrors()
		return v.GetError()
	}
	return nil
}
