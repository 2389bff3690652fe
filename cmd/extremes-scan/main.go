package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ducminhle1904/swing-scanner/cmd/common"
	"github.com/ducminhle1904/swing-scanner/internal/config"
	"github.com/ducminhle1904/swing-scanner/internal/monitoring"
	"github.com/ducminhle1904/swing-scanner/internal/scan"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/reporting"
)

const AppName = "Extremes Scan"

func main() {
	dataFile := flag.String("data", "", "Path to combined bars CSV (default from DATA_FILE)")
	watchlist := flag.String("watchlist", "", "Watchlist CSV limiting the universe (default from WATCHLIST_FILE)")
	outDir := flag.String("out", "", "Output directory (default from OUTPUT_DIR)")
	commonFlags := common.RegisterCommonFlags()
	flag.Parse()

	common.SetupLogger(commonFlags)

	usage := common.NewUsageFormatter(AppName, "Report watchlist tickers whose latest RSI14 sits at an oversold or overbought extreme").
		AddExample("extremes-scan", "Scan the watchlist against data/combined.csv").
		AddExample("extremes-scan -watchlist my_list.csv", "Scan a custom watchlist").
		AddExample("extremes-scan -data data/combined.csv -out reports", "Custom input and output locations")
	if common.CheckHelpAndVersion(AppName, commonFlags, usage) {
		return
	}

	common.LoadEnvFile(*commonFlags.EnvFile)
	cfg := config.Load()

	src := cfg.Data.CombinedFile
	if *dataFile != "" {
		src = *dataFile
	}
	wl := cfg.Data.WatchlistFile
	if *watchlist != "" {
		wl = *watchlist
	}
	out := cfg.Data.OutputDir
	if *outDir != "" {
		out = *outDir
	}

	if err := run(src, wl, out, !*commonFlags.Silent); err != nil {
		os.Exit(1)
	}
}

func run(src, watchlistPath, outDir string, console bool) error {
	bars, err := data.LoadCombined(src)
	if err != nil {
		common.Error("%v", err)
		monitoring.RecordError("empty_input")
		return err
	}
	monitoring.RecordBarsLoaded("combined", len(bars))

	// A missing watchlist is not an error: the scan falls back to
	// every ticker present in the data.
	var universe []string
	if common.FileExists(watchlistPath) {
		entries, err := data.LoadWatchlist(watchlistPath)
		if err != nil {
			common.Error("Reading watchlist %s: %v", watchlistPath, err)
			return err
		}
		universe = data.Tickers(entries)
	} else {
		common.Warn("Watchlist %s not found, scanning every ticker in the data", watchlistPath)
	}

	now := time.Now().UTC()
	asOf := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	result, err := scan.NewExtremesScanner().Run(bars, universe, asOf)
	if err != nil {
		common.Error("%v", err)
		monitoring.RecordError("scan")
		return err
	}

	paths := reporting.NewDefaultPathManager(outDir)
	csvPath := paths.OutputPath(reporting.ExtremesFile)
	if err := reporting.WriteExtremesCSV(result.Rows, csvPath); err != nil {
		common.Error("Writing extremes: %v", err)
		monitoring.RecordError("write_artifacts")
		return err
	}

	tickers := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		tickers = append(tickers, row.Ticker)
	}
	if err := reporting.WriteTickerList(tickers, paths.OutputPath(reporting.ExtremesListFile)); err != nil {
		common.Error("Writing extremes list: %v", err)
		return err
	}
	if err := reporting.WriteTickerList(result.Misses, paths.OutputPath(reporting.MissedTickersFile)); err != nil {
		common.Error("Writing missed tickers: %v", err)
		return err
	}

	monitoring.RecordRowsWritten("extremes", len(result.Rows))
	for range result.Misses {
		monitoring.RecordRowSkipped("missing_ticker")
	}

	if console {
		reporting.PrintExtremesSummary(result)
	}
	fmt.Printf("Watchlist count: %d\n", len(result.Universe))
	fmt.Printf("Extremes found: %d\n", len(result.Rows))
	fmt.Printf("Misses: %d  -> %s\n", len(result.Misses), reporting.MissedTickersFile)
	return nil
}
