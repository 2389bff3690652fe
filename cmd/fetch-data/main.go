package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ducminhle1904/swing-scanner/cmd/common"
	"github.com/ducminhle1904/swing-scanner/internal/config"
	"github.com/ducminhle1904/swing-scanner/internal/exchange/bybit"
	"github.com/ducminhle1904/swing-scanner/internal/fetch"
	"github.com/ducminhle1904/swing-scanner/internal/monitoring"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/reporting"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

const AppName = "Fetch Data"

func main() {
	watchlist := flag.String("watchlist", "", "Watchlist CSV naming tickers and their groups (default from WATCHLIST_FILE)")
	outDir := flag.String("out", "", "Output directory (default from OUTPUT_DIR)")
	category := flag.String("category", "", "Bybit market category: spot, linear, inverse (default from BYBIT_CATEGORY)")
	interval := flag.String("interval", "", "Kline interval, e.g. D, 60, 1d (default from FETCH_INTERVAL)")
	window := flag.Int("window", 0, "Days of history to fetch (default from FETCH_WINDOW_DAYS)")
	commonFlags := common.RegisterCommonFlags()
	flag.Parse()

	common.SetupLogger(commonFlags)

	usage := common.NewUsageFormatter(AppName, "Download daily bars from Bybit for every watchlist ticker and write per-group and combined CSVs").
		AddExample("fetch-data", "Fetch the default watchlist into data/").
		AddExample("fetch-data -watchlist my_list.csv -window 90", "Fetch 90 days for a custom watchlist").
		AddExample("fetch-data -category linear -interval D", "Fetch daily bars from the linear market")
	if common.CheckHelpAndVersion(AppName, commonFlags, usage) {
		return
	}

	common.LoadEnvFile(*commonFlags.EnvFile)
	cfg := config.Load()

	wl := cfg.Data.WatchlistFile
	if *watchlist != "" {
		wl = *watchlist
	}
	out := cfg.Data.OutputDir
	if *outDir != "" {
		out = *outDir
	}
	cat := cfg.Fetch.Category
	if *category != "" {
		cat = *category
	}
	intervalName := cfg.Fetch.Interval
	if *interval != "" {
		intervalName = *interval
	}
	days := cfg.Fetch.WindowDays
	if *window > 0 {
		days = *window
	}

	validator := common.NewFlagValidator()
	validator.ValidateFile("watchlist", wl, true)
	validator.ValidateChoice("category", cat, []string{"spot", "linear", "inverse"})
	validator.ValidateInt("window", days, 1, 2000)
	klineInterval, err := bybit.IntervalFromString(intervalName)
	if err != nil {
		validator.AddError(err.Error())
	}
	if validator.HasErrors() {
		validator.PrintErrors()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := bybit.NewClient(bybit.Config{
		APIKey:    cfg.Exchange.APIKey,
		APISecret: cfg.Exchange.Secret,
		Testnet:   cfg.Exchange.Testnet,
	})
	common.Info("Bybit %s, category %s, interval %s, window %dd", client.Environment(), cat, string(klineInterval), days)
	fetcher := fetch.NewFetcher(client, fetch.Options{
		Category: cat,
		Interval: klineInterval,
		Window:   time.Duration(days) * 24 * time.Hour,
	})

	if err := run(ctx, fetcher, wl, out); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, fetcher *fetch.Fetcher, watchlistPath, outDir string) error {
	entries, err := data.LoadWatchlist(watchlistPath)
	if err != nil {
		common.Error("%v", err)
		monitoring.RecordError("empty_input")
		return err
	}
	buckets := data.Buckets(entries)
	paths := reporting.NewDefaultPathManager(outDir)

	var frames [][]types.Bar
	for _, group := range fetch.GroupOrder {
		symbols := buckets[group]
		if len(symbols) == 0 {
			fmt.Printf("[%s] no tickers. skipped.\n", group)
			continue
		}

		common.Progress("[%s] fetching %d tickers", group, len(symbols))
		bars, missed, err := fetcher.FetchGroup(ctx, group, symbols)
		if err != nil {
			common.Error("Fetching %s: %v", group, err)
			monitoring.RecordError("fetch")
			return err
		}
		if len(missed) > 0 {
			common.Warn("[%s] no data for: %s", group, strings.Join(missed, ", "))
			for range missed {
				monitoring.RecordRowSkipped("missing_ticker")
			}
		}

		outPath := paths.OutputPath(group + ".csv")
		if err := reporting.WriteBarsCSV(bars, outPath); err != nil {
			common.Error("Writing %s: %v", group, err)
			monitoring.RecordError("write_artifacts")
			return err
		}
		monitoring.RecordBarsLoaded(group, len(bars))
		monitoring.RecordRowsWritten(group, len(bars))
		fmt.Printf("[%s] saved %d rows to %s\n", group, len(bars), outPath)

		if len(bars) > 0 {
			frames = append(frames, bars)
		}
	}

	if len(frames) == 0 {
		return nil
	}
	combined := fetch.Combine(frames...)
	outPath := paths.OutputPath(reporting.CombinedFile)
	if err := reporting.WriteBarsCSV(combined, outPath); err != nil {
		common.Error("Writing combined: %v", err)
		monitoring.RecordError("write_artifacts")
		return err
	}
	monitoring.RecordRowsWritten("combined", len(combined))
	fmt.Printf("[combined] saved %d rows to %s\n", len(combined), outPath)
	return nil
}
