package fetch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ducminhle1904/swing-scanner/internal/exchange/bybit"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// KlineSource is the slice of the exchange client the fetcher needs:
// windowed kline history plus the client's retry wrapper.
type KlineSource interface {
	GetKlineHistory(ctx context.Context, params bybit.KlineParams) ([]bybit.Kline, error)
	Retry(ctx context.Context, fn bybit.RetryableFunc) error
}

// Options configures a fetch run.
type Options struct {
	Category string              // Bybit market category, defaults to "spot"
	Interval bybit.KlineInterval // kline interval, defaults to daily
	Window   time.Duration       // how far back from End to fetch
	End      time.Time           // end of the window, zero means now
}

// GroupOrder is the order groups are fetched and reported in.
var GroupOrder = []string{types.GroupOversold, types.GroupOverbought, types.GroupBreakouts}

// Fetcher downloads OHLC history from an exchange and shapes it into
// the bar layout the scanners read.
type Fetcher struct {
	source KlineSource
	opts   Options
}

// NewFetcher creates a fetcher over the given kline source.
func NewFetcher(source KlineSource, opts Options) *Fetcher {
	if opts.Category == "" {
		opts.Category = "spot"
	}
	if opts.Interval == "" {
		opts.Interval = bybit.Interval1d
	}
	if opts.End.IsZero() {
		opts.End = time.Now().UTC()
	}
	return &Fetcher{source: source, opts: opts}
}

// FetchGroup downloads bars for every symbol in a group. Symbols the
// exchange rejects or returns nothing for are reported in missed
// rather than failing the run; any other error aborts. Returned bars
// are sorted (Ticker, Date) with duplicate days dropped.
func (f *Fetcher) FetchGroup(ctx context.Context, group string, symbols []string) (bars []types.Bar, missed []string, err error) {
	start := f.opts.End.Add(-f.opts.Window)

	for _, symbol := range symbols {
		var klines []bybit.Kline
		fetchErr := f.source.Retry(ctx, func() error {
			var kerr error
			klines, kerr = f.source.GetKlineHistory(ctx, bybit.KlineParams{
				Category: f.opts.Category,
				Symbol:   symbol,
				Interval: f.opts.Interval,
				Start:    &start,
				End:      &f.opts.End,
			})
			return kerr
		})
		if fetchErr != nil {
			if isUnknownSymbol(fetchErr) {
				missed = append(missed, symbol)
				continue
			}
			return nil, nil, fmt.Errorf("fetching %s: %w", symbol, fetchErr)
		}

		converted := barsFromKlines(symbol, group, klines)
		if len(converted) == 0 {
			missed = append(missed, symbol)
			continue
		}
		bars = append(bars, converted...)
	}

	sortBars(bars)
	return bars, missed, nil
}

// Combine merges per-group bars into the combined dataset, sorted by
// group, ticker, then date.
func Combine(groups ...[]types.Bar) []types.Bar {
	var total int
	for _, g := range groups {
		total += len(g)
	}
	combined := make([]types.Bar, 0, total)
	for _, g := range groups {
		combined = append(combined, g...)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		if combined[i].Group != combined[j].Group {
			return combined[i].Group < combined[j].Group
		}
		if combined[i].Ticker != combined[j].Ticker {
			return combined[i].Ticker < combined[j].Ticker
		}
		return combined[i].Date.Before(combined[j].Date)
	})
	return combined
}

// barsFromKlines converts exchange klines into labelled daily bars.
// Rows without a usable close or with negative volume are dropped, as
// are repeats of a day already seen. Spot data has no corporate
// actions, so the adjusted close equals the close.
func barsFromKlines(symbol, group string, klines []bybit.Kline) []types.Bar {
	bars := make([]types.Bar, 0, len(klines))
	seen := make(map[time.Time]bool, len(klines))

	for _, k := range klines {
		if k.ClosePrice <= 0 || k.Volume < 0 {
			continue
		}
		day := k.StartTime.UTC()
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		if seen[date] {
			continue
		}
		seen[date] = true

		bars = append(bars, types.Bar{
			Date:     date,
			Ticker:   symbol,
			Group:    group,
			Open:     k.OpenPrice,
			High:     k.HighPrice,
			Low:      k.LowPrice,
			Close:    k.ClosePrice,
			AdjClose: k.ClosePrice,
			Volume:   k.Volume,
		})
	}
	return bars
}

func sortBars(bars []types.Bar) {
	sort.SliceStable(bars, func(i, j int) bool {
		if bars[i].Ticker != bars[j].Ticker {
			return bars[i].Ticker < bars[j].Ticker
		}
		return bars[i].Date.Before(bars[j].Date)
	})
}

// isUnknownSymbol reports whether the error is the exchange rejecting
// the symbol itself, which should skip the ticker instead of aborting
// the whole run.
func isUnknownSymbol(err error) bool {
	if bybitErr, ok := err.(*bybit.BybitError); ok {
		return bybitErr.Code == bybit.ErrCodeParamError
	}
	return false
}
