// Package backtest runs the setup rules over historical daily bars and
// measures how each signal played out.
package backtest

import (
	"sort"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/internal/indicators"
	"github.com/ducminhle1904/swing-scanner/internal/setup"
	"github.com/ducminhle1904/swing-scanner/internal/trade"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

type Engine struct {
	rewardMultiple float64
	workers        int
}

// Result is everything one run produces. Trades are sorted by date
// then ticker; Stats carries one row per setup group and horizon.
type Result struct {
	Trades  []types.TradeRecord
	Stats   []types.AggregateStat
	Tickers int
	Bars    int
}

// NewEngine builds an engine. A non-positive rewardMultiple falls back
// to the default target multiple; workers <= 0 means one worker per
// CPU.
func NewEngine(rewardMultiple float64, workers int) *Engine {
	if rewardMultiple <= 0 {
		rewardMultiple = trade.DefaultRewardMultiple
	}
	return &Engine{
		rewardMultiple: rewardMultiple,
		workers:        workers,
	}
}

// Run scans every ticker partition and returns the collected trades
// and their aggregate stats. Bars must be date-sorted within each
// ticker, the order the loader guarantees. An input with no bars
// returns ErrEmptyInput; an input that simply produces no trades is a
// valid run with an empty result.
func (e *Engine) Run(bars []types.Bar) (*Result, error) {
	if len(bars) == 0 {
		return nil, apperrors.ErrEmptyInput
	}

	parts := data.PartitionByTicker(bars)
	jobs := make([]PartitionJob, 0, len(parts))
	for _, part := range parts {
		jobs = append(jobs, PartitionJob{Ticker: part.Ticker, Bars: part.Bars})
	}

	pool := NewWorkerPool(e.workers, len(jobs), e.scanPartition)
	pool.Start()
	for _, job := range jobs {
		if err := pool.Submit(job); err != nil {
			return nil, err
		}
	}

	trades := make([]types.TradeRecord, 0)
	for range jobs {
		res := <-pool.Results()
		trades = append(trades, res.Trades...)
	}
	pool.Stop()

	// Worker completion order is nondeterministic; the final sort makes
	// every run identical regardless of worker count.
	sort.Slice(trades, func(i, j int) bool {
		if !trades[i].Date.Equal(trades[j].Date) {
			return trades[i].Date.Before(trades[j].Date)
		}
		return trades[i].Ticker < trades[j].Ticker
	})

	return &Result{
		Trades:  trades,
		Stats:   Aggregate(trades),
		Tickers: len(jobs),
		Bars:    len(bars),
	}, nil
}

// scanPartition classifies every bar of one ticker and keeps the ones
// that survive the trade gate, with their outcomes measured.
func (e *Engine) scanPartition(job PartitionJob) []types.TradeRecord {
	f := indicators.ComputeFeatures(job.Bars)
	f.ComputeForward()

	var out []types.TradeRecord
	for i := range job.Bars {
		kind, side := setup.Classify(f, i)
		if kind == types.SetupNone {
			continue
		}
		rec, ok := trade.Build(f, i, kind, side, e.rewardMultiple)
		if !ok {
			continue
		}
		trade.Measure(&rec, f, i)
		out = append(out, rec)
	}
	return out
}
