package reporting

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/swing-scanner/internal/backtest"
	"github.com/ducminhle1904/swing-scanner/internal/scan"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// PrintBacktestSummary prints the run overview block.
func (r *DefaultConsoleReporter) PrintBacktestSummary(result *backtest.Result, duration time.Duration) {
	longs := 0
	shorts := 0
	for _, t := range result.Trades {
		if t.Side == types.SideLong {
			longs++
		} else {
			shorts++
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("BACKTEST RUN")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📊 Tickers", result.Tickers},
		{"📅 Bars", result.Bars},
		{"🔄 Trades", len(result.Trades)},
		{"📈 Longs", longs},
		{"📉 Shorts", shorts},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"⏱️ Duration", duration.Round(time.Millisecond).String()},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, WidthMax: 30, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// PrintStatsTable prints the aggregate stats, one row per
// (setup, side, horizon) group.
func (r *DefaultConsoleReporter) PrintStatsTable(stats []types.AggregateStat) {
	if len(stats) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SETUP PERFORMANCE")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Setup", "Side", "H", "N", "Avg", "Median", "Pos%", "Tgt10", "Stp10"})
	for _, s := range stats {
		t.AppendRow(table.Row{
			string(s.Setup),
			string(s.Side),
			s.Horizon,
			s.N,
			fmtOptPct(s.Avg),
			fmtOptPct(s.Median),
			fmtOptPct(s.PosRate),
			fmt.Sprintf("%.1f%%", s.TgtHit10*100),
			fmt.Sprintf("%.1f%%", s.StpHit10*100),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 24, WidthMax: 26, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// PrintQualityTable prints graded setups for one session.
func (r *DefaultConsoleReporter) PrintQualityTable(rows []types.QualityRow, asOf time.Time) {
	if len(rows) == 0 {
		fmt.Printf("No quality setups for %s.\n", asOf.Format("2006-01-02"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("QUALITY SETUPS %s", asOf.Format("2006-01-02")))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Ticker", "Side", "Grade", "Close", "Stop", "Target", "R:R"})
	for _, q := range rows {
		t.AppendRow(table.Row{
			q.Ticker,
			sideBadge(q.Side),
			string(q.Grade),
			fmt.Sprintf("%.2f", q.Close),
			fmt.Sprintf("%.2f", q.Stop),
			fmt.Sprintf("%.2f", q.Target),
			fmt.Sprintf("%.2f", q.RR),
		})
	}

	t.Render()
	fmt.Println()
}

// PrintExtremesSummary prints the extreme-RSI watchlist hits.
func (r *DefaultConsoleReporter) PrintExtremesSummary(result *scan.ExtremesResult) {
	if len(result.Rows) == 0 {
		fmt.Println("No RSI extremes in the current data.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("RSI EXTREMES (%d of %d tickers)", len(result.Rows), len(result.Universe)))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Ticker", "Side", "RSI14", "Close", "ATR20", "MA50", "MA200"})
	for _, e := range result.Rows {
		t.AppendRow(table.Row{
			e.Ticker,
			sideBadge(e.Side),
			fmt.Sprintf("%.2f", e.RSI14),
			fmt.Sprintf("%.2f", e.Close),
			fmtOpt2(e.ATR20),
			fmtOpt2(e.MA50),
			fmtOpt2(e.MA200),
		})
	}

	t.Render()
	fmt.Println()
}

func sideBadge(side types.Side) string {
	if side == types.SideShort {
		return "📉 short"
	}
	return "📈 long"
}

func fmtOptPct(v types.Float) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", v.Value*100)
}

func fmtOpt2(v types.Float) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("%.2f", v.Value)
}

// Package-level convenience functions

func PrintQualityTable(rows []types.QualityRow, asOf time.Time) {
	NewDefaultConsoleReporter().PrintQualityTable(rows, asOf)
}

func PrintExtremesSummary(result *scan.ExtremesResult) {
	NewDefaultConsoleReporter().PrintExtremesSummary(result)
}
