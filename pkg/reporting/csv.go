package reporting

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// Column layouts of the CSV artifacts. Readers downstream key on these
// names, so they never change with the struct field order.
var (
	tradesHeader = []string{
		"Date", "Ticker", "Group", "Setup", "Side",
		"Open", "High", "Low", "Close",
		"RSI14", "MA50", "MA200", "H3", "L3",
		"Stop", "Target", "R_R",
		"ret5", "ret10", "ret15",
		"win5", "win10", "win15",
		"tgt_hit10", "stp_hit10",
	}
	statsHeader = []string{
		"Setup", "Side", "horizon", "n", "avg", "median", "pos_rate", "tgt_hit10", "stp_hit10",
	}
	signalsHeader = []string{
		"Date", "Ticker", "Group", "Side", "Trigger",
		"Open", "High", "Low", "Close", "RSI14", "H3", "L3",
	}
	qualityHeader = []string{
		"Date", "Ticker", "Group", "Side", "Trigger",
		"Open", "High", "Low", "Close", "RSI14", "H3", "L3",
		"Stop", "Target", "R_R", "Grade",
	}
	extremesHeader = []string{
		"Ticker", "RSI14", "Side", "Close", "AsOf", "ATR20", "MA50", "MA200",
	}
	barsHeader = []string{
		"Date", "Ticker", "Group", "Open", "High", "Low", "Close", "Adj Close", "Volume",
	}
)

// DefaultCSVReporter implements the CSV side of FileReporter.
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter.
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteTradesCSV writes backtest trades. An empty set still produces a
// headers-only file so downstream steps can rely on the schema.
func (r *DefaultCSVReporter) WriteTradesCSV(trades []types.TradeRecord, path string) error {
	return writeCSV(path, tradesHeader, func(w *csv.Writer) error {
		for _, t := range trades {
			row := []string{
				formatDate(t.Date),
				t.Ticker,
				t.Group,
				string(t.Setup),
				string(t.Side),
				formatFloat(t.Open),
				formatFloat(t.High),
				formatFloat(t.Low),
				formatFloat(t.Close),
				formatOptFloat(t.RSI14),
				formatOptFloat(t.MA50),
				formatOptFloat(t.MA200),
				formatOptFloat(t.H3),
				formatOptFloat(t.L3),
				formatFloat(t.Stop),
				formatFloat(t.Target),
				formatFloat(t.RR),
				formatOptFloat(t.Ret5),
				formatOptFloat(t.Ret10),
				formatOptFloat(t.Ret15),
				formatOptBool(t.Win5),
				formatOptBool(t.Win10),
				formatOptBool(t.Win15),
				strconv.FormatBool(t.TgtHit10),
				strconv.FormatBool(t.StpHit10),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteStatsCSV writes the per-(setup, side, horizon) aggregate table.
func (r *DefaultCSVReporter) WriteStatsCSV(stats []types.AggregateStat, path string) error {
	return writeCSV(path, statsHeader, func(w *csv.Writer) error {
		for _, s := range stats {
			row := []string{
				string(s.Setup),
				string(s.Side),
				strconv.Itoa(s.Horizon),
				strconv.Itoa(s.N),
				formatOptFloat(s.Avg),
				formatOptFloat(s.Median),
				formatOptFloat(s.PosRate),
				formatFloat(s.TgtHit10),
				formatFloat(s.StpHit10),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSignalsCSV writes momentum trigger rows.
func (r *DefaultCSVReporter) WriteSignalsCSV(rows []types.SignalRow, path string) error {
	return writeCSV(path, signalsHeader, func(w *csv.Writer) error {
		for _, s := range rows {
			row := []string{
				formatDate(s.Date),
				s.Ticker,
				s.Group,
				string(s.Side),
				s.Trigger,
				formatFloat(s.Open),
				formatFloat(s.High),
				formatFloat(s.Low),
				formatFloat(s.Close),
				formatFloat(s.RSI14),
				formatOptFloat(s.H3),
				formatOptFloat(s.L3),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteQualityCSV writes graded setup rows for the latest session.
func (r *DefaultCSVReporter) WriteQualityCSV(rows []types.QualityRow, path string) error {
	return writeCSV(path, qualityHeader, func(w *csv.Writer) error {
		for _, q := range rows {
			row := []string{
				formatDate(q.Date),
				q.Ticker,
				q.Group,
				string(q.Side),
				q.Trigger,
				formatFloat(q.Open),
				formatFloat(q.High),
				formatFloat(q.Low),
				formatFloat(q.Close),
				formatFloat(q.RSI14),
				formatFloat(q.H3),
				formatFloat(q.L3),
				formatFloat(q.Stop),
				formatFloat(q.Target),
				formatFloat(q.RR),
				string(q.Grade),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteExtremesCSV writes RSI extreme rows.
func (r *DefaultCSVReporter) WriteExtremesCSV(rows []types.ExtremeRow, path string) error {
	return writeCSV(path, extremesHeader, func(w *csv.Writer) error {
		for _, e := range rows {
			row := []string{
				e.Ticker,
				formatFloat(e.RSI14),
				string(e.Side),
				formatFloat(e.Close),
				formatDate(e.AsOf),
				formatOptFloat(e.ATR20),
				formatOptFloat(e.MA50),
				formatOptFloat(e.MA200),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteBarsCSV writes raw bars in the combined-file layout.
func (r *DefaultCSVReporter) WriteBarsCSV(bars []types.Bar, path string) error {
	return writeCSV(path, barsHeader, func(w *csv.Writer) error {
		for _, b := range bars {
			row := []string{
				formatDate(b.Date),
				b.Ticker,
				b.Group,
				formatFloat(b.Open),
				formatFloat(b.High),
				formatFloat(b.Low),
				formatFloat(b.Close),
				formatFloat(b.AdjClose),
				formatFloat(b.Volume),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteTickerList writes one ticker per line with no header.
func (r *DefaultCSVReporter) WriteTickerList(tickers []string, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, t := range tickers {
		if _, err := f.WriteString(t + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeCSV opens the file, writes the header, hands the writer to the
// row callback, and flushes. Even zero rows get the header.
func writeCSV(path string, header []string, writeRows func(*csv.Writer) error) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := writeRows(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptFloat(v types.Float) string {
	if !v.Valid {
		return ""
	}
	return formatFloat(v.Value)
}

func formatOptBool(v types.Bool) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatBool(v.Value)
}

// Package-level convenience functions used by the commands.

func WriteTradesCSV(trades []types.TradeRecord, path string) error {
	return NewDefaultCSVReporter().WriteTradesCSV(trades, path)
}

func WriteStatsCSV(stats []types.AggregateStat, path string) error {
	return NewDefaultCSVReporter().WriteStatsCSV(stats, path)
}

func WriteSignalsCSV(rows []types.SignalRow, path string) error {
	return NewDefaultCSVReporter().WriteSignalsCSV(rows, path)
}

func WriteQualityCSV(rows []types.QualityRow, path string) error {
	return NewDefaultCSVReporter().WriteQualityCSV(rows, path)
}

func WriteExtremesCSV(rows []types.ExtremeRow, path string) error {
	return NewDefaultCSVReporter().WriteExtremesCSV(rows, path)
}

func WriteBarsCSV(bars []types.Bar, path string) error {
	return NewDefaultCSVReporter().WriteBarsCSV(bars, path)
}

func WriteTickerList(tickers []string, path string) error {
	return NewDefaultCSVReporter().WriteTickerList(tickers, path)
}
