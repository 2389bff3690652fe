package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// WatchlistEntry is one row of the watchlist file: a symbol and the
// list it came from. List may be empty when the file only carries
// tickers.
type WatchlistEntry struct {
	Ticker string
	List   string
}

// groupForList maps watchlist names onto canonical groups. Pullback
// lists fold into breakouts; anything else is dropped.
var groupForList = map[string]string{
	"oversold":   types.GroupOversold,
	"overbought": types.GroupOverbought,
	"breakouts":  types.GroupBreakouts,
	"pullbacks":  types.GroupBreakouts,
}

// LoadWatchlist reads a watchlist CSV. The ticker column is whichever
// header mentions "ticker" or "symbol" (case insensitive); a "list"
// column is picked up when present. Rows with an empty symbol are
// dropped.
func LoadWatchlist(path string) ([]WatchlistEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading watchlist header: %w", err)
	}

	tickerCol, listCol := -1, -1
	for i, name := range header {
		lower := strings.ToLower(strings.TrimSpace(name))
		if tickerCol < 0 && (strings.Contains(lower, "ticker") || strings.Contains(lower, "symbol")) {
			tickerCol = i
		}
		if listCol < 0 && lower == "list" {
			listCol = i
		}
	}
	if tickerCol < 0 {
		return nil, fmt.Errorf("no Ticker/Symbol column found in %s", path)
	}

	var entries []WatchlistEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if tickerCol >= len(record) {
			continue
		}

		ticker := CleanSymbol(record[tickerCol])
		if ticker == "" {
			continue
		}
		entry := WatchlistEntry{Ticker: ticker}
		if listCol >= 0 && listCol < len(record) {
			entry.List = strings.ToLower(strings.TrimSpace(record[listCol]))
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// CleanSymbol normalizes a raw symbol the way index constituent lists
// spell them: uppercase, no spaces, slashes and dots turned into
// dashes so share classes like BRK.B become BRK-B.
func CleanSymbol(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, ".", "-")
	return s
}

// Tickers returns the sorted unique tickers of the entries.
func Tickers(entries []WatchlistEntry) []string {
	seen := make(map[string]bool, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if seen[e.Ticker] {
			continue
		}
		seen[e.Ticker] = true
		out = append(out, e.Ticker)
	}
	sort.Strings(out)
	return out
}

// Buckets groups the tickers by canonical group, each bucket sorted
// and deduplicated. Entries from unmapped lists are dropped.
func Buckets(entries []WatchlistEntry) map[string][]string {
	sets := map[string]map[string]bool{
		types.GroupOversold:   {},
		types.GroupOverbought: {},
		types.GroupBreakouts:  {},
	}
	for _, e := range entries {
		group, ok := groupForList[e.List]
		if !ok {
			continue
		}
		sets[group][e.Ticker] = true
	}

	out := make(map[string][]string, len(sets))
	for group, set := range sets {
		tickers := make([]string, 0, len(set))
		for t := range set {
			tickers = append(tickers, t)
		}
		sort.Strings(tickers)
		out[group] = tickers
	}
	return out
}
