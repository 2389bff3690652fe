package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWatchlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watchlist.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWatchlist_TickerAndList(t *testing.T) {
	path := writeWatchlist(t, `Ticker,List
AAPL,Oversold
brk.b,breakouts
 msft ,PULLBACKS
,oversold
`)

	entries, err := LoadWatchlist(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, WatchlistEntry{Ticker: "AAPL", List: "oversold"}, entries[0])
	assert.Equal(t, WatchlistEntry{Ticker: "BRK-B", List: "breakouts"}, entries[1])
	assert.Equal(t, WatchlistEntry{Ticker: "MSFT", List: "pullbacks"}, entries[2])
}

func TestLoadWatchlist_SymbolColumnVariants(t *testing.T) {
	path := writeWatchlist(t, `Name,Symbol
Apple Inc.,AAPL
Microsoft,MSFT
`)

	entries, err := LoadWatchlist(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "AAPL", entries[0].Ticker)
	assert.Empty(t, entries[0].List)
}

func TestLoadWatchlist_NoTickerColumn(t *testing.T) {
	path := writeWatchlist(t, "Name,Sector\nApple,Tech\n")

	_, err := LoadWatchlist(path)
	assert.Error(t, err)
}

func TestCleanSymbol(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"AAPL", "AAPL"},
		{" aapl ", "AAPL"},
		{"brk.b", "BRK-B"},
		{"BF/B", "BF-B"},
		{"RDS A", "RDSA"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanSymbol(tt.raw), "raw %q", tt.raw)
	}
}

func TestTickers_SortedUnique(t *testing.T) {
	entries := []WatchlistEntry{
		{Ticker: "MSFT", List: "oversold"},
		{Ticker: "AAPL", List: "oversold"},
		{Ticker: "MSFT", List: "breakouts"},
	}

	assert.Equal(t, []string{"AAPL", "MSFT"}, Tickers(entries))
}

func TestBuckets_MapsListsToGroups(t *testing.T) {
	entries := []WatchlistEntry{
		{Ticker: "AAPL", List: "oversold"},
		{Ticker: "MSFT", List: "breakouts"},
		{Ticker: "NVDA", List: "pullbacks"},
		{Ticker: "TSLA", List: "overbought"},
		{Ticker: "XXXX", List: "mystery"},
		{Ticker: "MSFT", List: "breakouts"},
	}

	buckets := Buckets(entries)
	require.Len(t, buckets, 3)

	assert.Equal(t, []string{"AAPL"}, buckets[types.GroupOversold])
	assert.Equal(t, []string{"TSLA"}, buckets[types.GroupOverbought])

	// Pullback lists fold into the breakouts bucket; unknown lists vanish.
	assert.Equal(t, []string{"MSFT", "NVDA"}, buckets[types.GroupBreakouts])
}
