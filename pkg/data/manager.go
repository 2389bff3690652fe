package data

import (
	"strconv"
	"strings"
	"time"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// BarManager combines loading and filtering in a convenient interface
type BarManager struct {
	provider BarProvider
	filter   BarFilter
}

// NewBarManager creates a manager with the default CSV provider
func NewBarManager() *BarManager {
	return &BarManager{
		provider: NewCSVProvider(),
		filter:   NewDefaultBarFilter(),
	}
}

// LoadCombined loads the combined bar file through the provider
func (m *BarManager) LoadCombined(filename string) ([]types.Bar, error) {
	return m.provider.LoadBars(filename)
}

// FilterByTrailingPeriod trims bars to the trailing period
func (m *BarManager) FilterByTrailingPeriod(bars []types.Bar, period time.Duration) []types.Bar {
	return m.filter.FilterByTrailingPeriod(bars, period)
}

// ParseTrailingPeriod parses period strings like "7d", "30d", "180d"
func ParseTrailingPeriod(s string) (time.Duration, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasSuffix(s, "days") {
		s = strings.TrimSuffix(s, "days") + "d"
	}
	if strings.HasSuffix(s, "d") {
		nStr := strings.TrimSuffix(s, "d")
		if nStr == "" {
			return 0, false
		}
		n, err := strconv.Atoi(nStr)
		if err != nil || n <= 0 {
			return 0, false
		}
		return time.Duration(n) * 24 * time.Hour, true
	}
	// allow raw durations too (e.g., 168h)
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}
	return 0, false
}

// DefaultBarManager provides a shared instance for the commands
var DefaultBarManager = NewBarManager()

// LoadCombined loads bars through the default manager
func LoadCombined(filename string) ([]types.Bar, error) {
	return DefaultBarManager.LoadCombined(filename)
}
