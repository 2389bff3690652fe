package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/ducminhle1904/swing-scanner/internal/errors"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// CSVProvider implements BarProvider for combined.csv style files
type CSVProvider struct {
	mapping ColumnMapping
}

// NewCSVProvider creates a provider with the default column mapping
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		mapping: DefaultColumnMapping,
	}
}

// NewCSVProviderWithMapping creates a provider with a custom mapping
func NewCSVProviderWithMapping(mapping ColumnMapping) *CSVProvider {
	return &CSVProvider{
		mapping: mapping,
	}
}

// GetName returns the name of the provider
func (p *CSVProvider) GetName() string {
	return "CSV Bar Provider"
}

// LoadBars loads the bars from a CSV file. Rows that cannot be parsed
// are skipped with a warning; the survivors come back sorted by ticker
// then date, first occurrence winning on duplicates. A file without a
// header wraps ErrEmptyInput, a header without the required columns
// returns MissingColumnsError.
func (p *CSVProvider) LoadBars(filename string) ([]types.Bar, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", filename, apperrors.ErrEmptyInput)
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range p.mapping.Required() {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &apperrors.MissingColumnsError{Path: filename, Missing: missing}
	}

	adjIdx, hasAdj := idx[p.mapping.AdjClose]
	volIdx, hasVol := idx[p.mapping.Volume]

	var bars []types.Bar
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV at line %d: %v", lineNum+1, err)
		}
		lineNum++

		if len(record) < len(header) {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping", lineNum, len(header), len(record))
			continue
		}

		date, err := time.ParseInLocation(p.mapping.DateFormat, record[idx[p.mapping.Date]], time.UTC)
		if err != nil {
			log.Printf("⚠️ Invalid date '%s' at line %d, skipping: %v", record[idx[p.mapping.Date]], lineNum, err)
			continue
		}

		ticker := strings.TrimSpace(record[idx[p.mapping.Ticker]])
		if ticker == "" {
			log.Printf("⚠️ Empty ticker at line %d, skipping", lineNum)
			continue
		}
		group := strings.TrimSpace(record[idx[p.mapping.Group]])

		open, err := parsePrice(record[idx[p.mapping.Open]], "open", lineNum)
		if err != nil {
			continue
		}
		high, err := parsePrice(record[idx[p.mapping.High]], "high", lineNum)
		if err != nil {
			continue
		}
		low, err := parsePrice(record[idx[p.mapping.Low]], "low", lineNum)
		if err != nil {
			continue
		}
		closePx, err := parsePrice(record[idx[p.mapping.Close]], "close", lineNum)
		if err != nil {
			continue
		}

		if high < open || high < closePx || high < low {
			log.Printf("⚠️ High price is lower than other prices at line %d, skipping", lineNum)
			continue
		}
		if low > open || low > closePx {
			log.Printf("⚠️ Low price is higher than other prices at line %d, skipping", lineNum)
			continue
		}

		adjClose := closePx
		if hasAdj && strings.TrimSpace(record[adjIdx]) != "" {
			if v, err := strconv.ParseFloat(record[adjIdx], 64); err == nil {
				adjClose = v
			}
		}

		volume := 0.0
		if hasVol && strings.TrimSpace(record[volIdx]) != "" {
			v, err := strconv.ParseFloat(record[volIdx], 64)
			if err != nil {
				log.Printf("⚠️ Invalid volume '%s' at line %d, skipping: %v", record[volIdx], lineNum, err)
				continue
			}
			if v < 0 {
				log.Printf("⚠️ Negative volume at line %d, skipping", lineNum)
				continue
			}
			volume = v
		}

		bars = append(bars, types.Bar{
			Date:     date,
			Ticker:   ticker,
			Group:    group,
			Open:     open,
			High:     high,
			Low:      low,
			Close:    closePx,
			AdjClose: adjClose,
			Volume:   volume,
		})
	}

	SortByTickerDate(bars)
	return Deduplicate(bars), nil
}

func parsePrice(raw, field string, lineNum int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Printf("⚠️ Invalid %s price '%s' at line %d, skipping: %v", field, raw, lineNum, err)
		return 0, err
	}
	if v <= 0 {
		log.Printf("⚠️ Invalid %s price (negative or zero) at line %d, skipping", field, lineNum)
		return 0, fmt.Errorf("non-positive %s", field)
	}
	return v, nil
}

// ValidateBars validates the integrity of loaded bars
func (p *CSVProvider) ValidateBars(bars []types.Bar) error {
	if len(bars) == 0 {
		return fmt.Errorf("no bars provided")
	}

	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("invalid price data at index %d: prices must be positive", i)
		}
		if b.High < b.Low {
			return fmt.Errorf("invalid price data at index %d: high (%.4f) cannot be less than low (%.4f)",
				i, b.High, b.Low)
		}
		if i > 0 && b.Ticker == bars[i-1].Ticker {
			if !b.Date.After(bars[i-1].Date) {
				return fmt.Errorf("bars for %s out of order at index %d", b.Ticker, i)
			}
		}
	}

	return nil
}
