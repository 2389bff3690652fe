package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/swing-scanner/internal/backtest"
	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteBacktestXLSX writes one workbook with the trade log, the
// aggregate stats table, and a run summary sheet.
func (r *DefaultExcelReporter) WriteBacktestXLSX(result *backtest.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const tradesSheet = "Trades"
	const statsSheet = "Stats"
	const summarySheet = "Summary"

	// Replace default sheet and create additional sheets
	fx.SetSheetName(fx.GetSheetName(0), tradesSheet)
	fx.NewSheet(statsSheet)
	fx.NewSheet(summarySheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeTradesSheet(fx, tradesSheet, result, styles); err != nil {
		return err
	}

	if err := r.writeStatsSheet(fx, statsSheet, result, styles); err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, result, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates all workbook styles
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	// Header style - dark slate background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Base style (light borders)
	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Price style (right aligned, two decimals)
	styles.PriceStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 2, // 0.00
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Percentage style (right aligned, % format)
	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 10, // 0.00%
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Long style (light green background)
	styles.LongStyle, err = fx.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"E6FFE6"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Short style (light red background)
	styles.ShortStyle, err = fx.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFE6E6"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Summary style (blue background)
	styles.SummaryStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 2},
			{Type: "right", Color: "000000", Style: 2},
			{Type: "top", Color: "000000", Style: 2},
			{Type: "bottom", Color: "000000", Style: 2},
		},
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

// writeTradesSheet writes the full trade log, one row per signal
func (r *DefaultExcelReporter) writeTradesSheet(fx *excelize.File, sheet string, result *backtest.Result, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 12) // Date
	fx.SetColWidth(sheet, "B", "B", 10) // Ticker
	fx.SetColWidth(sheet, "C", "C", 12) // Group
	fx.SetColWidth(sheet, "D", "D", 24) // Setup
	fx.SetColWidth(sheet, "E", "E", 8)  // Side
	fx.SetColWidth(sheet, "F", "Q", 10) // OHLC, indicators, levels
	fx.SetColWidth(sheet, "R", "T", 9)  // forward returns
	fx.SetColWidth(sheet, "U", "Y", 10) // win and hit flags

	for i, h := range tradesHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	row := 2
	for _, t := range result.Trades {
		sideStyle := styles.LongStyle
		if t.Side == types.SideShort {
			sideStyle = styles.ShortStyle
		}

		values := []interface{}{
			t.Date.Format("2006-01-02"),
			t.Ticker,
			t.Group,
			string(t.Setup),
			string(t.Side),
			t.Open,
			t.High,
			t.Low,
			t.Close,
			optCell(t.RSI14),
			optCell(t.MA50),
			optCell(t.MA200),
			optCell(t.H3),
			optCell(t.L3),
			t.Stop,
			t.Target,
			t.RR,
			optCell(t.Ret5),
			optCell(t.Ret10),
			optCell(t.Ret15),
			optBoolCell(t.Win5),
			optBoolCell(t.Win10),
			optBoolCell(t.Win15),
			t.TgtHit10,
			t.StpHit10,
		}

		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			fx.SetCellValue(sheet, cell, v)

			switch {
			case i == 4:
				fx.SetCellStyle(sheet, cell, cell, sideStyle)
			case i >= 5 && i <= 16:
				fx.SetCellStyle(sheet, cell, cell, styles.PriceStyle)
			case i >= 17 && i <= 19:
				fx.SetCellStyle(sheet, cell, cell, styles.PercentStyle)
			default:
				fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle)
			}
		}
		row++
	}

	if row > 2 {
		fx.AutoFilter(sheet, fmt.Sprintf("A1:Y%d", row-1), []excelize.AutoFilterOptions{})
	}

	return nil
}

// writeStatsSheet writes the per-(setup, side, horizon) aggregate table
func (r *DefaultExcelReporter) writeStatsSheet(fx *excelize.File, sheet string, result *backtest.Result, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 24) // Setup
	fx.SetColWidth(sheet, "B", "B", 8)  // Side
	fx.SetColWidth(sheet, "C", "D", 9)  // horizon, n
	fx.SetColWidth(sheet, "E", "I", 11) // return and hit rates

	for i, h := range statsHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	row := 2
	for _, s := range result.Stats {
		values := []interface{}{
			string(s.Setup),
			string(s.Side),
			s.Horizon,
			s.N,
			optCell(s.Avg),
			optCell(s.Median),
			optCell(s.PosRate),
			s.TgtHit10,
			s.StpHit10,
		}

		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			fx.SetCellValue(sheet, cell, v)

			if i >= 4 {
				fx.SetCellStyle(sheet, cell, cell, styles.PercentStyle)
			} else {
				fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle)
			}
		}
		row++
	}

	if row > 2 {
		fx.AutoFilter(sheet, fmt.Sprintf("A1:I%d", row-1), []excelize.AutoFilterOptions{})
	}

	return nil
}

// writeSummarySheet writes headline run metrics
func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, result *backtest.Result, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 28) // Metric
	fx.SetColWidth(sheet, "B", "B", 16) // Value

	fx.MergeCell(sheet, "A1:B1", "")
	fx.SetCellValue(sheet, "A1", "BACKTEST RUN SUMMARY")
	fx.SetCellStyle(sheet, "A1", "A1", styles.SummaryStyle)
	fx.SetRowHeight(sheet, 1, 24)

	longs := 0
	shorts := 0
	targetHits := 0
	stopHits := 0
	for _, t := range result.Trades {
		if t.Side == types.SideLong {
			longs++
		} else {
			shorts++
		}
		if t.TgtHit10 {
			targetHits++
		}
		if t.StpHit10 {
			stopHits++
		}
	}

	rows := []struct {
		label string
		value interface{}
		style int
	}{
		{"Tickers scanned", result.Tickers, styles.BaseStyle},
		{"Bars scanned", result.Bars, styles.BaseStyle},
		{"Trades", len(result.Trades), styles.BaseStyle},
		{"Long trades", longs, styles.BaseStyle},
		{"Short trades", shorts, styles.BaseStyle},
		{"Target hit in 10 bars", rate(targetHits, len(result.Trades)), styles.PercentStyle},
		{"Stop hit in 10 bars", rate(stopHits, len(result.Trades)), styles.PercentStyle},
		{"Stats rows", len(result.Stats), styles.BaseStyle},
	}

	for i, sr := range rows {
		labelCell := fmt.Sprintf("A%d", i+3)
		valueCell := fmt.Sprintf("B%d", i+3)
		fx.SetCellValue(sheet, labelCell, sr.label)
		fx.SetCellStyle(sheet, labelCell, labelCell, styles.BaseStyle)
		fx.SetCellValue(sheet, valueCell, sr.value)
		fx.SetCellStyle(sheet, valueCell, valueCell, sr.style)
	}

	return nil
}

// optCell converts an optional float into a cell value, blank when
// undefined so Excel never renders a bogus zero.
func optCell(v types.Float) interface{} {
	if !v.Valid {
		return ""
	}
	return v.Value
}

func optBoolCell(v types.Bool) interface{} {
	if !v.Valid {
		return ""
	}
	return v.Value
}

func rate(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// WriteBacktestXLSX is a convenience function for direct usage.
func WriteBacktestXLSX(result *backtest.Result, path string) error {
	return NewDefaultExcelReporter().WriteBacktestXLSX(result, path)
}
