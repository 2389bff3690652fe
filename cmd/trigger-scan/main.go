package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ducminhle1904/swing-scanner/cmd/common"
	"github.com/ducminhle1904/swing-scanner/internal/config"
	"github.com/ducminhle1904/swing-scanner/internal/monitoring"
	"github.com/ducminhle1904/swing-scanner/internal/scan"
	"github.com/ducminhle1904/swing-scanner/pkg/data"
	"github.com/ducminhle1904/swing-scanner/pkg/reporting"
)

const AppName = "Trigger Scan"

func main() {
	dataFile := flag.String("data", "", "Path to combined bars CSV (default from DATA_FILE)")
	outDir := flag.String("out", "", "Output directory (default from OUTPUT_DIR)")
	commonFlags := common.RegisterCommonFlags()
	flag.Parse()

	common.SetupLogger(commonFlags)

	usage := common.NewUsageFormatter(AppName, "Flag every bar whose RSI14 turned up or down against the prior session").
		AddExample("trigger-scan", "Scan data/combined.csv into data/signals.csv").
		AddExample("trigger-scan -data data/combined.csv -out reports", "Custom input and output locations")
	if common.CheckHelpAndVersion(AppName, commonFlags, usage) {
		return
	}

	common.LoadEnvFile(*commonFlags.EnvFile)
	cfg := config.Load()

	src := cfg.Data.CombinedFile
	if *dataFile != "" {
		src = *dataFile
	}
	out := cfg.Data.OutputDir
	if *outDir != "" {
		out = *outDir
	}

	if err := run(src, out); err != nil {
		os.Exit(1)
	}
}

func run(src, outDir string) error {
	bars, err := data.LoadCombined(src)
	if err != nil {
		common.Error("%v", err)
		monitoring.RecordError("empty_input")
		return err
	}
	monitoring.RecordBarsLoaded("combined", len(bars))

	rows, err := scan.NewTriggerScanner().Run(bars)
	if err != nil {
		common.Error("%v", err)
		monitoring.RecordError("scan")
		return err
	}

	outPath := reporting.NewDefaultPathManager(outDir).OutputPath(reporting.SignalsFile)
	if err := reporting.WriteSignalsCSV(rows, outPath); err != nil {
		common.Error("Writing signals: %v", err)
		monitoring.RecordError("write_artifacts")
		return err
	}

	monitoring.RecordRowsWritten("signals", len(rows))
	fmt.Printf("signals: %d rows -> %s\n", len(rows), outPath)
	return nil
}
