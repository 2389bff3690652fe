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

const AppName = "Quality Scan"

func main() {
	dataFile := flag.String("data", "", "Path to combined bars CSV (default from DATA_FILE)")
	outDir := flag.String("out", "", "Output directory (default from OUTPUT_DIR)")
	reward := flag.Float64("reward", 0, "Reward multiple for targets (default from REWARD_MULTIPLE)")
	commonFlags := common.RegisterCommonFlags()
	flag.Parse()

	common.SetupLogger(commonFlags)

	usage := common.NewUsageFormatter(AppName, "Grade today's reversal setups from the latest session in the combined table").
		AddExample("quality-scan", "Scan data/combined.csv into data/quality_today.csv").
		AddExample("quality-scan -reward 1.5", "Grade against a 1.5R target")
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
	k := cfg.Backtest.RewardMultiple
	if *reward > 0 {
		k = *reward
	}

	if err := run(src, out, k, !*commonFlags.Silent); err != nil {
		os.Exit(1)
	}
}

func run(src, outDir string, reward float64, console bool) error {
	bars, err := data.LoadCombined(src)
	if err != nil {
		common.Error("%v", err)
		monitoring.RecordError("empty_input")
		return err
	}
	monitoring.RecordBarsLoaded("combined", len(bars))

	rows, lastDate, err := scan.NewQualityScanner(reward).Run(bars)
	if err != nil {
		common.Error("%v", err)
		monitoring.RecordError("scan")
		return err
	}

	outPath := reporting.NewDefaultPathManager(outDir).OutputPath(reporting.QualityFile)
	if err := reporting.WriteQualityCSV(rows, outPath); err != nil {
		common.Error("Writing quality setups: %v", err)
		monitoring.RecordError("write_artifacts")
		return err
	}

	for _, row := range rows {
		monitoring.RecordSetup(row.Trigger, string(row.Side))
	}
	monitoring.RecordRowsWritten("quality_today", len(rows))

	if console && len(rows) > 0 {
		reporting.PrintQualityTable(rows, lastDate)
	}
	fmt.Printf("%d quality setups for %s -> %s\n", len(rows), lastDate.Format("2006-01-02"), outPath)
	return nil
}
