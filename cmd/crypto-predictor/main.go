package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"crypto-predictor/internal/config"
	"crypto-predictor/internal/pipeline"
	"crypto-predictor/pkg/reporting"
)

const (
	AppName    = "Crypto Predictor"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewFlags()
	flag.Parse()

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}
	if *flags.ShowHelp {
		printUsage()
		return
	}

	printHeader()

	if err := godotenv.Load(*flags.EnvFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v), using environment as-is", *flags.EnvFile, err)
	}
	cfg := config.Load()

	coins := flags.ParseCoins()
	if len(coins) == 0 {
		log.Fatal("❌ No coins specified, use -coins BTC,ETH,...")
	}
	kinds, err := flags.ParseKinds()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	dataRoot := cfg.DataRoot
	if *flags.DataRoot != "" {
		dataRoot = *flags.DataRoot
	}
	initialCapital := cfg.InitialCapital
	if *flags.InitialCapital > 0 {
		initialCapital = *flags.InitialCapital
	}
	seed := cfg.Seed
	if *flags.Seed != 0 {
		seed = *flags.Seed
	}

	runCfg := pipeline.Config{
		Coins:          coins,
		Kinds:          kinds,
		Folds:          *flags.KFolds,
		ThresholdPct:   *flags.Threshold,
		InitialCapital: initialCapital,
		Seed:           seed,
		GroupBy:        *flags.GroupBy,
	}

	log.Printf("🚀 Running pipeline for %s (models: %v, folds: %d, seed: %d)",
		strings.Join(coins, ", "), kinds, runCfg.Folds, seed)

	runner := pipeline.NewRunner(pipeline.NewCSVSource(dataRoot))
	batch, err := runner.Run(runCfg)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	reporting.NewConsoleReporter().Report(batch)

	if !*flags.ConsoleOnly {
		reportPath := *flags.ReportFile
		if reportPath == "" {
			reportPath = filepath.Join(cfg.ReportDir, "crypto-predictor.xlsx")
		}
		if err := reporting.NewExcelReporter().WriteWorkbook(batch, reportPath); err != nil {
			log.Printf("⚠️  Excel report failed: %v", err)
		} else {
			log.Printf("📄 Excel report written to %s", reportPath)
		}
	}

	if batch.AllFailed() {
		log.Fatalf("❌ All %d coins failed", len(batch.Failures))
	}
}

func printHeader() {
	fmt.Printf("🔮 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsage() {
	fmt.Printf("%s v%s - Next-day crypto price forecasting and strategy comparison\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(os.Args[0]))
	fmt.Println("EXAMPLES:")
	fmt.Println("  crypto-predictor -coins BTC,ETH,XRP -model all -kfolds 5")
	fmt.Println("  crypto-predictor -coins BTC -model poly -kfolds 3 -threshold 0.1")
	fmt.Println("  crypto-predictor -coins BTC,ETH -group-by volume -console-only")
	fmt.Println()
	flag.PrintDefaults()
}
