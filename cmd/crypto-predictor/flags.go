package main

import (
	"flag"
	"strings"

	"crypto-predictor/internal/model"
)

// Flags holds all command line flags for the predictor.
type Flags struct {
	Coins          *string
	Model          *string
	KFolds         *int
	Threshold      *float64
	InitialCapital *float64
	GroupBy        *string
	Seed           *int64

	DataRoot    *string
	ReportFile  *string
	ConsoleOnly *bool
	EnvFile     *string

	ShowVersion *bool
	ShowHelp    *bool
}

// NewFlags registers all command line flags.
func NewFlags() *Flags {
	return &Flags{
		Coins:          flag.String("coins", "", "Comma-separated coin symbols (e.g. BTC,ETH,XRP)"),
		Model:          flag.String("model", "all", "Model to train: linear, poly, mlp or all"),
		KFolds:         flag.Int("kfolds", 5, "Number of cross-validation folds (>= 2)"),
		Threshold:      flag.Float64("threshold", 0.0, "Hypothesis test threshold for mean daily return, percent"),
		InitialCapital: flag.Float64("initial-capital", 0, "Starting capital for the profit simulation (0 = from env)"),
		GroupBy:        flag.String("group-by", "volatility", "Grouped ANOVA characteristic: volatility or volume"),
		Seed:           flag.Int64("seed", 0, "Random seed for fold shuffling and MLP init (0 = from env)"),

		DataRoot:    flag.String("data-root", "", "Directory with per-coin CSV files (overrides DATA_ROOT)"),
		ReportFile:  flag.String("report", "", "Excel report path (default <report-dir>/crypto-predictor.xlsx)"),
		ConsoleOnly: flag.Bool("console-only", false, "Skip the Excel report"),
		EnvFile:     flag.String("env", ".env", "Environment file to load"),

		ShowVersion: flag.Bool("version", false, "Show version and exit"),
		ShowHelp:    flag.Bool("help", false, "Show help and exit"),
	}
}

// ParseCoins splits and normalizes the -coins flag.
func (f *Flags) ParseCoins() []string {
	var coins []string
	for _, part := range strings.Split(*f.Coins, ",") {
		if sym := strings.ToUpper(strings.TrimSpace(part)); sym != "" {
			coins = append(coins, sym)
		}
	}
	return coins
}

// ParseKinds resolves the -model flag into the model kinds to compare.
func (f *Flags) ParseKinds() ([]model.Kind, error) {
	if *f.Model == "all" {
		return model.AllKinds, nil
	}
	kind, err := model.ParseKind(*f.Model)
	if err != nil {
		return nil, err
	}
	return []model.Kind{kind}, nil
}
