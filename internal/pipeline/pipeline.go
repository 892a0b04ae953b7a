package pipeline

import (
	"fmt"
	"log"

	"crypto-predictor/internal/dataset"
	"crypto-predictor/internal/model"
	"crypto-predictor/internal/simulation"
	"crypto-predictor/internal/stats"
)

// Grouping selectors for the grouped ANOVA.
const (
	GroupByVolatility = "volatility"
	GroupByVolume     = "volume"
)

// Config drives one batch run of the forecasting pipeline.
type Config struct {
	Coins          []string
	Kinds          []model.Kind
	Folds          int
	ThresholdPct   float64
	InitialCapital float64
	Seed           int64
	GroupBy        string
}

// Validate rejects configurations the pipeline cannot run.
func (c *Config) Validate() error {
	if len(c.Coins) == 0 {
		return &model.InvalidConfigError{Reason: "at least one coin symbol is required"}
	}
	if len(c.Kinds) == 0 {
		return &model.InvalidConfigError{Reason: "at least one model kind is required"}
	}
	for _, k := range c.Kinds {
		if _, err := model.ParseKind(string(k)); err != nil {
			return err
		}
	}
	if c.Folds < 2 {
		return &model.InvalidConfigError{Reason: "fold count must be at least 2"}
	}
	if c.ThresholdPct < -100 || c.ThresholdPct > 100 {
		return &model.InvalidConfigError{Reason: fmt.Sprintf("threshold %.2f%% outside sane range [-100, 100]", c.ThresholdPct)}
	}
	if c.InitialCapital <= 0 {
		return &model.InvalidConfigError{Reason: "initial capital must be positive"}
	}
	switch c.GroupBy {
	case "", GroupByVolatility, GroupByVolume:
	default:
		return &model.InvalidConfigError{Reason: fmt.Sprintf("unknown grouping key %q (want volatility or volume)", c.GroupBy)}
	}
	return nil
}

// ModelOutcome bundles everything produced for one (coin, model) pair.
type ModelOutcome struct {
	Kind        model.Kind
	Result      *model.Result
	Predictions []simulation.PredictionPoint
	Trajectory  simulation.Trajectory
	Metrics     stats.PredictionMetrics
}

// CoinResult aggregates the per-coin pipeline output.
type CoinResult struct {
	Symbol string
	Days   int // feature rows after warm-up

	Closes         []float64
	Returns        []float64
	MeanVolatility float64
	MeanVolume     float64

	Stats      dataset.SummaryStats
	Hypothesis *stats.TestResult
	Models     []*ModelOutcome
	Comparison simulation.Comparison
}

// CoinFailure records why one coin's pipeline run was abandoned.
type CoinFailure struct {
	Symbol string
	Err    error
}

// BatchResult is the cross-coin aggregation of a full run.
type BatchResult struct {
	Coins    []*CoinResult
	Failures []CoinFailure

	Dispersion      []dataset.DispersionRow
	ANOVACoins      *stats.ANOVAResult
	GroupAssignment map[string]string
	ANOVAGrouped    *stats.ANOVAResult
}

// AllFailed reports whether not a single coin completed.
func (b *BatchResult) AllFailed() bool {
	return len(b.Coins) == 0 && len(b.Failures) > 0
}

// Runner orchestrates the per-coin pipelines and the final aggregation.
type Runner struct {
	source DataSource
}

// NewRunner creates a runner reading coin histories from source.
func NewRunner(source DataSource) *Runner {
	return &Runner{source: source}
}

// Run processes every configured coin sequentially and aggregates the
// cross-coin statistics. A failing coin is recorded and skipped; it
// never aborts the rest of the batch.
func (r *Runner) Run(cfg Config) (*BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	batch := &BatchResult{}
	for _, symbol := range cfg.Coins {
		coin, err := r.runCoin(symbol, cfg)
		if err != nil {
			log.Printf("❌ %s: %v", symbol, err)
			batch.Failures = append(batch.Failures, CoinFailure{Symbol: symbol, Err: err})
			continue
		}
		batch.Coins = append(batch.Coins, coin)
	}

	r.aggregate(batch, cfg)
	return batch, nil
}

// aggregate computes the cross-coin comparisons over the finalized
// per-coin results. Tests needing at least two coins are skipped with a
// warning when the batch ended up smaller.
func (r *Runner) aggregate(batch *BatchResult, cfg Config) {
	if len(batch.Coins) == 0 {
		return
	}

	closesBySymbol := make(map[string][]float64, len(batch.Coins))
	returnsBySymbol := make(map[string][]float64, len(batch.Coins))
	characteristic := make(map[string]float64, len(batch.Coins))
	for _, coin := range batch.Coins {
		closesBySymbol[coin.Symbol] = coin.Closes
		returnsBySymbol[coin.Symbol] = coin.Returns
		if cfg.GroupBy == GroupByVolume {
			characteristic[coin.Symbol] = coin.MeanVolume
		} else {
			characteristic[coin.Symbol] = coin.MeanVolatility
		}
	}

	batch.Dispersion = dataset.CompareDispersion(closesBySymbol)

	anova, err := stats.OneWayANOVA(returnsBySymbol)
	if err != nil {
		log.Printf("⚠️ ANOVA across coins skipped: %v", err)
	} else {
		batch.ANOVACoins = anova
	}

	batch.GroupAssignment = stats.TercileGroups(characteristic)
	grouped, err := stats.GroupedANOVA(returnsBySymbol, batch.GroupAssignment)
	if err != nil {
		log.Printf("⚠️ grouped ANOVA skipped: %v", err)
	} else {
		batch.ANOVAGrouped = grouped
	}
}
