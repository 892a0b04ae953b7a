package pipeline

import (
	"fmt"

	"crypto-predictor/internal/dataset"
	"crypto-predictor/internal/model"
	"crypto-predictor/internal/simulation"
	"crypto-predictor/internal/stats"
)

// runCoin executes the full per-coin pipeline: load, feature build,
// one training run per requested model kind, forecasting, profit
// simulation and the per-coin hypothesis test.
func (r *Runner) runCoin(symbol string, cfg Config) (*CoinResult, error) {
	candles, err := r.source.LoadCandles(symbol)
	if err != nil {
		return nil, err
	}

	rows := dataset.BuildFeatures(candles)
	x, y := dataset.NextDayTargets(rows)
	if len(y) < cfg.Folds {
		return nil, &model.DataInsufficiencyError{Rows: len(y), Needed: cfg.Folds}
	}

	_, closes := dataset.Matrix(rows)
	coin := &CoinResult{
		Symbol:  symbol,
		Days:    len(rows),
		Closes:  closes,
		Returns: dataset.Returns(rows),
		Stats:   dataset.Summarize(closes),
	}
	for _, row := range rows {
		coin.MeanVolatility += row.Volatility7
		coin.MeanVolume += row.Volume
	}
	coin.MeanVolatility /= float64(len(rows))
	coin.MeanVolume /= float64(len(rows))

	var runs []simulation.ModelProfit
	for _, kind := range cfg.Kinds {
		outcome, err := trainAndSimulate(rows, x, y, kind, cfg)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", kind, err)
		}
		coin.Models = append(coin.Models, outcome)
		runs = append(runs, simulation.ModelProfit{
			Name:       kind.String(),
			Trajectory: outcome.Trajectory,
		})
	}
	coin.Comparison = simulation.Compare(runs, closes, cfg.InitialCapital)

	test, err := stats.TestMeanReturn(coin.Returns, cfg.ThresholdPct)
	if err != nil {
		return nil, fmt.Errorf("hypothesis test: %w", err)
	}
	coin.Hypothesis = test

	return coin, nil
}

// trainAndSimulate trains one model kind, forecasts every feature row
// and runs the compounding profit simulation on the prediction series.
func trainAndSimulate(rows []dataset.FeatureRow, x [][]float64, y []float64, kind model.Kind, cfg Config) (*ModelOutcome, error) {
	result, err := model.Train(x, y, kind, cfg.Folds, cfg.Seed)
	if err != nil {
		return nil, err
	}

	series := make([]simulation.PredictionPoint, len(rows))
	for i, row := range rows {
		pred, err := result.PredictNext(row.Vector())
		if err != nil {
			return nil, err
		}
		series[i] = simulation.PredictionPoint{
			Date:          row.Date,
			ActualClose:   row.Close,
			PredictedNext: pred,
		}
	}

	// Score forecasts against the closes they actually targeted.
	actualNext := make([]float64, len(rows)-1)
	predictedNext := make([]float64, len(rows)-1)
	for i := 0; i < len(rows)-1; i++ {
		actualNext[i] = rows[i+1].Close
		predictedNext[i] = series[i].PredictedNext
	}

	return &ModelOutcome{
		Kind:        kind,
		Result:      result,
		Predictions: series,
		Trajectory:  simulation.Simulate(series, cfg.InitialCapital),
		Metrics:     stats.EvaluatePredictions(actualNext, predictedNext),
	}, nil
}
