package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"crypto-predictor/internal/dataset"
)

// DataSource supplies the ordered candle history for a coin symbol.
type DataSource interface {
	LoadCandles(symbol string) ([]dataset.Candle, error)
}

// CSVSource resolves symbols to CSV files under a data root, e.g.
// BTC -> <root>/btc.csv.
type CSVSource struct {
	Root     string
	provider *dataset.CSVProvider
}

// NewCSVSource creates a CSV-backed data source.
func NewCSVSource(root string) *CSVSource {
	return &CSVSource{Root: root, provider: dataset.NewCSVProvider()}
}

// LoadCandles loads the candle file for symbol.
func (s *CSVSource) LoadCandles(symbol string) ([]dataset.Candle, error) {
	path := filepath.Join(s.Root, strings.ToLower(symbol)+".csv")
	candles, err := s.provider.LoadCandles(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", symbol, err)
	}
	return candles, nil
}
