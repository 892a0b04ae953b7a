package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"
)

// CSVColumnMapping defines the column positions for different CSV layouts.
type CSVColumnMapping struct {
	DateCol    int
	OpenCol    int
	HighCol    int
	LowCol     int
	CloseCol   int
	VolumeCol  int
	MinColumns int
	DateFormat string
}

// PoloniexFormat matches the daily exports used by the original dataset:
// unix,date,symbol,open,high,low,close,volume,...
var PoloniexFormat = CSVColumnMapping{
	DateCol:    1,
	OpenCol:    3,
	HighCol:    4,
	LowCol:     5,
	CloseCol:   6,
	VolumeCol:  7,
	MinColumns: 8,
	DateFormat: "2006-01-02 15:04:05",
}

// CSVProvider loads daily candles from CSV files.
type CSVProvider struct {
	format CSVColumnMapping
}

// NewCSVProvider creates a provider using the Poloniex daily layout.
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{format: PoloniexFormat}
}

// NewCSVProviderWithFormat creates a provider with a custom column layout.
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{format: format}
}

// LoadCandles reads, parses, sorts and deduplicates the candles in filename.
// Malformed lines are skipped with a warning rather than failing the load;
// the caller decides whether the surviving row count is usable.
func (p *CSVProvider) LoadCandles(filename string) ([]Candle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read header of %s: %w", filename, err)
	}

	var candles []Candle
	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read %s line %d: %w", filename, lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("⚠️ line %d: expected %d columns, got %d, skipping", lineNum, p.format.MinColumns, len(record))
			continue
		}

		date, err := time.Parse(p.format.DateFormat, record[p.format.DateCol])
		if err != nil {
			log.Printf("⚠️ line %d: invalid date %q, skipping: %v", lineNum, record[p.format.DateCol], err)
			continue
		}

		candle := Candle{Date: date}
		fields := []struct {
			col  int
			dst  *float64
			name string
		}{
			{p.format.OpenCol, &candle.Open, "open"},
			{p.format.HighCol, &candle.High, "high"},
			{p.format.LowCol, &candle.Low, "low"},
			{p.format.CloseCol, &candle.Close, "close"},
			{p.format.VolumeCol, &candle.Volume, "volume"},
		}
		ok := true
		for _, f := range fields {
			v, err := strconv.ParseFloat(record[f.col], 64)
			if err != nil {
				log.Printf("⚠️ line %d: invalid %s %q, skipping: %v", lineNum, f.name, record[f.col], err)
				ok = false
				break
			}
			*f.dst = v
		}
		if !ok {
			continue
		}

		candles = append(candles, candle)
	}

	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Date.Before(candles[j].Date)
	})

	return dedupeByDate(candles), nil
}

// dedupeByDate keeps the first candle seen for each calendar day.
// Input must already be sorted ascending by date.
func dedupeByDate(candles []Candle) []Candle {
	if len(candles) < 2 {
		return candles
	}
	out := candles[:1]
	for _, c := range candles[1:] {
		last := out[len(out)-1]
		if c.Date.Year() == last.Date.Year() && c.Date.YearDay() == last.Date.YearDay() {
			continue
		}
		out = append(out, c)
	}
	return out
}
