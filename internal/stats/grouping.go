package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Tercile labels, in ascending order of the grouping characteristic.
const (
	GroupLow  = "low"
	GroupMid  = "mid"
	GroupHigh = "high"
)

// TercileGroups assigns each coin to a low/mid/high tercile of the
// given characteristic (for example mean volatility or mean volume).
// Cut points are the 1/3 and 2/3 quantiles of the full cross-section,
// so the partition is deterministic for the same input.
func TercileGroups(characteristic map[string]float64) map[string]string {
	symbols := make([]string, 0, len(characteristic))
	values := make([]float64, 0, len(characteristic))
	for sym := range characteristic {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		values = append(values, characteristic[sym])
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	lowCut := stat.Quantile(1.0/3.0, stat.Empirical, sorted, nil)
	highCut := stat.Quantile(2.0/3.0, stat.Empirical, sorted, nil)

	assignment := make(map[string]string, len(symbols))
	for i, sym := range symbols {
		switch {
		case values[i] <= lowCut:
			assignment[sym] = GroupLow
		case values[i] <= highCut:
			assignment[sym] = GroupMid
		default:
			assignment[sym] = GroupHigh
		}
	}
	return assignment
}

// GroupedANOVA partitions coins by the assignment, pools the return
// series inside each group and runs the omnibus ANOVA over the pooled
// groups. The assignment is reported back on the result by the caller;
// groups that end up empty are simply absent.
func GroupedANOVA(returnsBySymbol map[string][]float64, assignment map[string]string) (*ANOVAResult, error) {
	pooled := make(map[string][]float64)
	for _, sym := range sortedKeys(returnsBySymbol) {
		group, ok := assignment[sym]
		if !ok {
			continue
		}
		pooled[group] = append(pooled[group], returnsBySymbol[sym]...)
	}
	return OneWayANOVA(pooled)
}
