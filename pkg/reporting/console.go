package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"crypto-predictor/internal/model"
	"crypto-predictor/internal/pipeline"
	"crypto-predictor/internal/stats"
)

// ConsoleReporter renders batch results as terminal tables.
type ConsoleReporter struct{}

// NewConsoleReporter creates a console reporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// Report prints the full batch: per-coin summaries, model comparisons,
// the cross-coin statistics and the failure list.
func (r *ConsoleReporter) Report(batch *pipeline.BatchResult) {
	for _, coin := range batch.Coins {
		r.printCoinSummary(coin)
		r.printModelComparison(coin)
	}
	r.printDispersion(batch)
	r.printANOVA("ANOVA ACROSS COINS", batch.ANOVACoins)
	r.printGrouping(batch)
	r.printANOVA("ANOVA ACROSS GROUPS", batch.ANOVAGrouped)
	r.printFailures(batch)
}

func (r *ConsoleReporter) printCoinSummary(coin *pipeline.CoinResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SUMMARY — %s", coin.Symbol)
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📅 Trading Days", coin.Days},
		{"💰 Mean Close", fmt.Sprintf("%.6f", coin.Stats.Mean)},
		{"💰 Median Close", fmt.Sprintf("%.6f", coin.Stats.Median)},
		{"📉 Min / Max", fmt.Sprintf("%.6f / %.6f", coin.Stats.Min, coin.Stats.Max)},
		{"📊 Std / IQR", fmt.Sprintf("%.6f / %.6f", coin.Stats.Std, coin.Stats.IQR)},
		{"📊 Mean Volatility (7d)", fmt.Sprintf("%.6f", coin.MeanVolatility)},
	})

	if h := coin.Hypothesis; h != nil {
		decision := "mean return ≤ threshold (H0 kept)"
		if h.RejectNull {
			decision = "mean return > threshold (H0 rejected)"
		}
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"🧪 Mean Daily Return", fmt.Sprintf("%.4f%%", h.Mean)},
			{"🧪 t / p", fmt.Sprintf("%.4f / %.4f", h.Statistic, h.PValue)},
			{"🧪 Decision (α=0.05)", decision},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 24, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, Align: text.AlignLeft},
	})
	t.Render()
	fmt.Println()
}

func (r *ConsoleReporter) printModelComparison(coin *pipeline.CoinResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("MODELS — %s", coin.Symbol)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Model", "CV MSE (mean±std)", "Correlation", "Std Error", "Final Capital", "Profit"})

	for _, m := range coin.Models {
		name := m.Kind.String()
		if m.Kind == model.Polynomial {
			name = fmt.Sprintf("poly(d=%d)", m.Result.Degree)
		}
		if !m.Result.Converged {
			name += " ⚠️"
		}
		t.AppendRow(table.Row{
			name,
			fmt.Sprintf("%.6g ± %.6g", m.Result.MeanCVError, m.Result.StdCVError),
			fmt.Sprintf("%.4f", m.Metrics.Correlation),
			fmt.Sprintf("%.6g", m.Metrics.StdError),
			fmt.Sprintf("$%.2f", m.Trajectory.FinalCapital),
			fmt.Sprintf("$%.2f (%.2f%%)", m.Trajectory.Profit, m.Trajectory.ProfitPct),
		})
	}

	t.AppendFooter(table.Row{"best: " + coin.Comparison.Best, "", "", "",
		"buy&hold", fmt.Sprintf("$%.2f", coin.Comparison.BuyHoldProfit)})
	t.Render()
	fmt.Println()
}

func (r *ConsoleReporter) printDispersion(batch *pipeline.BatchResult) {
	if len(batch.Dispersion) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("PRICE DISPERSION BY COIN")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Coin", "Std", "Var", "Amplitude", "IQR"})
	for _, row := range batch.Dispersion {
		t.AppendRow(table.Row{
			row.Symbol,
			fmt.Sprintf("%.6g", row.Std),
			fmt.Sprintf("%.6g", row.Var),
			fmt.Sprintf("%.6g", row.Amplitude),
			fmt.Sprintf("%.6g", row.IQR),
		})
	}
	t.Render()
	fmt.Println()
}

func (r *ConsoleReporter) printANOVA(title string, res *stats.ANOVAResult) {
	if res == nil {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)

	decision := "no significant difference"
	if res.RejectNull {
		decision = "means differ (H0 rejected)"
	}
	t.AppendRows([]table.Row{
		{"F statistic", fmt.Sprintf("%.4f", res.F)},
		{"p-value", fmt.Sprintf("%.4f", res.PValue)},
		{"df (between/within)", fmt.Sprintf("%d / %d", res.DFBetween, res.DFWithin)},
		{"Decision (α=0.05)", decision},
	})
	t.Render()

	if len(res.PostHoc) > 0 {
		ph := table.NewWriter()
		ph.SetOutputMirror(os.Stdout)
		ph.SetTitle("POST-HOC PAIRS (Welch + Holm)")
		ph.SetStyle(table.StyleLight)
		ph.AppendHeader(table.Row{"Pair", "t", "p", "adj. p", "Different?"})
		for _, pair := range res.PostHoc {
			verdict := "no"
			if pair.Significant {
				verdict = "yes"
			}
			ph.AppendRow(table.Row{
				pair.A + " vs " + pair.B,
				fmt.Sprintf("%.4f", pair.Statistic),
				fmt.Sprintf("%.4f", pair.PValue),
				fmt.Sprintf("%.4f", pair.AdjustedP),
				verdict,
			})
		}
		ph.Render()
	}
	fmt.Println()
}

func (r *ConsoleReporter) printGrouping(batch *pipeline.BatchResult) {
	if len(batch.GroupAssignment) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("TERCILE GROUPS")
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Coin", "Group"})
	for _, row := range batch.Dispersion { // already sorted deterministically
		t.AppendRow(table.Row{row.Symbol, batch.GroupAssignment[row.Symbol]})
	}
	t.Render()
	fmt.Println()
}

func (r *ConsoleReporter) printFailures(batch *pipeline.BatchResult) {
	if len(batch.Failures) == 0 {
		fmt.Println("✅ Completed with 0 failures")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("FAILED COINS")
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Coin", "Reason"})
	for _, f := range batch.Failures {
		t.AppendRow(table.Row{f.Symbol, f.Err.Error()})
	}
	t.Render()
	fmt.Printf("⚠️  Completed with %d failure(s)\n", len(batch.Failures))
}
