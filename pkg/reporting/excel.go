package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"crypto-predictor/internal/pipeline"
)

// ExcelReporter writes batch results to an Excel workbook so the
// analysis can continue outside the CLI.
type ExcelReporter struct{}

// NewExcelReporter creates an Excel reporter.
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// WriteWorkbook exports capital trajectories, cross-validation scores
// and the statistical comparison to path.
func (r *ExcelReporter) WriteWorkbook(batch *pipeline.BatchResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const (
		capitalSheet = "Capital"
		cvSheet      = "CV Scores"
		statsSheet   = "Statistics"
	)
	fx.SetSheetName(fx.GetSheetName(0), capitalSheet)
	fx.NewSheet(cvSheet)
	fx.NewSheet(statsSheet)

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F5496"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeCapitalSheet(fx, capitalSheet, batch, headerStyle); err != nil {
		return err
	}
	if err := r.writeCVSheet(fx, cvSheet, batch, headerStyle); err != nil {
		return err
	}
	if err := r.writeStatsSheet(fx, statsSheet, batch, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeCapitalSheet(fx *excelize.File, sheet string, batch *pipeline.BatchResult, headerStyle int) error {
	header := []interface{}{"Coin", "Model", "Date", "Capital"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	fx.SetCellStyle(sheet, "A1", "D1", headerStyle)

	rowNum := 2
	for _, coin := range batch.Coins {
		for _, m := range coin.Models {
			for _, p := range m.Trajectory.Points {
				cell, _ := excelize.CoordinatesToCellName(1, rowNum)
				row := []interface{}{coin.Symbol, m.Kind.String(), p.Date.Format("2006-01-02"), p.Capital}
				if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
					return err
				}
				rowNum++
			}
		}
	}
	return nil
}

func (r *ExcelReporter) writeCVSheet(fx *excelize.File, sheet string, batch *pipeline.BatchResult, headerStyle int) error {
	header := []interface{}{"Coin", "Model", "Degree", "Fold", "MSE", "Mean MSE", "Std MSE", "Converged"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	fx.SetCellStyle(sheet, "A1", "H1", headerStyle)

	rowNum := 2
	for _, coin := range batch.Coins {
		for _, m := range coin.Models {
			for fold, score := range m.Result.CVScores {
				cell, _ := excelize.CoordinatesToCellName(1, rowNum)
				row := []interface{}{
					coin.Symbol, m.Kind.String(), m.Result.Degree, fold + 1, score,
					m.Result.MeanCVError, m.Result.StdCVError, m.Result.Converged,
				}
				if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
					return err
				}
				rowNum++
			}
		}
	}
	return nil
}

func (r *ExcelReporter) writeStatsSheet(fx *excelize.File, sheet string, batch *pipeline.BatchResult, headerStyle int) error {
	header := []interface{}{"Coin", "Mean Return %", "t", "p", "Reject H0", "Group"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	fx.SetCellStyle(sheet, "A1", "F1", headerStyle)

	rowNum := 2
	for _, coin := range batch.Coins {
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		row := []interface{}{
			coin.Symbol,
			coin.Hypothesis.Mean,
			coin.Hypothesis.Statistic,
			coin.Hypothesis.PValue,
			coin.Hypothesis.RejectNull,
			batch.GroupAssignment[coin.Symbol],
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		rowNum++
	}

	if batch.ANOVACoins != nil {
		rowNum++
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		row := []interface{}{"ANOVA coins", batch.ANOVACoins.F, batch.ANOVACoins.PValue, batch.ANOVACoins.RejectNull}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		rowNum++
	}
	if batch.ANOVAGrouped != nil {
		cell, _ := excelize.CoordinatesToCellName(1, rowNum+1)
		row := []interface{}{"ANOVA groups", batch.ANOVAGrouped.F, batch.ANOVAGrouped.PValue, batch.ANOVAGrouped.RejectNull}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
