package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const (
	sheetCosts      = "Costs"
	sheetDeliveries = "Deliveries"
)

var (
	costHeaders     = []string{"Item", "Kind", "Category", "Total Cost", "Material Cost", "Stamina", "Error"}
	deliveryHeaders = []string{"Item", "Reward", "Recommend", "Round", "Total Items", "Unit Cost", "Total Cost", "Total Profit", "Avg Efficiency", "Error"}
)

// WriteXLSX saves the report as a workbook with one sheet for item costs and one
// for delivery recommendations.
func (r *Report) WriteXLSX(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCosts); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetDeliveries); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := writeHeader(f, sheetCosts, costHeaders, headerStyle); err != nil {
		return err
	}
	for i, row := range r.Costs {
		values := []any{row.Item, string(row.Kind), string(row.Category)}
		if row.Err == "" {
			values = append(values, row.TotalCost, row.MaterialCost, row.Stamina, "")
		} else {
			values = append(values, nil, nil, nil, row.Err)
		}
		if err := writeRow(f, sheetCosts, i+2, values); err != nil {
			return err
		}
	}

	if err := writeHeader(f, sheetDeliveries, deliveryHeaders, headerStyle); err != nil {
		return err
	}
	for i, row := range r.Deliveries {
		values := []any{row.Item, row.Reward}
		if res := row.Result; res != nil {
			var round any
			if res.Round != nil {
				round = *res.Round
			}
			values = append(values, res.Recommend, round, res.TotalItems, res.UnitCost,
				res.TotalCost, res.TotalProfit, res.AverageEfficiency, "")
		} else {
			values = append(values, nil, nil, nil, nil, nil, nil, nil, row.Err)
		}
		if err := writeRow(f, sheetDeliveries, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetCosts, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetDeliveries, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetCosts, "I1", fmt.Sprintf("Dataset version %d", r.DatasetVersion)); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
