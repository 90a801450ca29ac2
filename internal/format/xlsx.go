package format

import (
	"fmt"
	"io"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/bornholm/cocomo/internal/stats"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the sweep workbook
const (
	SweepSheet       = "Sweep"
	MultipliersSheet = "Multipliers"
)

var sweepHeaders = []string{"SLOC", EffortApplied, DevelopmentTime, PeopleRequired, "HOURS", "COST"}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		if err := f.SetCellValue(sheet, cellName(col, row), v); err != nil {
			return err
		}
	}
	return nil
}

// WriteSweepWorkbook writes a sweep and the multipliers used to compute it as an xlsx workbook
func WriteSweepWorkbook(w io.Writer, estimator *cocomo.Estimator, points []stats.SweepPoint, config *model.Config) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetIndex, err := f.NewSheet(SweepSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(sheetIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := make([]any, 0, len(sweepHeaders))
	for _, h := range sweepHeaders {
		headers = append(headers, h)
	}
	if err := setRow(f, SweepSheet, 1, headers); err != nil {
		return err
	}

	for i, p := range points {
		cost := stats.CalculateCost(p.Result, config)
		err := setRow(f, SweepSheet, i+2, []any{
			p.SLOC,
			stats.Round(p.Result.Effort, config.Precision),
			stats.Round(p.Result.DevelopmentTime, config.Precision),
			stats.Round(p.Result.PeopleRequired, config.Precision),
			stats.Round(cost.Hours, config.Precision),
			stats.Round(cost.TotalCost, config.Precision),
		})
		if err != nil {
			return fmt.Errorf("failed to write sweep row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(MultipliersSheet); err != nil {
		return err
	}

	profile := estimator.Profile()
	if err := setRow(f, MultipliersSheet, 1, []any{"class", string(estimator.Class()), profile.A, profile.B, profile.C, profile.D}); err != nil {
		return err
	}
	if err := setRow(f, MultipliersSheet, 2, []any{"eaf", estimator.EAF()}); err != nil {
		return err
	}
	for i, attr := range cocomo.Attributes() {
		if err := setRow(f, MultipliersSheet, i+3, []any{string(attr), attr.Label(), estimator.Factor(attr)}); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}
