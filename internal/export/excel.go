package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/framewright/framebom/internal/model"
)

// ExportExcel writes a frame plan as an Excel workbook with separate
// sheets for the module requirement, the hardware tally, the per-edge
// piece layout, and the current inventory.
func ExportExcel(path string, plan model.FramePlan, inv model.Inventory) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRequirementSheet(f, plan, inv); err != nil {
		return err
	}
	if err := writeHardwareSheet(f, plan); err != nil {
		return err
	}
	if err := writeEdgesSheet(f, plan); err != nil {
		return err
	}
	if err := writeInventorySheet(f, inv); err != nil {
		return err
	}

	// Drop the default sheet created by NewFile
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	return f.SaveAs(path)
}

func writeRequirementSheet(f *excelize.File, plan model.FramePlan, inv model.Inventory) error {
	const sheet = "Requirements"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"Module (mm)", "Custom", "Required", "In stock", "To buy"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	shortfall := model.Shortfall(plan.Requirement.Table, inv)
	row := 2
	for _, length := range plan.Requirement.Table.Lengths() {
		values := []interface{}{
			length,
			!model.IsCatalogLength(length),
			plan.Requirement.Table[length],
			inv.Count(length),
			shortfall[length],
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	// Totals row
	totalCell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetCellValue(sheet, totalCell, "Total pieces"); err != nil {
		return err
	}
	countCell, _ := excelize.CoordinatesToCellName(3, row)
	return f.SetCellValue(sheet, countCell, plan.Requirement.Table.TotalPieces())
}

func writeHardwareSheet(f *excelize.File, plan model.FramePlan) error {
	const sheet = "Hardware"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	joints := plan.Requirement.Joints
	hw := plan.Requirement.Hardware
	rows := [][]interface{}{
		{"Item", "Count"},
		{"Internal joints", joints.Internal},
		{"Connection joints", joints.Connection},
		{"Total joints", joints.Total},
		{"Couplers", hw.Couplers},
		{"Pins", hw.Pins},
		{"Clips", hw.Clips},
	}
	for r, rowValues := range rows {
		for c, v := range rowValues {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEdgesSheet(f *excelize.File, plan model.FramePlan) error {
	const sheet = "Edges"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"Edge", "Position", "Piece ID", "Length (mm)", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, edge := range plan.Edges {
		for i, seg := range edge.Segments {
			values := []interface{}{string(edge.Edge), i + 1, seg.ID, seg.Length, string(seg.Status)}
			for c, v := range values {
				cell, _ := excelize.CoordinatesToCellName(c+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}

func writeInventorySheet(f *excelize.File, inv model.Inventory) error {
	const sheet = "Inventory"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"Module (mm)", "Owned"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, length := range inv.Lengths() {
		lenCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, lenCell, length); err != nil {
			return err
		}
		cntCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheet, cntCell, inv.Count(length)); err != nil {
			return err
		}
		row++
	}
	return nil
}
