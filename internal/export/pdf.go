// Package export provides functionality for exporting frame plans to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/framewright/framebom/internal/model"
)

// segmentColor represents an RGB color for a rendered segment.
type segmentColor struct {
	R, G, B int
}

var (
	ownedColor   = segmentColor{R: 76, G: 175, B: 80}  // green
	missingColor = segmentColor{R: 244, G: 67, B: 54}  // red
	jointColor   = segmentColor{R: 33, G: 33, B: 33}   // near black
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	beamThick    = 6.0 // rendered thickness of a frame edge in page mm
)

// ExportPDF generates a PDF bill-of-materials for a frame plan: an
// elevation diagram of the four edges with owned and missing pieces in
// different colors, followed by the requirement, shortfall, and hardware
// tables.
func ExportPDF(path string, plan model.FramePlan, inv model.Inventory) error {
	if len(plan.Edges) == 0 {
		return fmt.Errorf("no edges to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDiagramPage(pdf, plan)

	pdf.AddPage()
	renderTablesPage(pdf, plan, inv)

	return pdf.OutputFileAndClose(path)
}

// renderDiagramPage draws the frame elevation with per-segment coloring.
func renderDiagramPage(pdf *fpdf.Fpdf, plan model.FramePlan) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Frame %d x %d mm", plan.Frame.Width, plan.Frame.Height)
	if plan.Frame.Depth > 0 {
		title += fmt.Sprintf(" (depth %d mm)", plan.Frame.Depth)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Status line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	status := "buildable from inventory"
	if !plan.Buildable {
		status = "NOT buildable from inventory"
	}
	stats := fmt.Sprintf("Pieces: %d | Missing on edges: %d | Joints: %d | Status: %s",
		plan.TotalPieces(), plan.MissingPieces(), plan.Requirement.Joints.Total, status)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the frame into the drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 15

	scaleX := drawWidth / float64(plan.Frame.Width)
	scaleY := drawHeight / float64(plan.Frame.Height)
	scale := math.Min(scaleX, scaleY)

	frameW := float64(plan.Frame.Width) * scale
	frameH := float64(plan.Frame.Height) * scale
	offsetX := marginLeft + (drawWidth-frameW)/2
	offsetY := drawAreaTop

	drawEdge(pdf, plan.EdgeLayout(model.EdgeTop), scale, offsetX, offsetY, true)
	drawEdge(pdf, plan.EdgeLayout(model.EdgeBottom), scale, offsetX, offsetY+frameH-beamThick, true)
	drawEdge(pdf, plan.EdgeLayout(model.EdgeLeft), scale, offsetX, offsetY, false)
	drawEdge(pdf, plan.EdgeLayout(model.EdgeRight), scale, offsetX+frameW-beamThick, offsetY, false)

	drawDimensionAnnotations(pdf, plan.Frame, offsetX, offsetY, frameW, frameH)
	drawLegend(pdf, offsetY+frameH+6)
}

// drawEdge renders one edge as a strip of colored segment rectangles with
// joint ticks between consecutive pieces.
func drawEdge(pdf *fpdf.Fpdf, layout *model.EdgeLayout, scale, startX, startY float64, horizontal bool) {
	if layout == nil {
		return
	}

	pdf.SetDrawColor(jointColor.R, jointColor.G, jointColor.B)
	pdf.SetLineWidth(0.3)

	pos := 0.0
	for _, seg := range layout.Segments {
		col := ownedColor
		if seg.Status == model.StatusMissing {
			col = missingColor
		}
		pdf.SetFillColor(col.R, col.G, col.B)

		segLen := float64(seg.Length) * scale
		if horizontal {
			pdf.Rect(startX+pos, startY, segLen, beamThick, "FD")
		} else {
			pdf.Rect(startX, startY+pos, beamThick, segLen, "FD")
		}

		// Segment length label, if it fits
		if segLen > 12 {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(255, 255, 255)
			label := fmt.Sprintf("%d", seg.Length)
			labelW := pdf.GetStringWidth(label)
			if horizontal {
				pdf.SetXY(startX+pos+(segLen-labelW)/2, startY+beamThick/2-1.5)
			} else {
				pdf.SetXY(startX+beamThick/2-labelW/2-0.5, startY+pos+segLen/2-1.5)
			}
			pdf.CellFormat(labelW, 3, label, "", 0, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}

		pos += segLen
	}
}

// drawDimensionAnnotations adds width and height labels outside the frame.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, frame model.Frame, offsetX, offsetY, frameW, frameH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d mm", frame.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(frameW-wLabelW)/2, offsetY+frameH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d mm", frame.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+frameH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+frameH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders the owned/missing color key below the diagram.
func drawLegend(pdf *fpdf.Fpdf, y float64) {
	entries := []struct {
		label string
		col   segmentColor
	}{
		{"In inventory", ownedColor},
		{"Missing", missingColor},
	}

	pdf.SetFont("Helvetica", "", 7)
	x := marginLeft
	for _, e := range entries {
		pdf.SetFillColor(e.col.R, e.col.G, e.col.B)
		pdf.Rect(x, y+0.5, 3, 3, "F")
		pdf.SetXY(x+4, y)
		labelW := pdf.GetStringWidth(e.label) + 4
		pdf.CellFormat(labelW, 4, e.label, "", 0, "L", false, 0, "")
		x += labelW + 8
	}
}

// renderTablesPage draws the requirement, shortfall, and hardware tables.
func renderTablesPage(pdf *fpdf.Fpdf, plan model.FramePlan, inv model.Inventory) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Bill of Materials", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Module requirement table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Modules", "", 0, "L", false, 0, "")
	y += 9

	shortfall := model.Shortfall(plan.Requirement.Table, inv)

	colWidths := []float64{45, 30, 30, 30}
	headers := []string{"Module", "Required", "In stock", "To buy"}
	y = drawTableHeader(pdf, headers, colWidths, y)

	pdf.SetFont("Helvetica", "", 9)
	rowIdx := 0
	for _, length := range plan.Requirement.Table.Lengths() {
		name := fmt.Sprintf("%d mm", length)
		if !model.IsCatalogLength(length) {
			name += " (custom cut)"
		}
		row := []string{
			name,
			fmt.Sprintf("%d", plan.Requirement.Table[length]),
			fmt.Sprintf("%d", inv.Count(length)),
			fmt.Sprintf("%d", shortfall[length]),
		}
		y = drawTableRow(pdf, row, colWidths, y, rowIdx)
		rowIdx++
	}

	y += 8

	// Hardware table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Joints & Hardware", "", 0, "L", false, 0, "")
	y += 9

	hwWidths := []float64{60, 40}
	y = drawTableHeader(pdf, []string{"Item", "Count"}, hwWidths, y)

	joints := plan.Requirement.Joints
	hw := plan.Requirement.Hardware
	hwRows := [][]string{
		{"Internal joints", fmt.Sprintf("%d", joints.Internal)},
		{"Connection joints", fmt.Sprintf("%d", joints.Connection)},
		{"Total joints", fmt.Sprintf("%d", joints.Total)},
		{"Couplers", fmt.Sprintf("%d", hw.Couplers)},
		{"Pins", fmt.Sprintf("%d", hw.Pins)},
		{"Clips", fmt.Sprintf("%d", hw.Clips)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for i, row := range hwRows {
		y = drawTableRow(pdf, row, hwWidths, y, i)
	}

	// Shortfall warning
	if len(shortfall) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Missing Modules", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, length := range shortfall.Lengths() {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %d mm: need %d more", length, shortfall[length])
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by FrameBOM - Modular Frame Planner", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawTableHeader renders a shaded header row and returns the next y.
func drawTableHeader(pdf *fpdf.Fpdf, headers []string, colWidths []float64, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	return y + 6
}

// drawTableRow renders one data row with alternating background.
func drawTableRow(pdf *fpdf.Fpdf, row []string, colWidths []float64, y float64, rowIdx int) float64 {
	if rowIdx%2 == 0 {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	x := marginLeft
	for i, cell := range row {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, cell, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	return y + 6
}
