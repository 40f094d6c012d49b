package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/framewright/framebom/internal/model"
)

// ExportDXF writes the frame blueprint as a DXF drawing for CAD exchange.
// The outer frame rectangle and the inner beam faces go on the FRAME
// layer; joint boundaries between consecutive pieces go on the JOINTS
// layer as tick marks across the beam.
func ExportDXF(path string, plan model.FramePlan) error {
	if len(plan.Edges) == 0 {
		return fmt.Errorf("no edges to export")
	}

	w := float64(plan.Frame.Width)
	h := float64(plan.Frame.Height)
	const beam = 40.0 // drawn beam thickness in mm

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("FRAME", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add FRAME layer: %w", err)
	}

	// Outer rectangle
	rect(d, 0, 0, w, h)
	// Inner rectangle (beam inner faces)
	rect(d, beam, beam, w-beam, h-beam)

	if _, err := d.AddLayer("JOINTS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add JOINTS layer: %w", err)
	}

	// Joint ticks: one line across the beam at every boundary between
	// consecutive pieces on each edge. DXF Y grows upward; the plan's top
	// edge is drawn at y = h.
	drawJoints(d, plan.EdgeLayout(model.EdgeTop), func(pos float64) [4]float64 {
		return [4]float64{pos, h - beam, pos, h}
	})
	drawJoints(d, plan.EdgeLayout(model.EdgeBottom), func(pos float64) [4]float64 {
		return [4]float64{pos, 0, pos, beam}
	})
	drawJoints(d, plan.EdgeLayout(model.EdgeLeft), func(pos float64) [4]float64 {
		return [4]float64{0, pos, beam, pos}
	})
	drawJoints(d, plan.EdgeLayout(model.EdgeRight), func(pos float64) [4]float64 {
		return [4]float64{w - beam, pos, w, pos}
	})

	return d.SaveAs(path)
}

// rect draws an axis-aligned rectangle as four LINE entities.
func rect(d *drawing.Drawing, x1, y1, x2, y2 float64) {
	d.Line(x1, y1, 0, x2, y1, 0)
	d.Line(x2, y1, 0, x2, y2, 0)
	d.Line(x2, y2, 0, x1, y2, 0)
	d.Line(x1, y2, 0, x1, y1, 0)
}

// drawJoints emits a tick line at every internal piece boundary of the
// edge. The coords callback maps a boundary position along the edge to a
// line's endpoints.
func drawJoints(d *drawing.Drawing, layout *model.EdgeLayout, coords func(pos float64) [4]float64) {
	if layout == nil || len(layout.Segments) < 2 {
		return
	}
	pos := 0.0
	for _, seg := range layout.Segments[:len(layout.Segments)-1] {
		pos += float64(seg.Length)
		c := coords(pos)
		d.Line(c[0], c[1], 0, c[2], c[3], 0)
	}
}
