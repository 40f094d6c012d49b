package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/framewright/framebom/internal/model"
)

// WriteBOM writes a plain-text bill of materials for a frame plan. This is
// the format the CLI prints; the PDF and Excel exporters carry the same
// data for sharing.
func WriteBOM(w io.Writer, plan model.FramePlan, inv model.Inventory) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Frame %d x %d mm", plan.Frame.Width, plan.Frame.Height)
	if plan.Frame.Depth > 0 {
		fmt.Fprintf(&b, " (depth %d mm)", plan.Frame.Depth)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Perimeter: %d mm\n\n", plan.Frame.Perimeter())

	// Per-edge layout
	b.WriteString("Edges:\n")
	for _, edge := range plan.Edges {
		fmt.Fprintf(&b, "  %-6s ", edge.Edge)
		parts := make([]string, len(edge.Segments))
		for i, seg := range edge.Segments {
			mark := ""
			if seg.Status == model.StatusMissing {
				mark = "*"
			}
			parts[i] = fmt.Sprintf("%d%s", seg.Length, mark)
		}
		fmt.Fprintf(&b, "[%s]", strings.Join(parts, " "))
		if missing := edge.MissingCount(); missing > 0 {
			fmt.Fprintf(&b, "  (%d missing)", missing)
		}
		b.WriteString("\n")
	}
	b.WriteString("  (* = not in stock)\n\n")

	// Requirement table
	shortfall := model.Shortfall(plan.Requirement.Table, inv)
	b.WriteString("Modules:\n")
	fmt.Fprintf(&b, "  %-18s %9s %9s %8s\n", "module", "required", "in stock", "to buy")
	for _, length := range plan.Requirement.Table.Lengths() {
		name := fmt.Sprintf("%d mm", length)
		if !model.IsCatalogLength(length) {
			name += " (custom)"
		}
		fmt.Fprintf(&b, "  %-18s %9d %9d %8d\n",
			name, plan.Requirement.Table[length], inv.Count(length), shortfall[length])
	}
	b.WriteString("\n")

	// Joints and hardware
	joints := plan.Requirement.Joints
	hw := plan.Requirement.Hardware
	fmt.Fprintf(&b, "Joints: %d internal + %d connection = %d total\n",
		joints.Internal, joints.Connection, joints.Total)
	fmt.Fprintf(&b, "Hardware: %d couplers, %d pins, %d clips\n\n", hw.Couplers, hw.Pins, hw.Clips)

	if plan.Buildable {
		b.WriteString("Status: buildable from inventory\n")
	} else {
		b.WriteString("Status: NOT buildable from inventory\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatBOM renders the plain-text bill of materials as a string.
func FormatBOM(plan model.FramePlan, inv model.Inventory) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = WriteBOM(&b, plan, inv)
	return b.String()
}
