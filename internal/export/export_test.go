package export

import (
	"testing"

	"github.com/framewright/framebom/internal/model"
)

// testInventory is the stock used by the export tests: enough for the top
// beam and part of the rest, so plans contain both owned and missing pieces.
func testInventory() model.Inventory {
	return model.Inventory{1000: 6, 500: 1}
}

// buildTestPlan creates a realistic frame plan for testing.
func buildTestPlan(t *testing.T) model.FramePlan {
	t.Helper()
	plan, err := model.AssignFrame(3000, 2500, testInventory())
	if err != nil {
		t.Fatalf("AssignFrame failed: %v", err)
	}
	plan.Frame.Depth = 600
	return plan
}
