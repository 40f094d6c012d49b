package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framewright/framebom/internal/model"
)

func TestExportDXFCreatesDrawing(t *testing.T) {
	plan := buildTestPlan(t)
	path := filepath.Join(t.TempDir(), "frame.dxf")

	if err := ExportDXF(path, plan); err != nil {
		t.Fatalf("ExportDXF failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "LINE") {
		t.Error("expected LINE entities in DXF output")
	}
	for _, layer := range []string{"FRAME", "JOINTS"} {
		if !strings.Contains(content, layer) {
			t.Errorf("expected layer %q in DXF output", layer)
		}
	}
}

func TestExportDXFEmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")
	if err := ExportDXF(path, model.FramePlan{}); err == nil {
		t.Error("expected error for plan without edges")
	}
}
