package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/framewright/framebom/internal/export"
	"github.com/framewright/framebom/internal/model"
	"github.com/framewright/framebom/internal/project"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Find the largest frame buildable from the current inventory",
	Long: `Fit scans candidate frame sizes within the configured bounds and
reports the largest frame (by area) that is fully buildable from the
current inventory. When nothing within the bounds is buildable a
1000 x 1000 mm fallback is reported as a starting point.`,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().Int("min-width", 0, "minimum width to consider in mm")
	fitCmd.Flags().Int("max-width", 0, "maximum width to consider in mm")
	fitCmd.Flags().Int("min-height", 0, "minimum height to consider in mm")
	fitCmd.Flags().Int("max-height", 0, "maximum height to consider in mm")
	fitCmd.Flags().Int("step", 0, "scan step in mm")
	fitCmd.Flags().Bool("bom", false, "also print the bill of materials for the fitted frame")
}

// resolveFitBounds layers the search grid bounds: the saved app config is
// the base, viper keys (fit.min_width etc. from the config file or
// FRAMEBOM_FIT_* env vars) override it, and explicit flags win.
func resolveFitBounds(cmd *cobra.Command, base model.FitBounds) model.FitBounds {
	bounds := base
	layer := func(flag, key string, dst *int) {
		if cmd.Flags().Changed(flag) {
			if v, _ := cmd.Flags().GetInt(flag); v > 0 {
				*dst = v
			}
			return
		}
		if v := viper.GetInt(key); v > 0 {
			*dst = v
		}
	}
	layer("min-width", "fit.min_width", &bounds.MinWidth)
	layer("max-width", "fit.max_width", &bounds.MaxWidth)
	layer("min-height", "fit.min_height", &bounds.MinHeight)
	layer("max-height", "fit.max_height", &bounds.MaxHeight)
	layer("step", "fit.step", &bounds.Step)
	return bounds
}

func runFit(cmd *cobra.Command, args []string) error {
	config, err := project.LoadDefaultAppConfig()
	if err != nil {
		return err
	}

	bounds := resolveFitBounds(cmd, config.Bounds())

	inv, path, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}
	logger.Debug("loaded inventory", "path", path, "pieces", inv.TotalPieces())

	width, height := model.AutoFit(inv, bounds)
	buildable := false
	if req, err := model.Aggregate(width, height); err == nil {
		buildable = model.IsBuildable(req.Table, inv)
	}

	fmt.Printf("Largest buildable frame: %d x %d mm\n", width, height)
	if !buildable {
		fmt.Println("Note: no frame within the bounds is buildable from inventory; this is a fallback suggestion.")
	}

	if showBOM, _ := cmd.Flags().GetBool("bom"); showBOM {
		plan, err := model.AssignFrame(width, height, inv)
		if err != nil {
			return err
		}
		plan.Frame.Depth = config.DefaultDepth
		fmt.Println()
		return export.WriteBOM(os.Stdout, plan, inv)
	}
	return nil
}
