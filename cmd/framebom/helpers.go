package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/framewright/framebom/internal/model"
	"github.com/framewright/framebom/internal/project"
)

// intSetting returns an integer setting for a command. Precedence: an
// explicitly set flag wins, then the viper value (config file or
// FRAMEBOM_* env var), then the flag default.
func intSetting(cmd *cobra.Command, name string) int {
	if !cmd.Flags().Changed(name) {
		if v := viper.GetInt(name); v > 0 {
			return v
		}
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

// stringSetting is intSetting for string flags.
func stringSetting(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) {
		if v := viper.GetString(name); v != "" {
			return v
		}
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// resolveFrame resolves the frame dimensions for a command from its
// --preset or --width/--height flags, falling back to viper for values
// not given on the command line. Depth falls back to the configured
// default when neither source has it.
func resolveFrame(cmd *cobra.Command) (model.Frame, error) {
	config, err := project.LoadDefaultAppConfig()
	if err != nil {
		return model.Frame{}, err
	}

	if preset := stringSetting(cmd, "preset"); preset != "" {
		store, err := project.LoadDefaultPresets()
		if err != nil {
			return model.Frame{}, err
		}
		p := store.FindByName(preset)
		if p == nil {
			p = store.FindByID(preset)
		}
		if p == nil {
			return model.Frame{}, fmt.Errorf("no preset named %q (known: %s)", preset, strings.Join(store.Names(), ", "))
		}
		return p.ToFrame(), nil
	}

	width := intSetting(cmd, "width")
	height := intSetting(cmd, "height")
	depth := intSetting(cmd, "depth")
	if depth == 0 {
		depth = config.DefaultDepth
	}
	if width <= 0 || height <= 0 {
		return model.Frame{}, fmt.Errorf("frame dimensions required: pass --width and --height, or --preset")
	}

	return model.NewFrame(width, height, depth), nil
}

// planForFrame loads the inventory, assigns pieces for the frame, and
// returns the plan together with the inventory used.
func planForFrame(frame model.Frame) (model.FramePlan, model.Inventory, error) {
	inv, path, err := project.LoadOrCreateInventory()
	if err != nil {
		return model.FramePlan{}, nil, err
	}
	logger.Debug("loaded inventory", "path", path, "pieces", inv.TotalPieces())

	plan, err := model.AssignFrame(frame.Width, frame.Height, inv)
	if err != nil {
		return model.FramePlan{}, nil, err
	}
	plan.Frame.Depth = frame.Depth
	return plan, inv, nil
}

// parsePrices parses repeated "length=price" flags into a price map.
func parsePrices(entries []string) (map[int]float64, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	prices := make(map[int]float64, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid price %q, expected length=price", entry)
		}
		length, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || length <= 0 {
			return nil, fmt.Errorf("invalid length in price %q", entry)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("invalid price in %q", entry)
		}
		prices[length] = price
	}
	return prices, nil
}

func addFrameFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("width", "W", 0, "frame width in mm")
	cmd.Flags().IntP("height", "H", 0, "frame height in mm")
	cmd.Flags().IntP("depth", "D", 0, "frame depth in mm (default from config)")
	cmd.Flags().StringP("preset", "p", "", "use a named frame preset instead of explicit dimensions")
}
