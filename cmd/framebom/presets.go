package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/framebom/internal/model"
	"github.com/framewright/framebom/internal/project"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage named frame size presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available frame presets",
	RunE:  runPresetsList,
}

var presetsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new frame preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsAdd,
}

var presetsRemoveCmd = &cobra.Command{
	Use:     "remove <id|name>",
	Aliases: []string{"rm"},
	Short:   "Remove a frame preset",
	Args:    cobra.ExactArgs(1),
	RunE:    runPresetsRemove,
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsAddCmd)
	presetsCmd.AddCommand(presetsRemoveCmd)

	presetsAddCmd.Flags().IntP("width", "W", 0, "frame width in mm")
	presetsAddCmd.Flags().IntP("height", "H", 0, "frame height in mm")
	presetsAddCmd.Flags().IntP("depth", "D", 0, "frame depth in mm (default from config)")
	_ = presetsAddCmd.MarkFlagRequired("width")
	_ = presetsAddCmd.MarkFlagRequired("height")
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	store, err := project.LoadDefaultPresets()
	if err != nil {
		return err
	}

	if len(store.Presets) == 0 {
		fmt.Println("No presets defined.")
		return nil
	}

	fmt.Printf("%-10s %-24s %s\n", "id", "name", "size (mm)")
	for _, p := range store.Presets {
		fmt.Printf("%-10s %-24s %d x %d x %d\n", p.ID, p.Name, p.Width, p.Height, p.Depth)
	}
	return nil
}

func runPresetsAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	depth, _ := cmd.Flags().GetInt("depth")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if depth == 0 {
		config, err := project.LoadDefaultAppConfig()
		if err != nil {
			return err
		}
		depth = config.DefaultDepth
	}

	store, err := project.LoadDefaultPresets()
	if err != nil {
		return err
	}
	if store.FindByName(name) != nil {
		return fmt.Errorf("preset %q already exists", name)
	}

	preset := model.NewFramePreset(name, width, height, depth)
	store.Add(preset)
	if err := project.SaveDefaultPresets(store); err != nil {
		return err
	}

	fmt.Printf("Added preset %s (%s): %d x %d x %d mm\n", preset.Name, preset.ID, width, height, depth)
	return nil
}

func runPresetsRemove(cmd *cobra.Command, args []string) error {
	store, err := project.LoadDefaultPresets()
	if err != nil {
		return err
	}

	id := args[0]
	if p := store.FindByName(id); p != nil {
		id = p.ID
	}
	if !store.Remove(id) {
		return fmt.Errorf("no preset with id or name %q", args[0])
	}
	if err := project.SaveDefaultPresets(store); err != nil {
		return err
	}

	fmt.Printf("Removed preset %s\n", args[0])
	return nil
}
