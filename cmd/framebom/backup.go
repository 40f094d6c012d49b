package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/framebom/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore all application data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write config, inventory, and presets to a single backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore config, inventory, and presets from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupImport,
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	config, err := project.LoadDefaultAppConfig()
	if err != nil {
		return err
	}
	inv, _, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}
	presets, err := project.LoadDefaultPresets()
	if err != nil {
		return err
	}

	if err := project.ExportAllData(args[0], config, inv, presets); err != nil {
		return err
	}
	fmt.Printf("Backup written to %s\n", args[0])
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	data, err := project.ImportAllData(args[0])
	if err != nil {
		return err
	}

	if err := project.SaveDefaultAppConfig(data.Config); err != nil {
		return err
	}
	invPath, err := project.DefaultInventoryPath()
	if err != nil {
		return err
	}
	if err := project.SaveInventory(invPath, data.Inventory); err != nil {
		return err
	}
	if err := project.SaveDefaultPresets(data.Presets); err != nil {
		return err
	}

	fmt.Printf("Restored backup from %s (%d inventory pieces, %d presets)\n",
		args[0], data.Inventory.TotalPieces(), len(data.Presets.Presets))
	return nil
}
