package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framewright/framebom/internal/importer"
	"github.com/framewright/framebom/internal/model"
	"github.com/framewright/framebom/internal/project"
)

var inventoryCmd = &cobra.Command{
	Use:     "inventory",
	Aliases: []string{"inv"},
	Short:   "Show and manage the beam module inventory",
}

var inventoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current inventory",
	RunE:  runInventoryShow,
}

var inventorySetCmd = &cobra.Command{
	Use:   "set <length> <count>",
	Short: "Set the owned count for a module length",
	Args:  cobra.ExactArgs(2),
	RunE:  runInventorySet,
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add <length> <count>",
	Short: "Add to the owned count for a module length (negative to remove)",
	Args:  cobra.ExactArgs(2),
	RunE:  runInventoryAdd,
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import inventory from a CSV, Excel, or JSON file",
	Long: `Import reads module counts from the given file and merges them into
the current inventory by summing counts per length. CSV files may use
comma, semicolon, tab, or pipe delimiters; headers are matched
case-insensitively against common aliases (length/module/size,
count/qty/owned).`,
	Args: cobra.ExactArgs(1),
	RunE: runInventoryImport,
}

var inventoryExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the current inventory as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryExport,
}

func init() {
	inventoryCmd.AddCommand(inventoryShowCmd)
	inventoryCmd.AddCommand(inventorySetCmd)
	inventoryCmd.AddCommand(inventoryAddCmd)
	inventoryCmd.AddCommand(inventoryImportCmd)
	inventoryCmd.AddCommand(inventoryExportCmd)
}

func printInventory(inv model.Inventory) {
	fmt.Printf("%-14s %s\n", "module", "owned")
	for _, length := range inv.Lengths() {
		name := fmt.Sprintf("%d mm", length)
		if !model.IsCatalogLength(length) {
			name += " *"
		}
		fmt.Printf("%-14s %d\n", name, inv.Count(length))
	}
	fmt.Printf("Total: %d pieces, %d mm of beam\n", inv.TotalPieces(), inv.TotalLength())
}

func runInventoryShow(cmd *cobra.Command, args []string) error {
	inv, path, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}
	logger.Debug("loaded inventory", "path", path)
	printInventory(inv)
	return nil
}

func parseLengthCount(args []string) (int, int, error) {
	length, err := strconv.Atoi(args[0])
	if err != nil || length <= 0 {
		return 0, 0, fmt.Errorf("invalid length %q", args[0])
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid count %q", args[1])
	}
	return length, count, nil
}

func runInventorySet(cmd *cobra.Command, args []string) error {
	length, count, err := parseLengthCount(args)
	if err != nil {
		return err
	}

	inv, path, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}
	inv.Set(length, count)
	if err := project.SaveInventory(path, inv); err != nil {
		return err
	}
	printInventory(inv)
	return nil
}

func runInventoryAdd(cmd *cobra.Command, args []string) error {
	length, count, err := parseLengthCount(args)
	if err != nil {
		return err
	}

	inv, path, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}
	if inv.Count(length)+count < 0 {
		logger.Warn("count clamped to zero", "length", length)
	}
	inv.Add(length, count)
	if err := project.SaveInventory(path, inv); err != nil {
		return err
	}
	printInventory(inv)
	return nil
}

func runInventoryImport(cmd *cobra.Command, args []string) error {
	file := args[0]
	inv, path, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}

	var merged model.Inventory
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		merged, err = project.ImportInventory(file, inv)
		if err != nil {
			return err
		}
	case ".csv", ".txt":
		result := importer.ImportCSV(file)
		merged = mergeImportResult(result, inv)
		if merged == nil {
			return fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
		}
	case ".xlsx":
		result := importer.ImportExcel(file)
		merged = mergeImportResult(result, inv)
		if merged == nil {
			return fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
		}
	default:
		return fmt.Errorf("unsupported import format %q (use .csv, .xlsx, or .json)", filepath.Ext(file))
	}

	if err := project.SaveInventory(path, merged); err != nil {
		return err
	}
	printInventory(merged)
	return nil
}

// mergeImportResult logs warnings and per-row errors, then merges the
// imported counts into the existing inventory. Returns nil when nothing
// could be imported.
func mergeImportResult(result importer.ImportResult, existing model.Inventory) model.Inventory {
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	for _, e := range result.Errors {
		logger.Error(e)
	}
	if result.Inventory.TotalPieces() == 0 && len(result.Errors) > 0 {
		return nil
	}

	merged := existing.Clone()
	for _, length := range result.Inventory.Lengths() {
		merged.Add(length, result.Inventory.Count(length))
	}
	return merged
}

func runInventoryExport(cmd *cobra.Command, args []string) error {
	inv, _, err := project.LoadOrCreateInventory()
	if err != nil {
		return err
	}
	if err := project.ExportInventory(args[0], inv); err != nil {
		return err
	}
	fmt.Printf("Exported %d pieces to %s\n", inv.TotalPieces(), args[0])
	return nil
}
