package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/framewright/framebom/internal/export"
	"github.com/framewright/framebom/internal/project"
)

var exportCmd = &cobra.Command{
	Use:   "export <pdf|xlsx|dxf|labels|bom>",
	Short: "Export a frame plan as PDF, Excel, DXF, piece labels, or text",
	Long: `Export plans the frame and writes the result in the chosen format:

  pdf     two-page report with a color-coded frame diagram and BOM tables
  xlsx    workbook with requirement, hardware, edge, and inventory sheets
  dxf     CAD blueprint of the frame outline with joint tick marks
  labels  Avery 5160 label sheet with a QR code per piece
  bom     plain-text bill of materials (written to the output file)`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"pdf", "xlsx", "dxf", "labels", "bom"},
	RunE:      runExport,
}

func init() {
	addFrameFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "output file path (required)")
	_ = exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	frame, err := resolveFrame(cmd)
	if err != nil {
		return err
	}

	plan, inv, err := planForFrame(frame)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	format := args[0]

	switch format {
	case "pdf":
		err = export.ExportPDF(output, plan, inv)
	case "xlsx":
		err = export.ExportExcel(output, plan, inv)
	case "dxf":
		err = export.ExportDXF(output, plan)
	case "labels":
		err = export.ExportLabels(output, plan)
	case "bom":
		var f *os.File
		f, err = os.Create(output)
		if err == nil {
			err = export.WriteBOM(f, plan, inv)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}

	rememberExport(output)
	fmt.Printf("Exported %s to %s\n", format, output)
	return nil
}

// rememberExport records the output path in the app config's recent
// exports list, keeping the newest ten entries.
func rememberExport(path string) {
	config, err := project.LoadDefaultAppConfig()
	if err != nil {
		logger.Debug("cannot load config", "err", err)
		return
	}

	recent := []string{path}
	for _, p := range config.RecentExports {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	config.RecentExports = recent

	if err := project.SaveDefaultAppConfig(config); err != nil {
		logger.Debug("cannot save config", "err", err)
	}
}
