package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/framewright/framebom/internal/export"
	"github.com/framewright/framebom/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a frame and print its bill of materials",
	Long: `Plan decomposes the frame's four edges into catalog modules, matches
them against your inventory in first-come-first-served order, and prints
the resulting bill of materials with joint and hardware counts.`,
	RunE: runPlan,
}

func init() {
	addFrameFlags(planCmd)
	planCmd.Flags().StringArray("price", nil, "module price as length=price, repeatable (e.g. --price 1000=12.50)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	frame, err := resolveFrame(cmd)
	if err != nil {
		return err
	}

	plan, inv, err := planForFrame(frame)
	if err != nil {
		return err
	}

	if err := export.WriteBOM(os.Stdout, plan, inv); err != nil {
		return err
	}

	priceEntries, _ := cmd.Flags().GetStringArray("price")
	prices, err := parsePrices(priceEntries)
	if err != nil {
		return err
	}
	if prices != nil {
		shortfall := model.Shortfall(plan.Requirement.Table, inv)
		est := model.CalculatePurchaseEstimate(shortfall, prices)
		fmt.Printf("\nPurchase estimate: %d pieces, %.2f m of beam, %.2f total",
			est.MissingPieces, est.MissingLengthM, est.EstimatedCost)
		if est.UnpricedPieces > 0 {
			fmt.Printf(" (%d pieces without a price)", est.UnpricedPieces)
		}
		fmt.Println()
	}

	return nil
}
