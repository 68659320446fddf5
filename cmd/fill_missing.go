package cmd

import (
	"github.com/spf13/cobra"
)

var fillMissingCmd = &cobra.Command{
	Use:   "fill-missing",
	Short: "Add billing invoices, scheduled trips and vehicle categories",
	Long: `Read the existing customer, booking, stop and staff numbers and
generate invoice, trip, trip_stop and vehicle_categories rows that
reference them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd, "fill-missing")
	},
}

func init() {
	rootCmd.AddCommand(fillMissingCmd)
	addSeedFlags(fillMissingCmd)
}
