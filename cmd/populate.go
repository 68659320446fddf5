package cmd

import (
	"github.com/spf13/cobra"
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Generate the whole fleet schema",
	Long: `Generate customers, staff, drivers, depots, vehicles, routes, stops,
bookings, trips, invoices and the two link tables, parents first.

Rows that the database rejects (for example a duplicate primary key) are
counted and reported; the run carries on with the next row.`,
	Example: `  fleetseed populate
  fleetseed populate --tables Driver --with-parents --count Staff=20
  fleetseed populate --seed 42 --dedupe key --report run.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd, "populate")
	},
}

func init() {
	rootCmd.AddCommand(populateCmd)
	addSeedFlags(populateCmd)
}
