package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Rana718/fleetseed/internal/db"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [populate|fill-missing]",
	Short: "Count the rows in each table of a plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "populate"
		if len(args) == 1 {
			name = args[0]
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Database.Validate(); err != nil {
			return err
		}
		plan, err := lookupPlan(name)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		conn, err := db.Open(ctx, cfg.Database)
		if err != nil {
			color.Red("❌ Could not connect to %s", cfg.Database)
			return err
		}
		defer conn.Close()

		color.Cyan("📊 Row counts in %s", cfg.Database)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TABLE\tROWS\tPLANNED")
		fmt.Fprintln(w, "-----\t----\t-------")
		for _, step := range plan.Steps {
			planned := fmt.Sprint(step.Count)
			if step.Preload {
				planned = "-"
			}
			n, err := conn.CountRows(ctx, step.Table)
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\t%s\n", step.Table, color.RedString("error"), planned)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", step.Table, n, planned)
		}
		w.Flush()
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
