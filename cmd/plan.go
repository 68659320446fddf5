package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [populate|fill-missing]",
	Short: "Show the generation order of a plan",
	Long: `Print each step of a plan in the order it runs, with its row count and
the id lists it reads and writes. The plan is validated but the database is
not contacted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "populate"
		if len(args) == 1 {
			name = args[0]
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Seed.Validate(); err != nil {
			return err
		}

		plan, err := lookupPlan(name)
		if err != nil {
			return err
		}
		if plan, err = selectPlan(plan, cfg.Seed); err != nil {
			return err
		}
		if err := plan.Validate(); err != nil {
			return err
		}

		color.Cyan("📋 Plan %s", plan.Name)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "#\tTABLE\tACTION\tROWS\tREADS\tWRITES")
		fmt.Fprintln(w, "-\t-----\t------\t----\t-----\t------")
		for i, step := range plan.Steps {
			rows := fmt.Sprint(step.Count)
			action := "generate"
			if step.Preload {
				rows = "-"
				action = "preload " + step.Column
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				i+1, step.Table, action, rows, orDash(strings.Join(step.Requires, ", ")), orDash(step.Produces))
		}
		w.Flush()
		fmt.Println()
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(planCmd)
	addSeedFlags(planCmd)
}
