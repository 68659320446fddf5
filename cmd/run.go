package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/Rana718/fleetseed/internal/config"
	"github.com/Rana718/fleetseed/internal/db"
	"github.com/Rana718/fleetseed/internal/logging"
	"github.com/Rana718/fleetseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var plans = map[string]func() seeder.Plan{
	"populate":     seeder.PopulatePlan,
	"fill-missing": seeder.FillMissingPlan,
}

func lookupPlan(name string) (seeder.Plan, error) {
	build, ok := plans[name]
	if !ok {
		names := make([]string, 0, len(plans))
		for n := range plans {
			names = append(names, n)
		}
		sort.Strings(names)
		return seeder.Plan{}, fmt.Errorf("unknown plan %q (available: %s)", name, strings.Join(names, ", "))
	}
	return build(), nil
}

// selectPlan narrows and resizes a plan according to the seed settings.
func selectPlan(plan seeder.Plan, seed config.Seed) (seeder.Plan, error) {
	plan, err := plan.Select(seed.Tables, seed.WithParents)
	if err != nil {
		return seeder.Plan{}, err
	}
	return plan.WithCounts(seed.Counts)
}

// runPlan connects, runs the named plan and prints its summary.
func runPlan(cmd *cobra.Command, name string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	plan, err := lookupPlan(name)
	if err != nil {
		return err
	}
	if plan, err = selectPlan(plan, cfg.Seed); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	conn, err := db.Open(connectCtx, cfg.Database)
	cancel()
	if err != nil {
		color.Red("❌ Could not connect to %s", cfg.Database)
		return err
	}
	defer conn.Close()

	seed := cfg.Seed.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("connected", zap.Stringer("database", cfg.Database), zap.Int64("seed", seed))

	var progress io.Writer
	if cfg.Seed.Progress {
		progress = os.Stderr
	}

	if cfg.Seed.DryRun {
		color.Yellow("🧪 Dry run: rows are generated but not inserted")
	}
	color.Cyan("🌱 Running %s (%d steps, seed %d)", plan.Name, len(plan.Steps), seed)

	s := seeder.New(conn, seeder.NewDataGenerator(seed), seeder.Options{
		Dedupe:   seeder.DedupeMode(cfg.Seed.Dedupe),
		DryRun:   cfg.Seed.DryRun,
		Progress: progress,
		Logger:   logger,
	})
	summary, runErr := s.Run(ctx, plan)

	if summary != nil {
		printSummary(os.Stdout, summary)
		if cfg.Seed.Report != "" {
			if err := summary.WriteFile(cfg.Seed.Report); err != nil {
				logger.Error("failed to write report", zap.Error(err))
			} else {
				color.Cyan("📝 Report written to %s", cfg.Seed.Report)
			}
		}
	}

	if runErr != nil {
		color.Red("❌ %s stopped: %v", plan.Name, runErr)
		return runErr
	}
	if summary.Totals.Failed > 0 {
		color.Yellow("⚠️  %d rows were rejected by the database", summary.Totals.Failed)
	} else {
		color.Green("✅ %s completed", plan.Name)
	}
	return nil
}

func printSummary(out io.Writer, s *seeder.Summary) {
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TABLE\tACTION\tGENERATED\tINSERTED\tFAILED\tSKIPPED\tTIME")
	fmt.Fprintln(w, "-----\t------\t---------\t--------\t------\t-------\t----")

	for _, t := range s.Tables {
		generated := fmt.Sprint(t.Generated)
		if t.Action == "preload" {
			generated = fmt.Sprintf("(read %d)", t.Fetched)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			t.Table, t.Action, generated, t.Succeeded, t.Failed, t.Skipped, t.Duration)
	}
	fmt.Fprintf(w, "%s\t\t%d\t%d\t%d\t%d\t%s\n", "TOTAL",
		s.Totals.Generated, s.Totals.Succeeded, s.Totals.Failed, s.Totals.Skipped,
		s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
	w.Flush()

	for _, t := range s.Tables {
		for _, msg := range t.Errors {
			fmt.Fprintf(out, "  %s %s\n", color.RedString(t.Table+":"), msg)
		}
	}
	fmt.Fprintln(out)
}
