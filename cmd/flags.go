package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rana718/fleetseed/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addSeedFlags registers the flags shared by the commands that build a plan.
func addSeedFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSlice("tables", nil, "only these tables (comma separated)")
	flags.Bool("with-parents", false, "also run the tables the selected ones depend on")
	flags.StringArray("count", nil, "row count override as table=n (repeatable)")
	flags.Int64("seed", 0, "random seed, 0 picks one")
	flags.String("dedupe", "tuple", "row uniqueness: tuple (whole row) or key (primary key)")
	flags.Bool("dry-run", false, "generate rows without inserting them")
	flags.String("report", "", "write the run summary as YAML to this file")
	flags.Bool("no-progress", false, "hide progress bars")
}

// loadConfig reads the configuration and applies the command's flags over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	for key, name := range map[string]string{
		"seed.tables":       "tables",
		"seed.with_parents": "with-parents",
		"seed.random_seed":  "seed",
		"seed.dedupe":       "dedupe",
		"seed.dry_run":      "dry-run",
		"seed.report":       "report",
	} {
		if f := flags.Lookup(name); f != nil && f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f := flags.Lookup("count"); f != nil && f.Changed {
		pairs, _ := flags.GetStringArray("count")
		counts, err := parseCounts(pairs)
		if err != nil {
			return nil, err
		}
		if cfg.Seed.Counts == nil {
			cfg.Seed.Counts = map[string]int{}
		}
		for table, n := range counts {
			cfg.Seed.Counts[table] = n
		}
	}
	if noProgress, _ := flags.GetBool("no-progress"); noProgress {
		cfg.Seed.Progress = false
	}
	return cfg, nil
}

// parseCounts turns "table=n" pairs into a map. Later pairs win.
func parseCounts(pairs []string) (map[string]int, error) {
	counts := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		table, value, ok := strings.Cut(pair, "=")
		table = strings.TrimSpace(table)
		if !ok || table == "" {
			return nil, fmt.Errorf("%w: count %q is not table=n", config.ErrInvalidConfig, pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: count for %s: %v", config.ErrInvalidConfig, table, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative count %d for %s", config.ErrInvalidConfig, n, table)
		}
		counts[table] = n
	}
	return counts, nil
}
