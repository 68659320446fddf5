package cmd

import (
	"fmt"
	"os"

	"github.com/Rana718/fleetseed/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "fleetseed",
	Short: "Fill the fleet and booking schema with fake data",
	Long: `
fleetseed populates a MySQL fleet/booking database with realistic fake rows.

Parent tables are generated before their children and every foreign key is
drawn from identifiers generated (or read back) earlier in the same run.

Commands:
- populate      generate the full schema from scratch
- fill-missing  add billing invoices, scheduled trips and vehicle categories
                on top of existing customers, bookings, stops and staff
- plan          show the generation order without touching the database
- status        count the rows currently in each table

Connection settings come from HOST, USER, PASSWORD, DATABASE and PORT
(or FLEETSEED_DATABASE_*), optionally loaded from .env.`,
	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("fleetseed version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./fleetseed.config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("log.format", flags.Lookup("log-format"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("fleetseed.config")
	}

	config.SetDefaults(viper.GetViper())
	if err := config.BindEnv(viper.GetViper()); err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			color.Red("❌ Failed to read config file: %v", err)
			os.Exit(1)
		}
	}
}
