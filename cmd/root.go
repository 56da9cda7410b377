package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zeitblatt/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zeitblatt",
	Short: "Create monthly LaTeX timesheet tables from Clockify work-time exports.",
	Long: `zeitblatt reads a Clockify work-time export (CSV or Excel) and generates two
monthly LaTeX timesheet tables: one closing the month the billing period
starts in ("Ende"), one opening the month it ends in ("Anfang"). With latexmk
installed, the documents can be compiled to PDF in the same run.

Work sessions on the same day are merged (first start time, summed duration)
and rounded to quarter hours. Vacation periods render a fixed paid-hours
credit per working day.`,
	Example: `
  # Create configuration file
  zeitblatt config create

  # Generate both timesheets for the period starting December 15th
  zeitblatt generate -i clockify-export.csv --start 2000-12-15

  # Generate, compile to PDF and remove auxiliary files
  zeitblatt generate -i clockify-export.csv --start 2000-12-15 -p -c

  # Schedule a vacation with 8 paid hours per day
  zeitblatt generate -i clockify-export.csv --start 2000-12-15 -v 2000-12-27:2000-12-29:8
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.zeitblatt.yaml, then ./.zeitblatt.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".zeitblatt" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".zeitblatt")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine; the defaults cover everything.
	_ = viper.ReadInConfig()
}

func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
