package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zeitblatt/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  zeitblatt config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file found, using built-in defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("template: %s\n", cfg.Template)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("latexmk.command: %s\n", cfg.Latexmk.Command)
		fmt.Printf("latexmk.compile: %t\n", cfg.Latexmk.Compile)
		fmt.Printf("latexmk.cleanup: %t\n", cfg.Latexmk.Cleanup)
		fmt.Printf("vacations: %d\n", len(cfg.Vacations))
		for i, entry := range cfg.Vacations {
			fmt.Printf("vacations[%d].start: %s\n", i, entry.Start)
			fmt.Printf("vacations[%d].end: %s\n", i, entry.End)
			fmt.Printf("vacations[%d].paid_hours: %g\n", i, entry.PaidHours)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
