package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage zeitblatt configuration file values.",
	Long: `Create, edit and display the zeitblatt configuration file.

The configuration stores application-wide values:
- template (LaTeX template path)
- output_dir
- latexmk.command / latexmk.compile / latexmk.cleanup
- vacations[].start / end / paid_hours`,
	Example: `
  # Create default config in $HOME/.zeitblatt.yaml
  zeitblatt config create

  # Show active config and source file
  zeitblatt config show

  # Open active config in editor (creates example if missing)
  zeitblatt config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
