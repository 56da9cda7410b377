package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zeitblatt/config"
	"zeitblatt/importer"
	"zeitblatt/internal/timeutil"
	"zeitblatt/latexmk"
	"zeitblatt/report"
	"zeitblatt/vacation"
)

var (
	generateInputs    []string
	generateFormat    string
	generateStart     string
	generatePDF       bool
	generateCleanup   bool
	generateVacations []string
	generateTemplate  string
	generateOutputDir string
	generateQuiet     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the two monthly timesheet documents from a work-time export",
	Long: `Read one or more Clockify exports, aggregate work sessions per day over the
billing period starting at --start, and write one LaTeX document per boundary
month.

The billing period ends one calendar month after the start date, minus one
day (2000-12-15 runs until 2001-01-14). Work recorded during a vacation
period aborts the run; a run without any work times in the period writes no
files at all.`,
	Example: `
  # Generate Zeiterfassung_2000-12_Ende.tex and Zeiterfassung_2001-01_Anfang.tex
  zeitblatt generate -i clockify-export.csv --start 2000-12-15

  # Excel export, compile to PDF, clean auxiliary files afterwards
  zeitblatt generate -i clockify-export.xlsx --start 2000-12-15 -p -c

  # Two vacations, custom template and output directory
  zeitblatt generate -i export.csv --start 2026-08-17 \
    -v 2026-08-24:2026-08-28:8 -v 2026-09-07:2026-09-08:7.5 \
    --template ./template.tex --output-dir ./out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		startDate, err := parseStartDate(generateStart)
		if err != nil {
			return err
		}

		vacations, err := collectVacations(cfg, generateVacations)
		if err != nil {
			return err
		}

		templatePath := firstNonEmpty(generateTemplate, cfg.Template)
		templateText, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("read template %s: %w", templatePath, err)
		}

		outputDir := firstNonEmpty(generateOutputDir, cfg.OutputDir)

		compile := generatePDF || cfg.Latexmk.Compile
		cleanup := generateCleanup || cfg.Latexmk.Cleanup
		if cleanup && !compile {
			return fmt.Errorf("cleanup (-c) requires PDF generation (-p)")
		}

		logger := newLogger(generateQuiet)
		runner := &latexmk.Runner{Command: cfg.Latexmk.Command, Dir: outputDir, Logger: logger}
		if compile && !runner.Available() {
			return fmt.Errorf("PDF generation (-p) requires %s to be installed", cfg.Latexmk.Command)
		}

		mapper, err := importer.MapperByName("clockify")
		if err != nil {
			return err
		}

		imported, err := importer.Run(generateInputs, generateFormat, mapper)
		if err != nil {
			return err
		}

		result, err := report.Run(cmd.Context(), report.Options{
			Entries:   imported.Entries,
			StartDate: startDate,
			Vacations: vacations,
			Template:  string(templateText),
			OutputDir: outputDir,
			Compile:   compile,
			Cleanup:   cleanup,
			Runner:    runner,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Generate completed. Rows read: %d, Working days: %d, Range: %s to %s, Files: %s\n",
			imported.RowsRead,
			result.Days,
			result.Bounds.Start.Format("2006-01-02"),
			result.Bounds.End.Format("2006-01-02"),
			strings.Join(result.Files, ", "),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringArrayVarP(&generateInputs, "input", "i", nil, "Input export file (repeatable)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	generateCmd.Flags().StringVar(&generateStart, "start", "", "Start date of the billing period, format YYYY-MM-DD")
	generateCmd.Flags().BoolVarP(&generatePDF, "pdf", "p", false, "Compile the generated documents with latexmk")
	generateCmd.Flags().BoolVarP(&generateCleanup, "cleanup", "c", false, "Remove LaTeX auxiliary files after compilation (requires -p)")
	generateCmd.Flags().StringArrayVarP(&generateVacations, "vacation", "v", nil, "Vacation period as YYYY-MM-DD:YYYY-MM-DD:hh (repeatable)")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "LaTeX template file (overrides config)")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "Directory for the generated documents (overrides config)")
	generateCmd.Flags().BoolVar(&generateQuiet, "quiet", false, "Only log warnings and errors")

	_ = generateCmd.MarkFlagRequired("input")
	_ = generateCmd.MarkFlagRequired("start")
}

func parseStartDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid start date %q (expected YYYY-MM-DD)", value)
	}
	return timeutil.Date(parsed.Year(), parsed.Month(), parsed.Day()), nil
}

// collectVacations merges standing vacations from the config with the -v
// flags, config entries first. Overlaps stay as supplied; lookup is
// first-match.
func collectVacations(cfg *config.Config, specs []string) ([]vacation.Period, error) {
	periods, err := cfg.Periods()
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		period, err := vacation.ParsePeriod(spec)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}
	return periods, nil
}
