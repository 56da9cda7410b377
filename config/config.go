package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"zeitblatt/internal/timeutil"
	"zeitblatt/vacation"
)

const (
	KeyTemplate       = "template"
	KeyOutputDir      = "output_dir"
	KeyLatexmkCommand = "latexmk.command"
	KeyLatexmkCompile = "latexmk.compile"
	KeyLatexmkCleanup = "latexmk.cleanup"
	KeyVacations      = "vacations"
)

type Config struct {
	Template  string          `mapstructure:"template" validate:"required"`
	OutputDir string          `mapstructure:"output_dir" validate:"required"`
	Latexmk   LatexmkConfig   `mapstructure:"latexmk"`
	Vacations []VacationEntry `mapstructure:"vacations"`
}

type LatexmkConfig struct {
	Command string `mapstructure:"command" validate:"required"`
	Compile bool   `mapstructure:"compile"`
	Cleanup bool   `mapstructure:"cleanup"`
}

// VacationEntry is a standing vacation from the config file; dates use the
// YYYY-MM-DD format.
type VacationEntry struct {
	Start     string  `mapstructure:"start"`
	End       string  `mapstructure:"end"`
	PaidHours float64 `mapstructure:"paid_hours"`
}

// Period converts the entry into a validated vacation period.
func (e VacationEntry) Period() (vacation.Period, error) {
	return vacation.ParsePeriod(fmt.Sprintf("%s:%s:%g", strings.TrimSpace(e.Start), strings.TrimSpace(e.End), e.PaidHours))
}

// Periods converts all configured vacations, preserving list order.
func (c *Config) Periods() ([]vacation.Period, error) {
	periods := make([]vacation.Period, 0, len(c.Vacations))
	for i, entry := range c.Vacations {
		period, err := entry.Period()
		if err != nil {
			return nil, fmt.Errorf("vacations[%d]: %w", i, err)
		}
		periods = append(periods, period)
	}
	return periods, nil
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# zeitblatt configuration
template: "./template.tex"
output_dir: "."

latexmk:
  command: "latexmk"
  compile: false
  cleanup: false

# Standing vacations applied to every run, same meaning as the -v flag.
# vacations:
#   - start: "2026-08-03"
#     end: "2026-08-14"
#     paid_hours: 8
vacations: []
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateVacations(cfg.Vacations); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTemplate, "./template.tex")
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyLatexmkCommand, "latexmk")
	v.SetDefault(KeyLatexmkCompile, false)
	v.SetDefault(KeyLatexmkCleanup, false)
	v.SetDefault(KeyVacations, []map[string]any{})
}

func validateVacations(entries []VacationEntry) error {
	for i, entry := range entries {
		start, err := parseConfigDate(entry.Start)
		if err != nil {
			return fmt.Errorf("validation failed: vacations[%d].start: %v", i, err)
		}
		end, err := parseConfigDate(entry.End)
		if err != nil {
			return fmt.Errorf("validation failed: vacations[%d].end: %v", i, err)
		}
		if end.Before(start) {
			return fmt.Errorf("validation failed: vacations[%d]: end must not be before start", i)
		}
		if entry.PaidHours < 0 {
			return fmt.Errorf("validation failed: vacations[%d]: paid_hours must not be negative", i)
		}
	}
	return nil
}

func parseConfigDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date is required (YYYY-MM-DD)")
	}
	parsed, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid date: %q", value)
	}
	return timeutil.Date(parsed.Year(), parsed.Month(), parsed.Day()), nil
}
