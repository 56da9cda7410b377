// Package report orchestrates the pipeline from normalized entries to the
// two monthly timesheet documents.
package report

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"zeitblatt/latexmk"
	"zeitblatt/output"
	"zeitblatt/vacation"
	"zeitblatt/worklog"
)

// ErrNoWorkTimes is returned when the selected date range covers no entries.
var ErrNoWorkTimes = errors.New("no work times found in the selected date range")

type Options struct {
	Entries   []worklog.Entry
	StartDate time.Time
	Vacations []vacation.Period
	Template  string // template text, already loaded
	OutputDir string
	Compile   bool
	Cleanup   bool
	Runner    *latexmk.Runner
	Logger    zerolog.Logger
}

type Result struct {
	Bounds worklog.DateRange
	Days   int      // distinct working days in range
	Files  []string // written .tex documents, in generation order
}

type document struct {
	name    string
	content string
}

// Run aggregates the entries over the billing period derived from the start
// date and generates one document for each of the two boundary months. All
// documents are rendered in memory before the first file is written, so a
// failing month leaves nothing behind. PDF compilation, when requested, runs
// sequentially after all documents exist and halts on the first failure.
func Run(ctx context.Context, options Options) (*Result, error) {
	bounds, err := worklog.NewDateRange(options.StartDate)
	if err != nil {
		return nil, err
	}

	records := worklog.Aggregate(options.Entries, &bounds)
	if len(records) == 0 {
		return nil, ErrNoWorkTimes
	}
	options.Logger.Info().
		Int("days", len(records)).
		Str("from", bounds.Start.Format("2006-01-02")).
		Str("to", bounds.End.Format("2006-01-02")).
		Msg("aggregated work times")

	months := []struct {
		year  int
		month time.Month
		tag   string
	}{
		{year: bounds.Start.Year(), month: bounds.Start.Month(), tag: output.TagEnde},
		{year: bounds.End.Year(), month: bounds.End.Month(), tag: output.TagAnfang},
	}

	documents := make([]document, 0, len(months))
	for _, target := range months {
		rows, err := output.BuildMonthRows(records, target.year, target.month, options.Vacations)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document{
			name:    output.DocumentName(target.year, target.month, target.tag),
			content: output.FillTemplate(options.Template, output.TableContent(rows), bounds.End),
		})
	}

	result := &Result{Bounds: bounds, Days: len(records), Files: make([]string, 0, len(documents))}
	for _, doc := range documents {
		path := filepath.Join(options.OutputDir, doc.name)
		if err := output.WriteDocument(path, doc.content); err != nil {
			return nil, err
		}
		options.Logger.Info().Str("file", path).Msg("wrote timesheet document")
		result.Files = append(result.Files, path)
	}

	if options.Compile {
		runner := options.Runner
		if runner == nil {
			runner = &latexmk.Runner{Dir: options.OutputDir, Logger: options.Logger}
		}
		for _, file := range result.Files {
			if err := runner.Compile(ctx, filepath.Base(file)); err != nil {
				return nil, err
			}
		}
		if options.Cleanup {
			if err := runner.Cleanup(ctx); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}
