package output

import (
	"fmt"
	"strings"

	"zeitblatt/internal/timeutil"
)

// TableContent renders rows into the LaTeX table body. The line formats and
// the \weekend, \vacation and \nosum macros are fixed by the template.
func TableContent(rows []Row) string {
	var builder strings.Builder
	for _, row := range rows {
		if row.Weekend {
			builder.WriteString("\\weekend%\n")
		}
		switch row.Kind {
		case RowWork:
			builder.WriteString(fmt.Sprintf("%d & %s & %s & %s & %s & \\\\\\hline \n",
				row.Day,
				timeutil.FormatClock(row.Start),
				timeutil.FormatClock(row.End),
				timeutil.FormatClock(row.Pause),
				timeutil.FormatDuration(row.Total)))
		case RowVacation:
			builder.WriteString(fmt.Sprintf("%d & \\vacation{%s} \\\\ \\hline \n",
				row.Day,
				timeutil.FormatDuration(row.Total)))
		default:
			builder.WriteString(fmt.Sprintf("%d & & & & \\nosum{} & \\\\ \\hline \n", row.Day))
		}
	}
	return builder.String()
}
