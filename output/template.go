package output

import (
	"strings"
	"time"

	"zeitblatt/internal/timeutil"
)

// The template is opaque text supplied by the user; only these two markers
// are substituted.
const (
	placeholderIssueDate = "%placeholder_1%"
	placeholderTableBody = "%placeholder_2%"
)

// FillTemplate substitutes the issue date and the table body into the
// template text.
func FillTemplate(template, tableContent string, issueDate time.Time) string {
	filled := strings.ReplaceAll(template, placeholderIssueDate, timeutil.FormatDate(issueDate))
	filled = strings.ReplaceAll(filled, placeholderTableBody, tableContent)
	return filled
}
