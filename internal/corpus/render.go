// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"

	"github.com/pdiddy/course-search/internal/catalog"
)

// RenderLine produces the indexable text document for one course row. The
// leading "<SUBJECT> <NUMBER>:" segment is load-bearing: the live pipeline
// parses course codes back out of retrieved documents by that convention,
// so any change here must keep the prefix intact.
func RenderLine(row CourseRow) string {
	credits := catalog.FormatCredits(row.CreditsMin, row.CreditsMax)
	return fmt.Sprintf(
		"%s %s: %s. %s. %s. Offered in %s. %s (%s). Grading is %s (%s). Available in %s %s credits. %s. Instructors %s",
		row.Subject, row.CatalogNbr, row.Title, row.SubjectLong, row.Description,
		row.Offered, row.AcadGroupLong, row.AcadGroup, row.GradingLong,
		row.GradingShort, row.Session, credits, row.Attribute, row.Instructors,
	)
}
