// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/course-search/pkg/types"
)

// ExtractRecord converts one raw roster class into the normalized output
// record. It is pure and never fails: absent or ragged nested data degrades
// to empty fields. Grading, credits, and instructors come from the first
// enrollment group.
func ExtractRecord(class Class) types.CourseRecord {
	rec := types.CourseRecord{
		Subject:      class.Subject,
		CatalogNbr:   class.CatalogNbr,
		Title:        class.TitleLong,
		Description:  class.Description,
		Offered:      class.CatalogWhenOffered,
		AcadGroup:    class.AcadGroup,
		Distribution: class.CatalogAttribute,
		Requisites:   class.CatalogPrereqCoreq,
	}
	if len(class.EnrollGroups) == 0 {
		return rec
	}

	eg := class.EnrollGroups[0]
	rec.Credits = FormatCredits(eg.UnitsMinimum, eg.UnitsMaximum)
	rec.Grading = eg.GradingBasisLong
	rec.Instructors = strings.Join(InstructorNames(eg), ", ")
	return rec
}

// InstructorNames collects "First Last (netid)" identities across every
// meeting of every section in the enrollment group, deduplicated by the
// composed string in first-seen order. Sections without meeting data
// contribute nothing.
func InstructorNames(eg EnrollGroup) []string {
	seen := make(map[string]bool)
	var names []string
	for _, section := range eg.ClassSections {
		for _, meeting := range section.Meetings {
			for _, ins := range meeting.Instructors {
				name := fmt.Sprintf("%s %s (%s)", ins.FirstName, ins.LastName, ins.NetID)
				if seen[name] {
					continue
				}
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// FormatCredits renders the credit range, collapsing equal bounds to a
// single value: (3, 3) renders as "3" and (1, 4) as "1-4".
func FormatCredits(min, max float64) string {
	if min == max {
		return formatUnits(max)
	}
	return formatUnits(min) + "-" + formatUnits(max)
}

func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
