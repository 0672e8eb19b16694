// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/course-search/internal/catalog"
)

// Builder scrapes every subject of the configured roster into the snapshot
// store. It shares the roster client with the live pipeline but runs with
// 429 retries enabled; this is a batch job, not a request path.
type Builder struct {
	Catalog *catalog.Client
	Store   *Store
	Log     *log.Logger
}

// BuildSummary holds counts from one scrape run.
type BuildSummary struct {
	Subjects int
	Courses  int
	Failed   int
}

// Build enumerates subjects and academic groups, then fetches and upserts
// every course per subject. A failed subject is logged and skipped; the
// scrape continues so a transient failure does not cost the whole run.
func (b *Builder) Build(ctx context.Context) (BuildSummary, error) {
	subjects, err := b.Catalog.Subjects(ctx)
	if err != nil {
		return BuildSummary{}, err
	}
	groups, err := b.Catalog.AcadGroups(ctx)
	if err != nil {
		return BuildSummary{}, err
	}

	var summary BuildSummary
	for _, subject := range subjects {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		classes, err := b.Catalog.CoursesBySubject(ctx, subject.Value)
		if err != nil {
			b.Log.Warn("subject scrape failed", "subject", subject.Value, "error", err)
			summary.Failed++
			continue
		}

		for _, class := range classes {
			row := rowFromClass(class, subject.DescrFormal, groups[class.AcadGroup])
			if err := b.Store.Upsert(ctx, row); err != nil {
				return summary, err
			}
			summary.Courses++
		}
		summary.Subjects++
		b.Log.Debug("subject scraped", "subject", subject.Value, "courses", len(classes))
	}
	return summary, nil
}

// rowFromClass flattens one roster class into a snapshot row. Grading,
// session, and credits come from the first enrollment group; a class with
// no enrollment groups still gets a row with those fields empty.
func rowFromClass(class catalog.Class, subjectLong, acadGroupLong string) CourseRow {
	row := CourseRow{
		Subject:       class.Subject,
		CatalogNbr:    class.CatalogNbr,
		SubjectLong:   subjectLong,
		Title:         class.TitleLong,
		Description:   class.Description,
		Offered:       class.CatalogWhenOffered,
		AcadGroup:     class.AcadGroup,
		AcadGroupLong: acadGroupLong,
		Attribute:     class.CatalogAttribute,
		ScrapedAt:     time.Now(),
	}
	if len(class.EnrollGroups) == 0 {
		return row
	}

	eg := class.EnrollGroups[0]
	row.GradingShort = eg.GradingBasis
	row.GradingLong = eg.GradingBasisLong
	row.Session = eg.SessionLong
	row.CreditsMin = eg.UnitsMinimum
	row.CreditsMax = eg.UnitsMaximum
	row.Instructors = strings.Join(catalog.InstructorNames(eg), ", ")
	return row
}

// String renders the summary for CLI output.
func (s BuildSummary) String() string {
	return fmt.Sprintf("%d subjects, %d courses, %d failed", s.Subjects, s.Courses, s.Failed)
}
