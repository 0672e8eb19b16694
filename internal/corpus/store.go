// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus builds the course corpus consumed by the retrieval
// service's indexer: a SQLite snapshot of one roster plus a JSONL export of
// one text document per course.
package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "catalog.db"

// CourseRow is one scraped course in the snapshot, keyed by
// (subject, catalog_nbr) within the roster.
type CourseRow struct {
	Subject       string
	CatalogNbr    string
	SubjectLong   string
	Title         string
	Description   string
	Offered       string
	AcadGroup     string
	AcadGroupLong string
	GradingShort  string
	GradingLong   string
	Session       string
	CreditsMin    float64
	CreditsMax    float64
	Attribute     string
	Instructors   string
	ScrapedAt     time.Time
}

// Store manages the roster snapshot SQLite database. Rebuilds re-upsert
// rows, so an interrupted scrape can be resumed without starting over.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the snapshot database at dir/catalog.db and
// creates the schema if it does not exist.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating corpus directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			subject TEXT NOT NULL,
			catalog_nbr TEXT NOT NULL,
			subject_long TEXT,
			title TEXT,
			description TEXT,
			offered TEXT,
			acad_group TEXT,
			acad_group_long TEXT,
			grading_short TEXT,
			grading_long TEXT,
			session TEXT,
			credits_min REAL,
			credits_max REAL,
			attribute TEXT,
			instructors TEXT,
			scraped_at TEXT,
			PRIMARY KEY (subject, catalog_nbr)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_acad_group ON courses(acad_group)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Upsert inserts or replaces one course row.
func (s *Store) Upsert(ctx context.Context, row CourseRow) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO courses (
			subject, catalog_nbr, subject_long, title, description, offered,
			acad_group, acad_group_long, grading_short, grading_long, session,
			credits_min, credits_max, attribute, instructors, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (subject, catalog_nbr) DO UPDATE SET
			subject_long = excluded.subject_long,
			title = excluded.title,
			description = excluded.description,
			offered = excluded.offered,
			acad_group = excluded.acad_group,
			acad_group_long = excluded.acad_group_long,
			grading_short = excluded.grading_short,
			grading_long = excluded.grading_long,
			session = excluded.session,
			credits_min = excluded.credits_min,
			credits_max = excluded.credits_max,
			attribute = excluded.attribute,
			instructors = excluded.instructors,
			scraped_at = excluded.scraped_at`,
		row.Subject, row.CatalogNbr, row.SubjectLong, row.Title, row.Description,
		row.Offered, row.AcadGroup, row.AcadGroupLong, row.GradingShort,
		row.GradingLong, row.Session, row.CreditsMin, row.CreditsMax,
		row.Attribute, row.Instructors, row.ScrapedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting %s %s: %w", row.Subject, row.CatalogNbr, err)
	}
	return nil
}

// All returns every stored course ordered by subject then catalog number.
func (s *Store) All(ctx context.Context) ([]CourseRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, catalog_nbr, subject_long, title, description, offered,
			acad_group, acad_group_long, grading_short, grading_long, session,
			credits_min, credits_max, attribute, instructors, scraped_at
		FROM courses
		ORDER BY subject, catalog_nbr`)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var out []CourseRow
	for rows.Next() {
		var r CourseRow
		var scrapedAt string
		if err := rows.Scan(
			&r.Subject, &r.CatalogNbr, &r.SubjectLong, &r.Title, &r.Description,
			&r.Offered, &r.AcadGroup, &r.AcadGroupLong, &r.GradingShort,
			&r.GradingLong, &r.Session, &r.CreditsMin, &r.CreditsMax,
			&r.Attribute, &r.Instructors, &scrapedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, scrapedAt); parseErr == nil {
			r.ScrapedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of stored courses.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}
