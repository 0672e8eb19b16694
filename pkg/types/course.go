// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the course-search pipeline.
package types

// ScoredCandidate is one document returned by the retrieval service for a
// query, with its relevance score. Candidates are request-scoped; only
// candidates with a positive score take part in the pipeline.
type ScoredCandidate struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// CourseCode identifies a course by uppercase department code and catalog
// number (e.g. CS 2110). It is derived from the leading "<SUBJECT> <NUMBER>:"
// segment of a corpus document.
type CourseCode struct {
	Subject string `json:"subject"`
	Number  string `json:"number"`
}

func (c CourseCode) String() string { return c.Subject + " " + c.Number }

// CourseRecord is the enriched output unit returned to API callers. Field
// names follow the roster API's casing where the value is a passthrough.
type CourseRecord struct {
	Subject     string `json:"subject"`
	CatalogNbr  string `json:"catalogNbr"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Credits is a single value ("3") or a range ("1-4").
	Credits string `json:"credits"`

	Offered      string `json:"offered"`
	AcadGroup    string `json:"acadGroup"`
	Distribution string `json:"distribution"`

	// Instructors joins unique "First Last (netid)" identities with ", ".
	Instructors string `json:"instructors"`

	Grading    string `json:"grading"`
	Requisites string `json:"requisites"`
}
