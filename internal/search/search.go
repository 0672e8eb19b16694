// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search runs the course-search pipeline: query validation, semantic
// retrieval, candidate ranking, course-code parsing, and parallel roster
// enrichment. It owns all partial-failure policy: collaborator failures are
// mapped to the error taxonomy here and never leak to the inbound API.
package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/course-search/internal/catalog"
	"github.com/pdiddy/course-search/internal/retrieval"
	"github.com/pdiddy/course-search/pkg/types"
)

// MinQueryLength is the minimum query length in runes. Shorter queries are
// rejected before any outbound call; degenerate retrieval calls are not
// worth issuing.
const MinQueryLength = 5

// ValidationError reports caller input the pipeline refused. It is
// user-correctable and safe to surface verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError wraps a retrieval or roster failure. The cause is logged
// server-side; callers see only a generic message.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// Retriever is the semantic retrieval collaborator.
type Retriever interface {
	Search(ctx context.Context, query string) ([]types.ScoredCandidate, error)
}

// Catalog is the class-roster collaborator. Lookup returns nil, nil when the
// roster has no matching course.
type Catalog interface {
	Lookup(ctx context.Context, subject, catalogNbr string) (*catalog.Class, error)
}

// Pipeline composes the retrieval and catalog collaborators into the
// search-and-enrichment flow. It is stateless across requests.
type Pipeline struct {
	Retrieval Retriever
	Catalog   Catalog
	Log       *log.Logger
}

// Search runs the full pipeline for one query and returns the ordered course
// records. The result order equals relevance order: candidates filtered to
// positive scores, stable-sorted descending by score, minus codes absent
// from the roster. It fails with *ValidationError or *UpstreamError; the
// retrieval backend's unprocessable-query classification yields an empty
// result and a nil error.
func (p *Pipeline) Search(ctx context.Context, query string) ([]types.CourseRecord, error) {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Search query must be at least %d characters long", MinQueryLength),
		}
	}

	candidates, err := p.Retrieval.Search(ctx, query)
	if err != nil {
		if errors.Is(err, retrieval.ErrUnprocessable) {
			p.logger().Debug("query classified unprocessable", "query", query)
			return []types.CourseRecord{}, nil
		}
		return nil, &UpstreamError{Stage: "retrieval", Err: err}
	}

	ranked := rankCandidates(candidates)

	codes, err := parseCandidates(ranked)
	if err != nil {
		// A malformed corpus document means the corpus and the parser have
		// drifted apart; surfacing it beats silently dropping courses.
		return nil, &UpstreamError{Stage: "parse", Err: err}
	}

	matches, err := p.lookupAll(ctx, codes)
	if err != nil {
		return nil, &UpstreamError{Stage: "catalog", Err: err}
	}

	records := make([]types.CourseRecord, 0, len(codes))
	for _, code := range codes {
		class, ok := matches[code]
		if !ok {
			p.logger().Debug("course absent from roster", "code", code.String())
			continue
		}
		records = append(records, catalog.ExtractRecord(class))
	}
	return records, nil
}

// rankCandidates keeps positive-score candidates in descending score order.
// The sort is stable so ties preserve the retrieval service's own order.
func rankCandidates(candidates []types.ScoredCandidate) []types.ScoredCandidate {
	ranked := make([]types.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score > 0 {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// parseCandidates parses each ranked candidate into a course code,
// collapsing repeated codes to their first (highest-ranked) occurrence.
func parseCandidates(ranked []types.ScoredCandidate) ([]types.CourseCode, error) {
	seen := make(map[types.CourseCode]bool, len(ranked))
	codes := make([]types.CourseCode, 0, len(ranked))
	for _, cand := range ranked {
		code, err := ParseCourseCode(cand.Text)
		if err != nil {
			return nil, fmt.Errorf("malformed corpus document: %w", err)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes, nil
}

// lookupAll fans out one roster lookup per code and joins the responses back
// by course code, never by completion order. All lookups run to completion;
// any transport failure fails the whole search.
func (p *Pipeline) lookupAll(ctx context.Context, codes []types.CourseCode) (map[types.CourseCode]catalog.Class, error) {
	type lookupResult struct {
		code  types.CourseCode
		class *catalog.Class
		err   error
	}

	ch := make(chan lookupResult, len(codes))
	var wg sync.WaitGroup
	for _, code := range codes {
		wg.Add(1)
		go func(code types.CourseCode) {
			defer wg.Done()
			class, err := p.Catalog.Lookup(ctx, code.Subject, code.Number)
			ch <- lookupResult{code: code, class: class, err: err}
		}(code)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	matches := make(map[types.CourseCode]catalog.Class, len(codes))
	var firstErr error
	for r := range ch {
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", r.code, r.err)
			}
			continue
		}
		if r.class != nil {
			matches[r.code] = *r.class
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return matches, nil
}

func (p *Pipeline) logger() *log.Logger {
	if p.Log != nil {
		return p.Log
	}
	return log.Default()
}
