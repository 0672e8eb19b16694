// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog queries the institutional class-roster API for structured
// course data and extracts normalized course records from it.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/course-search/internal/httputil"
	"github.com/pdiddy/course-search/pkg/types"
)

// apiBase is the class-roster API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://classes.cornell.edu/api/2.0"

// Client issues lookups against the class-roster API for the configured
// academic term.
type Client struct {
	HTTP   *http.Client
	Config types.CatalogConfig

	// RetryOn429 routes requests through exponential-backoff retry. Enabled
	// for the corpus builder's bulk enumeration; the live pipeline leaves it
	// off and fails on the first transport error.
	RetryOn429 bool

	// BaseURL overrides the roster API root when set.
	BaseURL string
}

// Lookup fetches the classes matching catalogNbr within subject and returns
// the exact (subject, catalogNbr) match. It returns nil, nil when the roster
// lists no such course; the catalog and retrieval corpora may drift.
func (c *Client) Lookup(ctx context.Context, subject, catalogNbr string) (*Class, error) {
	classes, err := c.searchClasses(ctx, subject, catalogNbr)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if classes[i].Subject == subject && classes[i].CatalogNbr == catalogNbr {
			return &classes[i], nil
		}
	}
	return nil, nil
}

// CoursesBySubject returns every class listed under subject for the
// configured roster.
func (c *Client) CoursesBySubject(ctx context.Context, subject string) ([]Class, error) {
	return c.searchClasses(ctx, subject, "")
}

// Subjects returns the subject list for the configured roster.
func (c *Client) Subjects(ctx context.Context) ([]Subject, error) {
	var cr configResponse
	if err := c.get(ctx, "/config/subjects.json", nil, &cr); err != nil {
		return nil, fmt.Errorf("fetching subjects: %w", err)
	}
	if cr.Status != statusSuccess {
		return nil, fmt.Errorf("subjects request failed: %s", cr.Message)
	}
	return cr.Data.Subjects, nil
}

// AcadGroups returns the academic groups (colleges) for the configured
// roster, keyed by short code.
func (c *Client) AcadGroups(ctx context.Context) (map[string]string, error) {
	var cr configResponse
	if err := c.get(ctx, "/config/acadGroups.json", nil, &cr); err != nil {
		return nil, fmt.Errorf("fetching academic groups: %w", err)
	}
	if cr.Status != statusSuccess {
		return nil, fmt.Errorf("academic groups request failed: %s", cr.Message)
	}
	groups := make(map[string]string, len(cr.Data.AcadGroups))
	for _, g := range cr.Data.AcadGroups {
		groups[g.Value] = g.Descr
	}
	return groups, nil
}

func (c *Client) searchClasses(ctx context.Context, subject, q string) ([]Class, error) {
	params := url.Values{"subject": {subject}}
	if q != "" {
		params.Set("q", q)
	}
	var sr classSearchResponse
	if err := c.get(ctx, "/search/classes.json", params, &sr); err != nil {
		return nil, fmt.Errorf("fetching classes for %s: %w", subject, err)
	}
	if sr.Status != statusSuccess {
		return nil, fmt.Errorf("class search for %s failed: %s", subject, sr.Message)
	}
	return sr.Data.Classes, nil
}

// get issues one GET against the roster API and decodes the JSON body into
// out. The roster term is appended to every request.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("roster", c.Config.Roster)
	base := c.BaseURL
	if base == "" {
		base = apiBase
	}
	reqURL := base + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	var resp *http.Response
	if c.RetryOn429 {
		resp, err = httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	} else {
		resp, err = c.HTTP.Do(req)
	}
	if err != nil {
		return fmt.Errorf("roster API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("roster API returned HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing roster API response: %w", err)
	}
	return nil
}

const statusSuccess = "success"

// Roster API JSON structures. Exported because the corpus builder consumes
// the same shapes during bulk enumeration.
type classSearchResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Classes []Class `json:"classes"`
	} `json:"data"`
}

type configResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Subjects   []Subject   `json:"subjects"`
		AcadGroups []acadGroup `json:"acadGroups"`
	} `json:"data"`
}

// Class is one course offering within a roster.
type Class struct {
	Subject            string        `json:"subject"`
	CatalogNbr         string        `json:"catalogNbr"`
	TitleLong          string        `json:"titleLong"`
	Description        string        `json:"description"`
	CatalogWhenOffered string        `json:"catalogWhenOffered"`
	CatalogPrereqCoreq string        `json:"catalogPrereqCoreq"`
	CatalogAttribute   string        `json:"catalogAttribute"`
	AcadGroup          string        `json:"acadGroup"`
	EnrollGroups       []EnrollGroup `json:"enrollGroups"`
}

// EnrollGroup groups class sections sharing grading and credit policy.
type EnrollGroup struct {
	UnitsMinimum     float64        `json:"unitsMinimum"`
	UnitsMaximum     float64        `json:"unitsMaximum"`
	GradingBasis     string         `json:"gradingBasis"`
	GradingBasisLong string         `json:"gradingBasisLong"`
	SessionLong      string         `json:"sessionLong"`
	ClassSections    []ClassSection `json:"classSections"`
}

// ClassSection is one section of an enrollment group.
type ClassSection struct {
	Meetings []Meeting `json:"meetings"`
}

// Meeting is one scheduled meeting of a class section.
type Meeting struct {
	Instructors []Instructor `json:"instructors"`
}

// Instructor identifies one teaching staff member.
type Instructor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	NetID     string `json:"netid"`
}

// Subject is one department entry from the roster configuration.
type Subject struct {
	Value       string `json:"value"`
	Descr       string `json:"descr"`
	DescrFormal string `json:"descrformal"`
}

type acadGroup struct {
	Value string `json:"value"`
	Descr string `json:"descr"`
}
