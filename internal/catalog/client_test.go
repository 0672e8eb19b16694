// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/course-search/pkg/types"
)

func testClient(ts *httptest.Server) *Client {
	return &Client{
		HTTP:   ts.Client(),
		Config: types.CatalogConfig{Roster: "FA21"},
	}
}

func swapAPIBase(t *testing.T, url string) {
	t.Helper()
	old := apiBase
	apiBase = url
	t.Cleanup(func() { apiBase = old })
}

const twoClassBody = `{"status":"success","data":{"classes":[
	{"subject":"CS","catalogNbr":"2110","titleLong":"OOP and Data Structures"},
	{"subject":"CS","catalogNbr":"2112","titleLong":"Honors OOP"}
]}}`

func TestLookupRequestParams(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, twoClassBody)
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	if _, err := testClient(ts).Lookup(context.Background(), "CS", "2110"); err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	q := capturedReq.URL.Query()
	if got := q.Get("roster"); got != "FA21" {
		t.Errorf("roster param = %q, want %q", got, "FA21")
	}
	if got := q.Get("subject"); got != "CS" {
		t.Errorf("subject param = %q, want %q", got, "CS")
	}
	if got := q.Get("q"); got != "2110" {
		t.Errorf("q param = %q, want %q", got, "2110")
	}
}

func TestLookupExactMatchOnly(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, twoClassBody)
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	class, err := testClient(ts).Lookup(context.Background(), "CS", "2112")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if class == nil || class.CatalogNbr != "2112" {
		t.Errorf("got %+v, want the exact CS 2112 entry", class)
	}
}

func TestLookupAbsentCourseIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":{"classes":[]}}`)
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	class, err := testClient(ts).Lookup(context.Background(), "CS", "9999")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if class != nil {
		t.Errorf("got %+v, want nil for an absent course", class)
	}
}

func TestLookupErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
	}{
		{"transport-level failure", http.StatusInternalServerError, "boom"},
		{"API-level error status", http.StatusOK, `{"status":"error","message":"invalid subject"}`},
		{"malformed body", http.StatusOK, `{"status":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()
			swapAPIBase(t, ts.URL)

			if _, err := testClient(ts).Lookup(context.Background(), "XX", "1000"); err == nil {
				t.Error("Lookup succeeded, want error")
			}
		})
	}
}

func TestSubjects(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/config/subjects.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":{"subjects":[
			{"value":"CS","descr":"Computer Science","descrformal":"Computer Science"},
			{"value":"MATH","descr":"Mathematics","descrformal":"Mathematics"}
		]}}`)
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	subjects, err := testClient(ts).Subjects(context.Background())
	if err != nil {
		t.Fatalf("Subjects: %v", err)
	}
	if len(subjects) != 2 || subjects[0].Value != "CS" {
		t.Errorf("subjects = %+v", subjects)
	}
}

func TestAcadGroups(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/config/acadGroups.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":{"acadGroups":[
			{"value":"EN","descr":"Engineering"},
			{"value":"AS","descr":"Arts and Sciences"}
		]}}`)
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	groups, err := testClient(ts).AcadGroups(context.Background())
	if err != nil {
		t.Fatalf("AcadGroups: %v", err)
	}
	if groups["EN"] != "Engineering" || groups["AS"] != "Arts and Sciences" {
		t.Errorf("groups = %v", groups)
	}
}
