// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"testing"
)

func TestFormatCredits(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
		want string
	}{
		{"equal bounds", 3, 3, "3"},
		{"range", 1, 4, "1-4"},
		{"fractional", 1.5, 1.5, "1.5"},
		{"fractional range", 0.5, 2, "0.5-2"},
		{"zero", 0, 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCredits(tt.min, tt.max); got != tt.want {
				t.Errorf("FormatCredits(%v, %v) = %q, want %q", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestInstructorNamesDedup(t *testing.T) {
	gries := Instructor{FirstName: "David", LastName: "Gries", NetID: "djg17"}
	clarkson := Instructor{FirstName: "Michael", LastName: "Clarkson", NetID: "mrc26"}

	eg := EnrollGroup{ClassSections: []ClassSection{
		{Meetings: []Meeting{
			{Instructors: []Instructor{gries, clarkson}},
			{Instructors: []Instructor{gries}},
		}},
		{Meetings: []Meeting{
			{Instructors: []Instructor{clarkson}},
		}},
	}}

	got := InstructorNames(eg)
	want := []string{"David Gries (djg17)", "Michael Clarkson (mrc26)"}
	if len(got) != len(want) {
		t.Fatalf("got %d names %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInstructorNamesDedupByComposedString(t *testing.T) {
	// Same netid but different display name counts as two identities.
	eg := EnrollGroup{ClassSections: []ClassSection{
		{Meetings: []Meeting{
			{Instructors: []Instructor{
				{FirstName: "David", LastName: "Gries", NetID: "djg17"},
				{FirstName: "D.", LastName: "Gries", NetID: "djg17"},
			}},
		}},
	}}
	if got := InstructorNames(eg); len(got) != 2 {
		t.Errorf("got %v, want 2 distinct identities", got)
	}
}

func TestInstructorNamesEmptySections(t *testing.T) {
	eg := EnrollGroup{ClassSections: []ClassSection{
		{},
		{Meetings: []Meeting{{}}},
	}}
	if got := InstructorNames(eg); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestExtractRecord(t *testing.T) {
	class := Class{
		Subject:            "CS",
		CatalogNbr:         "2110",
		TitleLong:          "Object-Oriented Programming and Data Structures",
		Description:        "Intermediate programming in a high-level language.",
		CatalogWhenOffered: "Fall, Spring, Summer.",
		CatalogPrereqCoreq: "Prerequisite: CS 1110 or CS 1112.",
		CatalogAttribute:   "(MQR-AS)",
		AcadGroup:          "EN",
		EnrollGroups: []EnrollGroup{
			{
				UnitsMinimum:     4,
				UnitsMaximum:     4,
				GradingBasisLong: "Student Option",
				ClassSections: []ClassSection{
					{Meetings: []Meeting{
						{Instructors: []Instructor{{FirstName: "David", LastName: "Gries", NetID: "djg17"}}},
					}},
				},
			},
			// A second enrollment group must not contribute anything.
			{UnitsMinimum: 1, UnitsMaximum: 1, GradingBasisLong: "Audit"},
		},
	}

	rec := ExtractRecord(class)

	if rec.Subject != "CS" || rec.CatalogNbr != "2110" {
		t.Errorf("code = %s %s, want CS 2110", rec.Subject, rec.CatalogNbr)
	}
	if rec.Title != class.TitleLong {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Credits != "4" {
		t.Errorf("credits = %q, want %q", rec.Credits, "4")
	}
	if rec.Grading != "Student Option" {
		t.Errorf("grading = %q, want first enrollment group's", rec.Grading)
	}
	if rec.Instructors != "David Gries (djg17)" {
		t.Errorf("instructors = %q", rec.Instructors)
	}
	if rec.Offered != class.CatalogWhenOffered || rec.Distribution != class.CatalogAttribute {
		t.Errorf("passthrough fields wrong: %+v", rec)
	}
	if rec.Requisites != class.CatalogPrereqCoreq {
		t.Errorf("requisites = %q", rec.Requisites)
	}
}

func TestExtractRecordNoEnrollGroups(t *testing.T) {
	rec := ExtractRecord(Class{Subject: "CS", CatalogNbr: "9999", TitleLong: "Ghost Course"})
	if rec.Subject != "CS" || rec.Title != "Ghost Course" {
		t.Errorf("passthroughs missing: %+v", rec)
	}
	if rec.Credits != "" || rec.Grading != "" || rec.Instructors != "" {
		t.Errorf("enrollment fields should degrade to empty: %+v", rec)
	}
}
