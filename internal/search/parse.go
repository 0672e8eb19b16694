// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"

	"github.com/pdiddy/course-search/pkg/types"
)

// ParseCourseCode extracts the course code from a corpus document. Every
// corpus line starts with "<SUBJECT> <NUMBER>:" by construction; the segment
// before the first colon must split into exactly two whitespace-separated
// tokens. Malformed text is a parse failure, never a silent coercion.
func ParseCourseCode(text string) (types.CourseCode, error) {
	head, _, found := strings.Cut(text, ":")
	if !found {
		return types.CourseCode{}, fmt.Errorf("no colon in candidate text %q", snippet(text))
	}
	tokens := strings.Fields(head)
	if len(tokens) != 2 {
		return types.CourseCode{}, fmt.Errorf("course code %q: want 2 tokens, got %d", head, len(tokens))
	}
	return types.CourseCode{Subject: tokens[0], Number: tokens[1]}, nil
}

// snippet bounds candidate text in error messages.
func snippet(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
