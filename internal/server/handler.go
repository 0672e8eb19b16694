// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/course-search/internal/search"
	"github.com/pdiddy/course-search/pkg/types"
)

// upstreamMessage is the only text callers see for retrieval or roster
// failures; the cause stays in the server log.
const upstreamMessage = "Error fetching results. Please try again later"

type searchRequest struct {
	Query string `json:"query"`
}

// Success and failure envelopes are separate shapes: a successful response
// always carries a results array (possibly empty), a failed one never does.
type searchSuccess struct {
	Success bool                 `json:"success"`
	Results []types.CourseRecord `json:"results"`
}

type searchFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A missing or unreadable body gets the same user-correctable
		// message as a too-short query; req.Query stays empty either way.
		req.Query = ""
	}

	records, err := s.searcher.Search(c.Request.Context(), req.Query)
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusOK, searchFailure{Error: verr.Message})
			return
		}
		s.log.Error("search failed", "error", err)
		c.JSON(http.StatusOK, searchFailure{Error: upstreamMessage})
		return
	}

	if records == nil {
		records = []types.CourseRecord{}
	}
	c.JSON(http.StatusOK, searchSuccess{Success: true, Results: records})
}
