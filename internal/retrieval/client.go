// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retrieval queries the semantic document-search service for
// relevance-scored course documents.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/course-search/pkg/types"
)

// apiBase is the engine document-search endpoint root; the engine name is
// appended per request. Declared as a var so tests can substitute an
// httptest server.
var apiBase = "https://api.openai.com/v1/engines"

const defaultMaxRerank = 20

// ErrUnprocessable reports that the backend classified the request itself as
// invalid, typically a query with no indexable content. Callers treat this
// as a legitimate zero-result outcome rather than a failure.
var ErrUnprocessable = errors.New("retrieval backend rejected the query as unprocessable")

// Client issues one semantic-search call per invocation against a pre-built
// document index.
type Client struct {
	HTTP   *http.Client
	Config types.RetrievalConfig
}

// Search submits the query and returns scored candidate documents in the
// backend's own pre-ranking order. Every failure other than the backend's
// invalid-request classification is returned as-is for the caller to map.
func (c *Client) Search(ctx context.Context, query string) ([]types.ScoredCandidate, error) {
	engine := c.Config.Engine
	if engine == "" {
		engine = "babbage"
	}
	maxRerank := c.Config.MaxRerank
	if maxRerank <= 0 {
		maxRerank = defaultMaxRerank
	}

	body, err := json.Marshal(searchRequest{
		File:      c.Config.FileID,
		MaxRerank: maxRerank,
		Query:     query,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding retrieval request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/search", apiBase, engine)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Config.APIKey)
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retrieval request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&er); decodeErr == nil &&
			er.Error != nil && er.Error.Type == "invalid_request_error" {
			return nil, ErrUnprocessable
		}
		return nil, fmt.Errorf("retrieval service returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing retrieval response: %w", err)
	}

	candidates := make([]types.ScoredCandidate, 0, len(sr.Data))
	for _, doc := range sr.Data {
		candidates = append(candidates, types.ScoredCandidate{
			Text:  doc.Text,
			Score: doc.Score,
		})
	}
	return candidates, nil
}

// Retrieval service JSON structures.
type searchRequest struct {
	File      string `json:"file"`
	MaxRerank int    `json:"max_rerank"`
	Query     string `json:"query"`
}

type searchResponse struct {
	Object string           `json:"object"`
	Data   []searchDocument `json:"data"`
}

type searchDocument struct {
	Document int     `json:"document"`
	Object   string  `json:"object"`
	Score    float64 `json:"score"`
	Text     string  `json:"text"`
}

type errorResponse struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
	Code    string `json:"code"`
}
