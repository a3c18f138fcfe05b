package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrEmptyQuery rejects blank questions locally, before any network
// call.
var ErrEmptyQuery = errors.New("query cannot be empty")

// QueryResult is the gateway's answer: prose plus the SQL that was
// executed and how long the round trip took server-side.
type QueryResult struct {
	Answer        string  `json:"answer"`
	SQLQuery      string  `json:"sql_query,omitempty"`
	ExecutionTime float64 `json:"execution_time,omitempty"`
}

// Query sends a free-text question to the natural-language gateway.
// One request, one response; no retries, no streaming.
func (c *Client) Query(ctx context.Context, humanQuery string) (*QueryResult, error) {
	if strings.TrimSpace(humanQuery) == "" {
		return nil, ErrEmptyQuery
	}

	body := map[string]string{"human_query": humanQuery}
	var result QueryResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/query", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
