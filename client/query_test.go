package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryEmptyInputShortCircuits(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := New(srv.URL, logrus.New())

	for _, input := range []string{"", "   ", "\n\t "} {
		_, err := c.Query(context.Background(), input)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
	assert.Zero(t, calls.Load(), "whitespace-only input must issue zero network calls")
}

func TestQuerySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "what laptops are in stock?", body["human_query"])

		_ = json.NewEncoder(w).Encode(QueryResult{
			Answer:        "We have 3 laptops in stock.",
			SQLQuery:      "SELECT name FROM products WHERE category = 'Laptops'",
			ExecutionTime: 1.23,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, logrus.New())
	result, err := c.Query(context.Background(), "what laptops are in stock?")
	require.NoError(t, err)
	assert.Equal(t, "We have 3 laptops in stock.", result.Answer)
	assert.Equal(t, "SELECT name FROM products WHERE category = 'Laptops'", result.SQLQuery)
	assert.InDelta(t, 1.23, result.ExecutionTime, 0.001)
}

func TestQueryErrorTaxonomy(t *testing.T) {
	t.Run("cannot connect", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := New(srv.URL, logrus.New())
		_, err := c.Query(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrOffline)
	})

	t.Run("server returned an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "SQL query not allowed for security reasons"})
		}))
		defer srv.Close()

		c := New(srv.URL, logrus.New())
		_, err := c.Query(context.Background(), "drop everything")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "SQL query not allowed for security reasons", apiErr.Message)
	})
}
