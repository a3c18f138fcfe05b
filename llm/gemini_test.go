package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare json", `{"sql_query": "SELECT 1"}`, `{"sql_query": "SELECT 1"}`, false},
		{"fenced", "```json\n{\"sql_query\": \"SELECT 1\"}\n```", `{"sql_query": "SELECT 1"}`, false},
		{"surrounding prose", "Here you go: {\"a\": 1} hope it helps", `{"a": 1}`, false},
		{"no json", "sorry, I cannot do that", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CleanJSONResponse(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func fakeGemini(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": reply}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestTranslateQuery(t *testing.T) {
	srv := fakeGemini(t, "```json\n{\"sql_query\": \"SELECT name FROM products\", \"original_query\": \"show products\", \"confidence\": 0.9}\n```")
	defer srv.Close()

	c := NewClient("test-key", "gemini-1.5-flash", logrus.New())
	c.SetBaseURL(srv.URL)

	result, err := c.TranslateQuery(context.Background(), "show products", "CREATE TABLE products (...)")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM products", result.SQLQuery)
	assert.Equal(t, "show products", result.OriginalQuery)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
}

func TestTranslateQueryMissingSQL(t *testing.T) {
	srv := fakeGemini(t, `{"original_query": "hm"}`)
	defer srv.Close()

	c := NewClient("test-key", "gemini-1.5-flash", logrus.New())
	c.SetBaseURL(srv.URL)

	_, err := c.TranslateQuery(context.Background(), "hm", "schema")
	assert.Error(t, err)
}

func TestNotConfigured(t *testing.T) {
	c := NewClient("", "gemini-1.5-flash", logrus.New())
	_, err := c.TranslateQuery(context.Background(), "anything", "schema")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, c.HealthCheck(context.Background()))
}

func TestBuildAnswer(t *testing.T) {
	srv := fakeGemini(t, "  We have 2 laptops in stock.\n")
	defer srv.Close()

	c := NewClient("test-key", "gemini-1.5-flash", logrus.New())
	c.SetBaseURL(srv.URL)

	answer, err := c.BuildAnswer(context.Background(), []map[string]interface{}{
		{"name": "Laptop", "stock": 2},
	}, "how many laptops?")
	require.NoError(t, err)
	assert.Equal(t, "We have 2 laptops in stock.", answer)
}
