package querycontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/backend-makers/storefront-api/llm"
)

// Empty and whitespace-only queries must be rejected before the
// processor is touched: a nil processor proves nothing downstream ran.
func TestProcessHumanQueryRejectsEmptyInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/query", ProcessHumanQuery(nil))

	for _, body := range []string{
		`{}`,
		`{"human_query": ""}`,
		`{"human_query": "   "}`,
		`{"human_query": "\n\t"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Query cannot be empty")
	}
}

// A missing Gemini key is a configuration problem, not a server
// fault: the caller gets a 400 with a structured message. The LLM is
// probed before the database, so a nil DB proves no query ran.
func TestProcessHumanQueryNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	p := NewProcessor(nil, llm.NewClient("", "gemini-1.5-flash", log), log)

	r := gin.New()
	r.POST("/query", ProcessHumanQuery(p))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"human_query": "how many products are there"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Service not configured correctly")
}

func TestSystemInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/info", SystemInfo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/info", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Google Gemini")
}
