// Package llm wraps the Gemini generateContent REST API. The service
// treats the model as a text-in/text-out black box: one request, one
// response, no streaming.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var ErrNotConfigured = errors.New("gemini is not configured")

// SQLQuery is the contract the model must answer with when translating
// a natural-language question.
type SQLQuery struct {
	SQLQuery      string  `json:"sql_query"`
	OriginalQuery string  `json:"original_query"`
	Confidence    float64 `json:"confidence"`
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(apiKey, model string, log *logrus.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

func (c *Client) Configured() bool { return c.apiKey != "" }

// wire types for generateContent
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not reach gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("unexpected gemini response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("gemini error: %s", decoded.Error.Message)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini did not generate a response")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// TranslateQuery converts a natural-language question into SQL using
// the database schema as prompt context.
func (c *Client) TranslateQuery(ctx context.Context, humanQuery, databaseSchema string) (*SQLQuery, error) {
	prompt := fmt.Sprintf(`You are an expert in PostgreSQL databases for an e-commerce system. Your task is to understand customer queries given in natural format and transform them into SQL that can answer them.

IMPORTANT RULES:
- Return ONLY a valid JSON object
- Do not include additional text before or after the JSON
- Do NOT include semicolons at the end of SQL statements
- Use ONLY the tables and columns listed below
- Generate valid and efficient SQL for PostgreSQL
- Use proper table aliases when joining tables
- For product recommendations, focus on products table with relevant filters
- For user queries, use the users table
- For order queries, join orders with order_items and products

DATABASE SCHEMA:
%s

REQUIRED RESPONSE FORMAT:
{"sql_query": "SELECT * FROM users WHERE role = 'admin'", "original_query": "user's original query", "confidence": 0.95}

USER QUERY: %s`, databaseSchema, humanQuery)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanJSONResponse(text)
	if err != nil {
		return nil, err
	}

	var result SQLQuery
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("error in gemini response format: %w", err)
	}
	if result.SQLQuery == "" {
		return nil, errors.New("gemini response does not contain sql_query")
	}
	if result.OriginalQuery == "" {
		result.OriginalQuery = humanQuery
	}

	c.log.WithField("sql", result.SQLQuery).Info("SQL generated")
	return &result, nil
}

// BuildAnswer summarizes query rows into a natural-language reply.
func (c *Client) BuildAnswer(ctx context.Context, rows []map[string]interface{}, humanQuery string) (string, error) {
	// Cap the amount of data sent to the model.
	if len(rows) > 10 {
		rows = rows[:10]
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are an ecommerce assistant that generates natural language responses based on your ecommerce stock.

INSTRUCTIONS:
- Respond in English naturally and conversationally
- Be concise but informative
- If there's no data, explain it in a friendly way (No stock available)
- Include relevant information from the data (names, prices, quantities, etc.)
- Use a professional but approachable tone
- For products, mention names, prices, and availability when relevant
- For users, mention general information without sensitive data
- For orders, include totals and statuses
- Do NOT use special formatting like *, **, etc.

ORIGINAL QUESTION: %s

DATABASE DATA:
%s

Generate a natural and helpful response based on this data:`, humanQuery, string(data))

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// HealthCheck makes a trivial generation call to verify connectivity.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}
	text, err := c.generate(ctx, "Respond 'OK' if the service works correctly")
	if err != nil {
		c.log.WithError(err).Error("gemini health check failed")
		return false
	}
	return strings.Contains(strings.ToLower(text), "ok")
}

// CleanJSONResponse strips markdown fences and surrounding prose so
// the model's reply decodes as a bare JSON object.
func CleanJSONResponse(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no valid JSON found in response")
	}
	jsonStr := text[start : end+1]
	jsonStr = strings.ReplaceAll(jsonStr, "```json", "")
	jsonStr = strings.ReplaceAll(jsonStr, "```", "")
	return strings.TrimSpace(jsonStr), nil
}
