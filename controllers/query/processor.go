package querycontroller

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/backend-makers/storefront-api/llm"
	"github.com/backend-makers/storefront-api/querysafety"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnsafeQuery = errors.New("SQL query not allowed for security reasons")

// QueryResponse is the gateway's success payload.
type QueryResponse struct {
	Answer        string  `json:"answer"`
	SQLQuery      string  `json:"sql_query,omitempty"`
	ExecutionTime float64 `json:"execution_time,omitempty"`
}

// Processor coordinates the LLM and the database for natural-language
// queries: text in, SQL through the guarded function, prose out.
type Processor struct {
	db  *gorm.DB
	llm *llm.Client
	log *logrus.Logger
}

func NewProcessor(db *gorm.DB, llmClient *llm.Client, log *logrus.Logger) *Processor {
	return &Processor{db: db, llm: llmClient, log: log}
}

// Process runs the full pipeline for one question.
func (p *Processor) Process(ctx context.Context, humanQuery string) (*QueryResponse, error) {
	start := time.Now()

	sqlResult, err := p.llm.TranslateQuery(ctx, humanQuery, databaseSchema)
	if err != nil {
		return nil, err
	}

	if !querysafety.Allowed(sqlResult.SQLQuery) {
		p.log.WithField("sql", sqlResult.SQLQuery).Warn("unsafe query rejected")
		return nil, ErrUnsafeQuery
	}

	rows, err := p.executeQuery(sqlResult.SQLQuery)
	if err != nil {
		return nil, err
	}

	answer, err := p.llm.BuildAnswer(ctx, rows, humanQuery)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start).Seconds()
	p.log.WithFields(logrus.Fields{
		"rows":    len(rows),
		"elapsed": elapsed,
	}).Info("query processed")

	return &QueryResponse{
		Answer:        answer,
		SQLQuery:      sqlResult.SQLQuery,
		ExecutionTime: elapsed,
	}, nil
}

// executeQuery runs generated SQL through the database's guarded
// execute_dynamic_query function, which re-validates and returns each
// row as JSONB.
func (p *Processor) executeQuery(sqlQuery string) ([]map[string]interface{}, error) {
	rows, err := p.db.Raw("SELECT result FROM execute_dynamic_query(?)", sqlQuery).Rows()
	if err != nil {
		p.log.WithError(err).WithField("sql", sqlQuery).Error("query execution failed")
		return nil, err
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, rows.Err()
}

// HealthStatus reports each dependency and an overall status.
type HealthStatus struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Services map[string]bool `json:"services"`
}

// Health pings the database and the LLM.
func (p *Processor) Health(ctx context.Context) HealthStatus {
	dbOK := p.pingDatabase()
	llmOK := p.llm.HealthCheck(ctx)

	status := "healthy"
	switch {
	case !dbOK && !llmOK:
		status = "unhealthy"
	case !dbOK || !llmOK:
		status = "degraded"
	}

	return HealthStatus{
		Status:   status,
		Message:  statusMessage(status, dbOK, llmOK),
		Services: map[string]bool{"database": dbOK, "llm": llmOK},
	}
}

func (p *Processor) pingDatabase() bool {
	sqlDB, err := p.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

func statusMessage(status string, dbOK, llmOK bool) string {
	switch status {
	case "healthy":
		return "All services are working correctly"
	case "degraded":
		problems := ""
		if !dbOK {
			problems = "database"
		}
		if !llmOK {
			if problems != "" {
				problems += ", "
			}
			problems += "llm"
		}
		return "Problems with: " + problems
	default:
		return "Critical services unavailable - check your configuration"
	}
}
