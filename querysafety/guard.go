// Package querysafety contains the lexical guard applied to
// LLM-generated SQL before it is handed to the database's
// execute_dynamic_query function. The check is keyword-based, not a
// parser, and is a known-incomplete last line of defense: the guarded
// database function re-validates with the same rules.
package querysafety

import "strings"

var dangerousOperations = []string{
	"drop", "delete", "insert", "update", "alter", "create",
	"truncate", "grant", "revoke", "exec", "execute",
}

// Allowed reports whether the statement is a plain read. Only queries
// starting with SELECT or WITH and containing none of the mutating
// keywords pass.
func Allowed(sqlQuery string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(sqlQuery))
	if cleaned == "" {
		return false
	}

	for _, op := range dangerousOperations {
		if strings.Contains(cleaned, op) {
			return false
		}
	}

	return strings.HasPrefix(cleaned, "select") || strings.HasPrefix(cleaned, "with")
}
