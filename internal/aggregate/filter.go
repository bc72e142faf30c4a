package aggregate

import (
	"strings"

	"github.com/trackwise-dev/trackwise/internal/model"
)

// Filter returns the transactions matching a free-text query and an
// optional "YYYY-MM" month prefix. The query matches case-insensitively
// against description or category; an empty query matches everything.
// Relative order is preserved.
func Filter(txns []model.Transaction, query, month string) []model.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []model.Transaction
	for _, t := range txns {
		if !matchesQuery(t, q) {
			continue
		}
		if month != "" && !strings.HasPrefix(t.Date, month) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t model.Transaction, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.Category), q)
}
