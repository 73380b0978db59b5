package engine

import (
	"strings"

	"support-kb/internal/models"
)

// Resolver maps a free-text product identifier to a knowledge record.
type Resolver struct {
	// MatchDisplayName also accepts a record when the query is contained in
	// its display name.
	MatchDisplayName bool
}

// Resolve is Resolver{}.Resolve.
func Resolve(records []*models.KnowledgeRecord, query string) (*models.KnowledgeRecord, bool) {
	return Resolver{}.Resolve(records, query)
}

// Resolve returns the record whose identifier equals query, ignoring case and
// surrounding space. Failing that it returns the first record, in input order,
// whose model name contains the query or is contained in it. Blank model names
// never match. The second result is false when nothing matched.
func (r Resolver) Resolve(records []*models.KnowledgeRecord, query string) (*models.KnowledgeRecord, bool) {
	q := normalize(query)
	if q == "" {
		return nil, false
	}

	for _, rec := range records {
		if rec != nil && normalize(rec.Identifier) == q {
			return rec, true
		}
	}

	for _, rec := range records {
		if rec == nil {
			continue
		}
		if model := normalize(rec.ModelName()); model != "" {
			if strings.Contains(q, model) || strings.Contains(model, q) {
				return rec, true
			}
		}
		if r.MatchDisplayName {
			if name := normalize(rec.DisplayName()); name != "" && strings.Contains(name, q) {
				return rec, true
			}
		}
	}

	return nil, false
}
