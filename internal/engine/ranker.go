package engine

import (
	"slices"
	"strings"

	"support-kb/internal/models"
)

// ScoredEntry pairs an entry with its relevance score for one query.
type ScoredEntry[E models.Entry] struct {
	Entry E
	Score int
}

// Ranking is the ordered output of Rank. Matched is false when no entry
// scored above zero, in which case Entries is empty.
type Ranking[E models.Entry] struct {
	Entries []ScoredEntry[E]
	Matched bool
}

// Rank scores every entry against query using profile, drops entries that
// scored zero and orders the rest by descending score. Entries with equal
// scores keep their input order.
func Rank[E models.Entry](entries []E, query string, profile Profile) Ranking[E] {
	tokens := Tokenize(query, profile.MinTokenLength)
	scored := make([]ScoredEntry[E], 0, len(entries))
	if len(tokens) == 0 {
		return Ranking[E]{Entries: scored}
	}

	for _, e := range entries {
		if score := Score(e, tokens, profile); score > 0 {
			scored = append(scored, ScoredEntry[E]{Entry: e, Score: score})
		}
	}

	slices.SortStableFunc(scored, func(a, b ScoredEntry[E]) int {
		return b.Score - a.Score
	})

	return Ranking[E]{Entries: scored, Matched: len(scored) > 0}
}

// Score sums the profile weights of every field each token is a substring of.
// tokens must already be lower-cased.
func Score(e models.Entry, tokens []string, profile Profile) int {
	fields := make([]string, len(profile.Fields))
	for i, fw := range profile.Fields {
		fields[i] = strings.ToLower(e.Text(fw.Field))
	}

	var remedies []models.CauseSolution
	if r, ok := e.(models.RemedyEntry); ok && (profile.CauseWeight > 0 || profile.SolutionWeight > 0) {
		for _, cs := range r.Remedies() {
			remedies = append(remedies, models.CauseSolution{
				Cause:    strings.ToLower(cs.Cause),
				Solution: strings.ToLower(cs.Solution),
			})
		}
	}

	score := 0
	for _, tok := range tokens {
		for i, fw := range profile.Fields {
			if strings.Contains(fields[i], tok) {
				score += fw.Weight
			}
		}
		for _, cs := range remedies {
			if strings.Contains(cs.Cause, tok) {
				score += profile.CauseWeight
			}
			if strings.Contains(cs.Solution, tok) {
				score += profile.SolutionWeight
			}
		}
	}
	return score
}
