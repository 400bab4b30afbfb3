package promoter

import (
	"strings"
)

// toTok normalizes a free-form string into a lowercased token.
// A leading ':' is dropped so symbol-like spellings (":minor") parse too.
func toTok(s string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ":")
}

// capCandidates returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capCandidates(out []Candidate, limit int) []Candidate {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}
