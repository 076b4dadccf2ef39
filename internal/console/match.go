package console

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// normalise lowercases and strips everything but letters, digits, and single
// spaces so "Hire  CEO!" and "hire ceo" compare equal.
func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
		}
		lastSpace = true
	}
	return strings.TrimSpace(b.String())
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// matchOption fuzzily resolves free-text input to one option index. It
// refuses ambiguous input: a near-tie between two options returns no match
// rather than guessing.
func matchOption(input string, options []string) (int, bool) {
	token := normalise(input)
	if token == "" {
		return 0, false
	}

	type scored struct {
		idx   int
		score float64
	}
	results := make([]scored, 0, len(options))
	for i, opt := range options {
		cand := normalise(opt)
		if cand == "" {
			continue
		}
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		case strings.Contains(cand, token) && len(token) >= 4:
			score = 0.8
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, scored{idx: i, score: score})
	}
	if len(results) == 0 {
		return 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	best := results[0]
	if best.score < 0.6 {
		return 0, false
	}
	if len(results) > 1 && best.score-results[1].score < 0.05 {
		return 0, false
	}
	return best.idx, true
}
