// Package textutil holds the string normalization and comparison helpers
// shared by the scoring components. Everything operates on lowercased input
// and is free of side effects.
package textutil

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {},
	"into": {}, "are": {}, "was": {}, "job": {}, "jobs": {},
	"work": {}, "role": {}, "position": {}, "looking": {},
	"want": {}, "like": {}, "need": {}, "any": {}, "some": {},
}

// Normalize lowercases and trims the input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsFold reports whether needle occurs inside haystack, ignoring case.
// Empty needles never match.
func ContainsFold(haystack, needle string) bool {
	needle = Normalize(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), needle)
}

// Tokens splits s into lowercased words, dropping punctuation, stop words
// and anything shorter than three characters.
func Tokens(s string) []string {
	fields := strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '+' && r != '#'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) <= 2 {
			continue
		}
		if _, skip := stopWords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Terms expands a location-like string into matchable terms: the segments
// between commas and dashes, the individual words longer than two
// characters, and every adjacent-word pair.
func Terms(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var terms []string
	add := func(t string) {
		t = strings.TrimSpace(t)
		if len([]rune(t)) <= 2 {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}

	segments := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '-' || r == '–'
	})
	for _, seg := range segments {
		add(seg)
		words := strings.Fields(seg)
		for i, w := range words {
			add(w)
			if i+1 < len(words) {
				add(w + " " + words[i+1])
			}
		}
	}
	return terms
}

// Similarity returns a 0..1 ratio of how close two strings are, based on
// edit distance over the longer input. Identical strings score 1.
func Similarity(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}

	dist := levenshtein.ComputeDistance(a, b)
	if dist >= longest {
		return 0
	}
	return 1 - float64(dist)/float64(longest)
}

// Truncate shortens s to limit runes, appending an ellipsis when truncated.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
