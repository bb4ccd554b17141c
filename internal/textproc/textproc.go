// Package textproc provides the text preparation layer of the scoring
// pipeline: normalization, tokenization, sentence splitting and filler
// counting. Everything here is a pure function.
package textproc

import (
	"strings"
)

// Stats are the lexical statistics of a normalized transcript.
type Stats struct {
	Tokens        []string `json:"tokens"`
	TotalWords    int      `json:"total_words"`
	DistinctWords int      `json:"distinct_words"`
	Sentences     []string `json:"sentences"`
	SentenceCount int      `json:"sentence_count"`
}

// Normalize lowercases the input and collapses any run of whitespace,
// including newlines, to a single space. Idempotent; empty or
// whitespace-only input yields the empty string.
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

func isSentenceBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// BasicStats tokenizes on whitespace and splits sentences on runs of
// '.', '!' and '?', discarding empty sentences.
func BasicStats(text string) Stats {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return Stats{Tokens: []string{}, Sentences: []string{}}
	}

	tokens := strings.Fields(clean)
	distinct := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		distinct[t] = struct{}{}
	}

	var sentences []string
	for _, s := range strings.FieldsFunc(clean, isSentenceBoundary) {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	return Stats{
		Tokens:        tokens,
		TotalWords:    len(tokens),
		DistinctWords: len(distinct),
		Sentences:     sentences,
		SentenceCount: len(sentences),
	}
}

// ComputeTTR returns the type-token ratio, 0 when there are no words.
func ComputeTTR(totalWords, distinctWords int) float64 {
	if totalWords == 0 {
		return 0.0
	}
	return float64(distinctWords) / float64(totalWords)
}

// CountFillers counts occurrences of the given filler terms. Single
// tokens are matched exactly against the token stream; multi-word
// phrases are approximated by substring count.
func CountFillers(text string, fillers []string) int {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)
	tokenCounts := make(map[string]int)
	for _, t := range strings.Fields(lower) {
		tokenCounts[t]++
	}

	count := 0
	for _, f := range fillers {
		f = strings.TrimSpace(strings.ToLower(f))
		if strings.Contains(f, " ") {
			count += strings.Count(lower, f)
		} else {
			count += tokenCounts[f]
		}
	}
	return count
}
