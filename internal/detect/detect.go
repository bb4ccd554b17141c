// Package detect implements the phrase-containment detectors: salutation
// tier, keyword concept presence and per-sentence structure tagging. All
// matching is case-insensitive substring containment over normalized text.
package detect

import (
	"strings"

	"github.com/spacesedan/introscore/internal/rubric"
	"github.com/spacesedan/introscore/internal/textproc"
)

// Tag classifies the role a sentence plays in an introduction.
type Tag string

const (
	TagSalutation Tag = "SALUTATION"
	TagBasic      Tag = "BASIC"
	TagAdditional Tag = "ADDITIONAL"
	TagClosing    Tag = "CLOSING"
	TagOther      Tag = "OTHER"
)

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// SalutationLevel returns 0, 2, 4 or 5 for the greeting quality of the
// first sentence. Tiers are checked strongest-first so that phrases like
// "hello everyone" score at the formal tier, not the simple one.
func SalutationLevel(text string) int {
	if text == "" {
		return 0
	}

	sentences := textproc.BasicStats(text).Sentences
	if len(sentences) == 0 {
		return 0
	}

	first := strings.ToLower(sentences[0])
	for _, tier := range rubric.SalutationTiers {
		if containsAny(first, tier.Phrases) {
			return tier.Score
		}
	}
	return 0
}

// Keywords reports which rubric concepts the text covers, keyed by
// concept key. Each concept is an independent check.
func Keywords(text string) map[string]bool {
	t := strings.ToLower(text)

	present := make(map[string]bool, len(rubric.MustHaveConcepts)+len(rubric.GoodToHaveConcepts))
	for _, c := range rubric.MustHaveConcepts {
		present[c.Key] = containsAny(t, c.Phrases)
	}
	for _, c := range rubric.GoodToHaveConcepts {
		present[c.Key] = containsAny(t, c.Phrases)
	}
	return present
}

func anyGroupMatches(s string, groups [][]string) bool {
	for _, g := range groups {
		if containsAny(s, g) {
			return true
		}
	}
	return false
}

// StructureTags assigns exactly one tag per sentence using the priority
// order SALUTATION > CLOSING > BASIC > ADDITIONAL > OTHER. A sentence can
// match several categories; the priority order is the disambiguation rule.
func StructureTags(sentences []string) []Tag {
	tags := make([]Tag, 0, len(sentences))
	for _, sentence := range sentences {
		s := strings.ToLower(sentence)
		switch {
		case containsAny(s, rubric.TagSalutationPhrases):
			tags = append(tags, TagSalutation)
		case containsAny(s, rubric.ClosingPhrases):
			tags = append(tags, TagClosing)
		case anyGroupMatches(s, rubric.BasicPhraseGroups):
			tags = append(tags, TagBasic)
		case anyGroupMatches(s, rubric.AdditionalPhraseGroups):
			tags = append(tags, TagAdditional)
		default:
			tags = append(tags, TagOther)
		}
	}
	return tags
}
