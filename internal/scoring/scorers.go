// Package scoring maps the extracted metrics onto the rubric's banded
// sub-scores and aggregates them into the final result record. Each
// scorer is a pure function; band thresholds live in the rubric tables.
package scoring

import (
	"strings"
	"unicode"

	"github.com/spacesedan/introscore/internal/detect"
	"github.com/spacesedan/introscore/internal/rubric"
	"github.com/spacesedan/introscore/internal/sentiment"
	"github.com/spacesedan/introscore/internal/textproc"
)

// ScoreSalutation scores the greeting tier of the first sentence: 5, 4,
// 2 or 0.
func ScoreSalutation(text string) int {
	return detect.SalutationLevel(text)
}

// ScoreKeywords scores concept coverage out of 30 (must-haves 4 points
// each, good-to-haves 2) and reports present and missing concept labels
// in rubric order.
func ScoreKeywords(text string) (score int, present, missing []string) {
	kw := detect.Keywords(text)

	for _, c := range rubric.MustHaveConcepts {
		if kw[c.Key] {
			score += c.Points
			present = append(present, c.Label)
		} else {
			missing = append(missing, c.Label)
		}
	}
	for _, c := range rubric.GoodToHaveConcepts {
		if kw[c.Key] {
			score += c.Points
			present = append(present, c.Label)
		} else {
			missing = append(missing, c.Label)
		}
	}
	return score, present, missing
}

// ScoreFlow awards 5 when the tag sequence contains at least one
// SALUTATION, one BASIC and one CLOSING sentence, in any order, else 0.
func ScoreFlow(sentences []string, tags []detect.Tag) int {
	if len(sentences) == 0 || len(tags) == 0 {
		return 0
	}

	var hasSal, hasBasic, hasClosing bool
	for _, t := range tags {
		switch t {
		case detect.TagSalutation:
			hasSal = true
		case detect.TagBasic:
			hasBasic = true
		case detect.TagClosing:
			hasClosing = true
		}
	}

	if hasSal && hasBasic && hasClosing {
		return rubric.MaxFlow
	}
	return 0
}

// ScoreSpeechRate scores words per minute. Zero words or a non-positive
// duration is degenerate input and scores 0 with wpm 0.
func ScoreSpeechRate(totalWords int, durationSec float64) (int, float64) {
	if totalWords == 0 || durationSec <= 0 {
		return 0, 0.0
	}

	wpm := float64(totalWords) * 60.0 / durationSec
	return rubric.SpeechRateBands.Score(wpm), wpm
}

// ScoreGrammar is a deliberately rough proxy for grammatical quality on
// the raw transcript: it counts lowercase standalone "i", double spaces
// and tokens that mix digits with letters, folds the estimated error
// density into a [0,1] fraction and bands it. It is not a grammar
// checker and must not be "improved" into one, since that would shift
// scores silently.
func ScoreGrammar(text string, totalWords int) (int, float64) {
	if totalWords == 0 {
		return 0, 0.0
	}

	lower := strings.ToLower(text)

	lowerIErrors := strings.Count(lower, " i ")
	doubleSpaceErrors := strings.Count(text, "  ")

	weirdTokenErrors := 0
	for _, tok := range strings.Fields(text) {
		var hasDigit, hasAlpha bool
		for _, r := range tok {
			if unicode.IsDigit(r) {
				hasDigit = true
			}
			if unicode.IsLetter(r) {
				hasAlpha = true
			}
		}
		if hasDigit && hasAlpha {
			weirdTokenErrors++
		}
	}

	errorsEst := lowerIErrors + doubleSpaceErrors + weirdTokenErrors
	errorsPer100 := float64(errorsEst) / float64(totalWords) * 100.0
	if errorsPer100 > rubric.ErrorsPer100Cap {
		errorsPer100 = rubric.ErrorsPer100Cap
	}

	penalty := errorsPer100 / rubric.GrammarErrorScale
	if penalty > 1.0 {
		penalty = 1.0
	}
	gramFrac := 1.0 - penalty

	return rubric.GrammarBands.Score(gramFrac), errorsPer100
}

// ScoreVocabulary bands the type-token ratio.
func ScoreVocabulary(totalWords, distinctWords int) (int, float64) {
	if totalWords == 0 {
		return 0, 0.0
	}

	ttr := textproc.ComputeTTR(totalWords, distinctWords)
	return rubric.VocabularyBands.Score(ttr), ttr
}

// ScoreClarity bands the filler-word rate as a percentage of all words.
func ScoreClarity(text string, totalWords int) (score int, fillerRate float64, fillerCount int) {
	if totalWords == 0 {
		return 0, 0.0, 0
	}

	fillerCount = textproc.CountFillers(text, rubric.FillerTerms)
	fillerRate = float64(fillerCount) / float64(totalWords) * 100.0

	return rubric.ClarityBands.Score(fillerRate), fillerRate, fillerCount
}

// ScoreEngagement bands VADER's positivity probability for the raw
// transcript.
func ScoreEngagement(text string) (int, float64) {
	pos := sentiment.Positivity(text)
	return rubric.EngagementBands.Score(pos), pos
}
