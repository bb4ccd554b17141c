package scoring

import (
	"fmt"

	"github.com/spacesedan/introscore/internal/detect"
	"github.com/spacesedan/introscore/internal/models"
	"github.com/spacesedan/introscore/internal/textproc"
)

// SemanticScorer produces the per-dimension semantic profile for a
// transcript. Satisfied by semantic.Engine.
type SemanticScorer interface {
	Profile(text string) (models.SemanticProfile, error)
}

// Scorer runs the full pipeline: normalize, extract stats and tags, run
// the eight rule-based sub-scorers, then the semantic comparisons.
type Scorer struct {
	sem SemanticScorer
}

func NewScorer(sem SemanticScorer) *Scorer {
	return &Scorer{sem: sem}
}

// Score evaluates one transcript against the rubric. The grammar and
// engagement scorers read the raw transcript, since their signals
// (casing, spacing, punctuation emphasis) do not survive normalization;
// everything else consumes the normalized form. A semantic backend
// failure fails the whole call, no partial result is returned.
func (s *Scorer) Score(transcript string, durationSec float64) (models.ScoreResult, error) {
	clean := textproc.Normalize(transcript)
	stats := textproc.BasicStats(clean)

	salutationScore := ScoreSalutation(clean)
	keywordScore, presentKw, missingKw := ScoreKeywords(clean)
	tags := detect.StructureTags(stats.Sentences)
	flowScore := ScoreFlow(stats.Sentences, tags)

	speechScore, wpm := ScoreSpeechRate(stats.TotalWords, durationSec)

	grammarScore, errorsPer100 := ScoreGrammar(transcript, stats.TotalWords)
	vocabScore, ttr := ScoreVocabulary(stats.TotalWords, stats.DistinctWords)

	clarityScore, fillerRate, fillerCount := ScoreClarity(clean, stats.TotalWords)
	engagementScore, posProb := ScoreEngagement(transcript)

	totalScore := salutationScore +
		keywordScore +
		flowScore +
		speechScore +
		grammarScore +
		vocabScore +
		clarityScore +
		engagementScore

	profile, err := s.sem.Profile(clean)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("semantic profile failed: %w", err)
	}

	return models.ScoreResult{
		TotalScore:      totalScore,
		Stats:           stats,
		WPM:             wpm,
		SalutationScore: salutationScore,
		KeywordScore:    keywordScore,
		PresentKeywords: presentKw,
		MissingKeywords: missingKw,
		FlowScore:       flowScore,
		SpeechScore:     speechScore,
		GrammarScore:    grammarScore,
		ErrorsPer100:    errorsPer100,
		VocabScore:      vocabScore,
		TTR:             ttr,
		ClarityScore:    clarityScore,
		FillerRate:      fillerRate,
		FillerCount:     fillerCount,
		EngagementScore: engagementScore,
		PosProb:         posProb,
		Tags:            tags,
		Semantic:        profile,
	}, nil
}
