// Package feedback derives the qualitative layer of a score result: the
// overall performance label, the breakdown rows and the top-2/bottom-2
// strengths and improvements narrative.
package feedback

import (
	"fmt"
	"math"
	"sort"

	"github.com/spacesedan/introscore/internal/models"
	"github.com/spacesedan/introscore/internal/rubric"
)

// OverallLabel maps a total score to its performance band.
func OverallLabel(score int) string {
	switch {
	case score >= 90:
		return "Outstanding"
	case score >= 75:
		return "Very good"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Needs improvement"
	default:
		return "Weak"
	}
}

// Component is one sub-score with its rubric maximum.
type Component struct {
	Name  string
	Score int
	Max   int
}

// Pct is the fraction of the maximum achieved, in [0,1].
func (c Component) Pct() float64 {
	if c.Max == 0 {
		return 0
	}
	return float64(c.Score) / float64(c.Max)
}

// Components lists the eight sub-scores in rubric order. The order is
// the tie-breaker when ranking for the narrative.
func Components(res models.ScoreResult) []Component {
	return []Component{
		{Name: "Content & Structure: Salutation", Score: res.SalutationScore, Max: rubric.MaxSalutation},
		{Name: "Content & Structure: Keywords", Score: res.KeywordScore, Max: rubric.MaxKeywords},
		{Name: "Content & Structure: Flow", Score: res.FlowScore, Max: rubric.MaxFlow},
		{Name: "Speech rate", Score: res.SpeechScore, Max: rubric.MaxSpeechRate},
		{Name: "Grammar", Score: res.GrammarScore, Max: rubric.MaxGrammar},
		{Name: "Vocabulary", Score: res.VocabScore, Max: rubric.MaxVocabulary},
		{Name: "Clarity", Score: res.ClarityScore, Max: rubric.MaxClarity},
		{Name: "Engagement", Score: res.EngagementScore, Max: rubric.MaxEngagement},
	}
}

// Narrative ranks the components by percentage of maximum and phrases
// the top two as strengths and the bottom two as improvements. Ties keep
// the original component order.
func Narrative(res models.ScoreResult) (strengths, improvements []string) {
	ranked := Components(res)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Pct() > ranked[j].Pct()
	})

	for _, c := range ranked[:2] {
		strengths = append(strengths,
			fmt.Sprintf("%s is strong (%d%%).", c.Name, int(math.Round(c.Pct()*100))))
	}
	for _, c := range ranked[len(ranked)-2:] {
		improvements = append(improvements,
			fmt.Sprintf("%s could be improved (%d%%).", c.Name, int(math.Round(c.Pct()*100))))
	}
	return strengths, improvements
}

// BreakdownRow is one line of the rendered score table.
type BreakdownRow struct {
	Category    string
	Metric      string
	Score       int
	Max         int
	Semantic    float64
	HasSemantic bool
}

// Breakdown pairs every sub-score with its category and the semantic
// similarity of the matching rubric dimension. Speech rate has no
// meaningful semantic counterpart.
func Breakdown(res models.ScoreResult) []BreakdownRow {
	sem := res.Semantic
	return []BreakdownRow{
		{Category: "Content & Structure", Metric: "Salutation", Score: res.SalutationScore, Max: rubric.MaxSalutation, Semantic: sem.Content, HasSemantic: true},
		{Category: "Content & Structure", Metric: "Keyword coverage", Score: res.KeywordScore, Max: rubric.MaxKeywords, Semantic: sem.Content, HasSemantic: true},
		{Category: "Content & Structure", Metric: "Flow / Order", Score: res.FlowScore, Max: rubric.MaxFlow, Semantic: sem.Content, HasSemantic: true},
		{Category: "Speech Rate", Metric: "Speech rate score", Score: res.SpeechScore, Max: rubric.MaxSpeechRate},
		{Category: "Language & Grammar", Metric: "Grammar", Score: res.GrammarScore, Max: rubric.MaxGrammar, Semantic: sem.Language, HasSemantic: true},
		{Category: "Language & Grammar", Metric: "Vocabulary richness (TTR)", Score: res.VocabScore, Max: rubric.MaxVocabulary, Semantic: sem.Language, HasSemantic: true},
		{Category: "Clarity", Metric: "Filler words", Score: res.ClarityScore, Max: rubric.MaxClarity, Semantic: sem.Clarity, HasSemantic: true},
		{Category: "Engagement", Metric: "Sentiment positivity", Score: res.EngagementScore, Max: rubric.MaxEngagement, Semantic: sem.Engagement, HasSemantic: true},
	}
}
