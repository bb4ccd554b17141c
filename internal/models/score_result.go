package models

import (
	"github.com/spacesedan/introscore/internal/detect"
	"github.com/spacesedan/introscore/internal/textproc"
)

// SemanticProfile holds the cosine similarity, clamped to [0,1], between
// the transcript and each rubric dimension's ideal description. It is
// reported alongside the rule-based scores and does not feed the total.
type SemanticProfile struct {
	Content    float64 `json:"content_semantic"`
	Language   float64 `json:"language_semantic"`
	Clarity    float64 `json:"clarity_semantic"`
	Engagement float64 `json:"engagement_semantic"`
}

// ScoreResult is the full outcome of one scoring call: the rule-based
// sub-scores with their raw metrics, the lexical stats, keyword coverage,
// per-sentence structure tags and the semantic profile. Immutable once
// returned.
type ScoreResult struct {
	TotalScore int `json:"total_score"`

	Stats textproc.Stats `json:"stats"`
	WPM   float64        `json:"wpm"`

	SalutationScore int      `json:"salutation_score"`
	KeywordScore    int      `json:"keyword_score"`
	PresentKeywords []string `json:"present_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	FlowScore       int      `json:"flow_score"`
	SpeechScore     int      `json:"speech_score"`

	GrammarScore int     `json:"grammar_score"`
	ErrorsPer100 float64 `json:"errors_per_100"`
	VocabScore   int     `json:"vocab_score"`
	TTR          float64 `json:"ttr"`

	ClarityScore int     `json:"clarity_score"`
	FillerRate   float64 `json:"filler_rate"`
	FillerCount  int     `json:"filler_count"`

	EngagementScore int     `json:"engagement_score"`
	PosProb         float64 `json:"pos_prob"`

	Tags []detect.Tag `json:"tags"`

	Semantic SemanticProfile `json:"semantic"`
}
