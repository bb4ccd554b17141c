// Package sentiment wraps the VADER lexicon analyzer used by the
// engagement scorer. The analyzer is built once at init and is read-only
// afterwards, so it is safe to share across scoring calls.
package sentiment

import (
	"github.com/jonreiter/govader"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Positivity returns VADER's positive probability for the text, in [0,1].
func Positivity(text string) float64 {
	return analyzer.PolarityScores(text).Positive
}

// Tone returns VADER's compound polarity in [-1,1] with a coarse label,
// used for the tone line in rendered feedback.
func Tone(text string) (float64, string) {
	score := analyzer.PolarityScores(text).Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}
