package rubric

// Threshold maps a metric at or above Min (strictly above when Exclusive)
// to a score. Bands are evaluated in order, first match wins.
type Threshold struct {
	Min       float64
	Exclusive bool
	Score     int
}

// ThresholdTable is an ordered set of descending thresholds with a
// fallback score for values below every band.
type ThresholdTable struct {
	Bands   []Threshold
	Default int
}

func (t ThresholdTable) Score(v float64) int {
	for _, b := range t.Bands {
		if b.Exclusive {
			if v > b.Min {
				return b.Score
			}
		} else if v >= b.Min {
			return b.Score
		}
	}
	return t.Default
}

// Interval maps a metric inside [Lo, Hi] (both inclusive) to a score.
type Interval struct {
	Lo, Hi float64
	Score  int
}

// IntervalTable is a set of inclusive intervals with a fallback score.
// Values that land between intervals take the default; some rubric bands
// deliberately leave such gaps and they must not be smoothed over.
type IntervalTable struct {
	Bands   []Interval
	Default int
}

func (t IntervalTable) Score(v float64) int {
	for _, b := range t.Bands {
		if v >= b.Lo && v <= b.Hi {
			return b.Score
		}
	}
	return t.Default
}

// SpeechRateBands score words-per-minute. The gaps at (110,111),
// (140,141) and (160,161) fall through to the default.
var SpeechRateBands = IntervalTable{
	Bands: []Interval{
		{Lo: 111, Hi: 140, Score: 10},
		{Lo: 81, Hi: 110, Score: 6},
		{Lo: 141, Hi: 160, Score: 6},
	},
	Default: 2,
}

// GrammarBands score the heuristic quality fraction in [0,1]. The top
// band is exclusive: exactly 0.8 scores 8, not 10.
var GrammarBands = ThresholdTable{
	Bands: []Threshold{
		{Min: 0.8, Exclusive: true, Score: 10},
		{Min: 0.6, Score: 8},
		{Min: 0.4, Score: 6},
		{Min: 0.2, Score: 4},
	},
	Default: 2,
}

// VocabularyBands score the type-token ratio.
var VocabularyBands = ThresholdTable{
	Bands: []Threshold{
		{Min: 0.9, Score: 10},
		{Min: 0.7, Score: 8},
		{Min: 0.5, Score: 6},
		{Min: 0.3, Score: 4},
	},
	Default: 2,
}

// ClarityBands score the filler rate percentage.
var ClarityBands = IntervalTable{
	Bands: []Interval{
		{Lo: 0, Hi: 3, Score: 15},
		{Lo: 4, Hi: 6, Score: 12},
		{Lo: 7, Hi: 9, Score: 9},
		{Lo: 10, Hi: 12, Score: 6},
	},
	Default: 3,
}

// EngagementBands score the sentiment positivity probability.
var EngagementBands = ThresholdTable{
	Bands: []Threshold{
		{Min: 0.7, Score: 15},
		{Min: 0.5, Score: 12},
		{Min: 0.3, Score: 9},
		{Min: 0.1, Score: 6},
	},
	Default: 3,
}
