package rubric

import "testing"

func TestMaximaSumTo100(t *testing.T) {
	sum := MaxSalutation + MaxKeywords + MaxFlow + MaxSpeechRate +
		MaxGrammar + MaxVocabulary + MaxClarity + MaxEngagement
	if sum != TotalMax {
		t.Fatalf("sub-score maxima sum to %d, want %d", sum, TotalMax)
	}
}

func TestConceptPointsSumToKeywordMax(t *testing.T) {
	sum := 0
	for _, c := range MustHaveConcepts {
		if c.Points != 4 {
			t.Errorf("must-have %q worth %d points, want 4", c.Key, c.Points)
		}
		sum += c.Points
	}
	for _, c := range GoodToHaveConcepts {
		if c.Points != 2 {
			t.Errorf("good-to-have %q worth %d points, want 2", c.Key, c.Points)
		}
		sum += c.Points
	}
	if sum != MaxKeywords {
		t.Fatalf("concept points sum to %d, want %d", sum, MaxKeywords)
	}
}

func TestConceptsHavePhrases(t *testing.T) {
	for _, c := range append(append([]Concept{}, MustHaveConcepts...), GoodToHaveConcepts...) {
		if len(c.Phrases) == 0 {
			t.Errorf("concept %q has no trigger phrases", c.Key)
		}
	}
	for i, g := range BasicPhraseGroups {
		if len(g) == 0 {
			t.Errorf("basic phrase group %d is empty", i)
		}
	}
	for i, g := range AdditionalPhraseGroups {
		if len(g) == 0 {
			t.Errorf("additional phrase group %d is empty", i)
		}
	}
}

func TestSalutationTierOrder(t *testing.T) {
	if len(SalutationTiers) != 3 {
		t.Fatalf("expected 3 salutation tiers, got %d", len(SalutationTiers))
	}
	for i := 1; i < len(SalutationTiers); i++ {
		if SalutationTiers[i].Score >= SalutationTiers[i-1].Score {
			t.Fatalf("salutation tiers must be strongest-first, got %d before %d",
				SalutationTiers[i-1].Score, SalutationTiers[i].Score)
		}
	}
}

func TestSpeechRateBands(t *testing.T) {
	tests := []struct {
		wpm  float64
		want int
	}{
		{50, 2},
		{80, 2},   // below the 81 band start
		{81, 6},
		{110, 6},
		{110.5, 2}, // band gap, falls through
		{111, 10},
		{130, 10},
		{140, 10},
		{140.5, 2}, // band gap
		{141, 6},
		{150, 6},
		{160, 6},
		{160.5, 2}, // band gap
		{161, 2},
		{200, 2},
	}
	for _, tt := range tests {
		if got := SpeechRateBands.Score(tt.wpm); got != tt.want {
			t.Errorf("SpeechRateBands.Score(%v) = %d, want %d", tt.wpm, got, tt.want)
		}
	}
}

func TestGrammarBands(t *testing.T) {
	tests := []struct {
		frac float64
		want int
	}{
		{1.0, 10},
		{0.81, 10},
		{0.8, 8}, // top band is exclusive
		{0.6, 8},
		{0.59, 6},
		{0.4, 6},
		{0.39, 4},
		{0.2, 4},
		{0.19, 2},
		{0.0, 2},
	}
	for _, tt := range tests {
		if got := GrammarBands.Score(tt.frac); got != tt.want {
			t.Errorf("GrammarBands.Score(%v) = %d, want %d", tt.frac, got, tt.want)
		}
	}
}

func TestVocabularyBands(t *testing.T) {
	tests := []struct {
		ttr  float64
		want int
	}{
		{1.0, 10},
		{0.9, 10},
		{0.89, 8},
		{0.7, 8},
		{0.69, 6},
		{0.5, 6},
		{0.49, 4},
		{0.3, 4},
		{0.29, 2},
		{0.0, 2},
	}
	for _, tt := range tests {
		if got := VocabularyBands.Score(tt.ttr); got != tt.want {
			t.Errorf("VocabularyBands.Score(%v) = %d, want %d", tt.ttr, got, tt.want)
		}
	}
}

func TestClarityBands(t *testing.T) {
	tests := []struct {
		rate float64
		want int
	}{
		{0, 15},
		{3, 15},
		{3.5, 3}, // band gap, falls through
		{4, 12},
		{5, 12},
		{6, 12},
		{7, 9},
		{9, 9},
		{10, 6},
		{12, 6},
		{13, 3},
		{50, 3},
	}
	for _, tt := range tests {
		if got := ClarityBands.Score(tt.rate); got != tt.want {
			t.Errorf("ClarityBands.Score(%v) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestEngagementBands(t *testing.T) {
	tests := []struct {
		pos  float64
		want int
	}{
		{0.9, 15},
		{0.7, 15},
		{0.69, 12},
		{0.5, 12},
		{0.49, 9},
		{0.3, 9},
		{0.29, 6},
		{0.1, 6},
		{0.09, 3},
		{0.0, 3},
	}
	for _, tt := range tests {
		if got := EngagementBands.Score(tt.pos); got != tt.want {
			t.Errorf("EngagementBands.Score(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestCriteria(t *testing.T) {
	want := []string{"content", "language", "clarity", "engagement"}
	if len(Criteria) != len(want) {
		t.Fatalf("expected %d criteria, got %d", len(want), len(Criteria))
	}
	for i, c := range Criteria {
		if c.Name != want[i] {
			t.Errorf("criterion %d is %q, want %q", i, c.Name, want[i])
		}
		if c.Description == "" {
			t.Errorf("criterion %q has an empty description", c.Name)
		}
	}
}

func TestFillerTerms(t *testing.T) {
	if len(FillerTerms) != 15 {
		t.Fatalf("expected 15 filler terms, got %d", len(FillerTerms))
	}
}
