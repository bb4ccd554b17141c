package textproc

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello   World", "hello world"},
		{"Line one\nLine two\r\nLine three", "line one line two line three"},
		{"  padded  ", "padded"},
		{"", ""},
		{"   \n\t ", ""},
		{"MiXeD CaSe", "mixed case"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("Hello\n  everyone,   my NAME is Arjun.")
	twice := Normalize(once)
	if once != twice {
		t.Fatalf("normalizing twice changed the text: %q vs %q", once, twice)
	}
}

func TestBasicStats(t *testing.T) {
	stats := BasicStats("hello everyone. my name is arjun! how are you?")

	if stats.TotalWords != 9 {
		t.Errorf("TotalWords = %d, want 9", stats.TotalWords)
	}
	wantSentences := []string{"hello everyone", "my name is arjun", "how are you"}
	if !reflect.DeepEqual(stats.Sentences, wantSentences) {
		t.Errorf("Sentences = %v, want %v", stats.Sentences, wantSentences)
	}
	if stats.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", stats.SentenceCount)
	}
}

func TestBasicStats_DistinctWords(t *testing.T) {
	stats := BasicStats("the cat and the dog")
	if stats.DistinctWords != 4 {
		t.Errorf("DistinctWords = %d, want 4", stats.DistinctWords)
	}
	if stats.DistinctWords > stats.TotalWords {
		t.Errorf("DistinctWords %d exceeds TotalWords %d", stats.DistinctWords, stats.TotalWords)
	}
}

func TestBasicStats_Empty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		stats := BasicStats(input)
		if stats.TotalWords != 0 || stats.DistinctWords != 0 || stats.SentenceCount != 0 {
			t.Errorf("BasicStats(%q) = %+v, want all-zero stats", input, stats)
		}
		if stats.Tokens == nil || stats.Sentences == nil {
			t.Errorf("BasicStats(%q) returned nil slices", input)
		}
	}

	stats := BasicStats("...")
	if stats.SentenceCount != 0 {
		t.Errorf("punctuation-only input yielded %d sentences", stats.SentenceCount)
	}
}

func TestBasicStats_PunctuationRuns(t *testing.T) {
	stats := BasicStats("wow!! amazing... right?!")
	if stats.SentenceCount != 3 {
		t.Fatalf("SentenceCount = %d, want 3 (runs of punctuation are one boundary)", stats.SentenceCount)
	}
}

func TestComputeTTR(t *testing.T) {
	tests := []struct {
		total, distinct int
		want            float64
	}{
		{0, 0, 0.0},
		{0, 5, 0.0},
		{10, 10, 1.0},
		{10, 5, 0.5},
		{4, 3, 0.75},
	}
	for _, tt := range tests {
		if got := ComputeTTR(tt.total, tt.distinct); got != tt.want {
			t.Errorf("ComputeTTR(%d, %d) = %v, want %v", tt.total, tt.distinct, got, tt.want)
		}
	}
}

func TestCountFillers(t *testing.T) {
	fillers := []string{"um", "like", "you know", "sort of"}

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"single tokens", "um i went um to school", 2},
		{"multi-word substring", "it was you know kind of fun", 1},
		{"token match is exact", "the unlikely umbrella", 0},
		{"mixed", "um it was sort of like you know fine", 4},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountFillers(tt.input, fillers); got != tt.want {
				t.Errorf("CountFillers(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
