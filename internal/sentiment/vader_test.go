package sentiment

import "testing"

func TestPositivity(t *testing.T) {
	happy := Positivity("I am so happy and excited, this is wonderful!")
	flat := Positivity("the table has four legs")

	for name, v := range map[string]float64{"happy": happy, "flat": flat} {
		if v < 0 || v > 1 {
			t.Errorf("Positivity(%s) = %v, outside [0,1]", name, v)
		}
	}
	if happy <= flat {
		t.Errorf("expected happy text (%v) to score above flat text (%v)", happy, flat)
	}
}

func TestTone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I love this, it is amazing and wonderful!", "positive"},
		{"This is terrible, I hate it so much.", "negative"},
		{"the table has four legs", "neutral"},
	}
	for _, tt := range tests {
		if _, label := Tone(tt.text); label != tt.want {
			t.Errorf("Tone(%q) label = %q, want %q", tt.text, label, tt.want)
		}
	}
}
