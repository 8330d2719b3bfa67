package domain

import "testing"

func TestGender_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gender Gender
		want   bool
	}{
		{GenderMasculine, true},
		{GenderFeminine, true},
		{Gender("n"), false},
		{Gender("M"), false},
		{Gender(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.gender), func(t *testing.T) {
			t.Parallel()
			if got := tt.gender.IsValid(); got != tt.want {
				t.Errorf("Gender(%q).IsValid() = %v, want %v", tt.gender, got, tt.want)
			}
		})
	}
}

func TestGender_Label(t *testing.T) {
	t.Parallel()

	if got := GenderMasculine.Label(); got != "Masculine" {
		t.Errorf("got %q, want Masculine", got)
	}
	if got := GenderFeminine.Label(); got != "Feminine" {
		t.Errorf("got %q, want Feminine", got)
	}
	if got := Gender("x").Label(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestPartOfSpeech_IsKnown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  PartOfSpeech
		want bool
	}{
		{PartOfSpeechNoun, true},
		{PartOfSpeechOnomatopoeia, true},
		{PartOfSpeechInterjection, true},
		{PartOfSpeech("Lia"), false},
		{PartOfSpeech(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			t.Parallel()
			if got := tt.pos.IsKnown(); got != tt.want {
				t.Errorf("PartOfSpeech(%q).IsKnown() = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
