package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  chat  ", want: "chat"},
		{name: "lowercase", input: "CHAT", want: "chat"},
		{name: "compress multiple spaces", input: "pomme   de  terre", want: "pomme de terre"},
		{name: "diacritics preserved", input: "Côte", want: "côte"},
		{name: "uppercase accented", input: "ÉCOLE", want: "école"},
		{name: "decomposed accent composed", input: "E\u0301cole", want: "\u00e9cole"},
		{name: "hyphens preserved", input: "Arc-en-ciel", want: "arc-en-ciel"},
		{name: "apostrophes preserved", input: "aujourd'hui", want: "aujourd'hui"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t chaise \t", want: "chaise"},
		{name: "inner tab", input: "pomme\tde terre", want: "pomme de terre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
