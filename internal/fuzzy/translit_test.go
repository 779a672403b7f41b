package fuzzy

import "testing"

func TestTransliterateToLatin(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"иван", "ivan"},
		{"щука", "shchuka"},
		{"john", "john"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TransliterateToLatin(tt.input); got != tt.want {
			t.Errorf("TransliterateToLatin(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsTransliteratedEqual(t *testing.T) {
	if !IsTransliteratedEqual("иван", "ivan") {
		t.Error("expected иван and ivan to compare transliterated-equal")
	}
	if IsTransliteratedEqual("иван", "petr") {
		t.Error("expected иван and petr to not compare transliterated-equal")
	}
}
