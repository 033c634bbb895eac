package main

import (
	"regexp"
	"testing"
)

func TestMatchesLettersDigits(t *testing.T) {
	re := regexp.MustCompile(pattern)

	tests := []string{
		"abc123",
		"a1",
		"abc",
		"123",
		"abc123x",
		"ABC123",
		"",
		"a1b2",
	}

	for _, s := range tests {
		got := matchesLettersDigits(s)
		want := re.MatchString(s)

		if got != want {
			t.Errorf("matchesLettersDigits(%q) = %v, regexp says %v",
				s, got, want)
		}
	}
}
