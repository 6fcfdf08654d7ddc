package util

import (
	"math"
	"testing"
)

func TestRoundTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		places   int
		expected float64
	}{
		{name: "zero", value: 0, places: 2, expected: 0},
		{name: "already rounded", value: 500, places: 2, expected: 500},
		{name: "round down", value: 12.344, places: 2, expected: 12.34},
		{name: "round half up", value: 12.345001, places: 2, expected: 12.35},
		{name: "one third", value: 1.0 / 3.0, places: 2, expected: 0.33},
		{name: "negative places treated as zero", value: 2.6, places: -1, expected: 3},
		{name: "negative zero", value: -0.001, places: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RoundTo(tt.value, tt.places)
			if got != tt.expected {
				t.Fatalf("RoundTo(%v, %d) = %v, want %v", tt.value, tt.places, got, tt.expected)
			}
			if math.Signbit(got) && got == 0 {
				t.Fatalf("RoundTo(%v, %d) returned negative zero", tt.value, tt.places)
			}
		})
	}
}

func TestTrimmedOrEmpty(t *testing.T) {
	t.Parallel()

	blank := "   "
	padded := "  Protein  "

	tests := []struct {
		name     string
		input    *string
		expected string
		isBlank  bool
	}{
		{name: "nil", input: nil, expected: "", isBlank: true},
		{name: "whitespace only", input: &blank, expected: "", isBlank: true},
		{name: "padded value", input: &padded, expected: "Protein", isBlank: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TrimmedOrEmpty(tt.input); got != tt.expected {
				t.Fatalf("TrimmedOrEmpty() = %q, want %q", got, tt.expected)
			}
			if got := IsBlank(tt.input); got != tt.isBlank {
				t.Fatalf("IsBlank() = %v, want %v", got, tt.isBlank)
			}
		})
	}
}
