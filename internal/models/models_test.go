package models

import "testing"

func TestValidPriority(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{PriorityHigh, true},
		{PriorityMedium, true},
		{PriorityLow, true},
		{"urgent", false},
		{"HIGH", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPriority(tt.value); got != tt.want {
			t.Errorf("ValidPriority(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{StatusPending, true},
		{StatusCompleted, true},
		{"done", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.value); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
