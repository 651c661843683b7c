package model

import "testing"

func TestIsValidTransactionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"income", "entrada", true},
		{"expense", "saida", true},
		{"uppercase not normalized", "ENTRADA", false},
		{"empty", "", false},
		{"unknown", "transfer", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValidTransactionType(tt.value); got != tt.want {
				t.Errorf("IsValidTransactionType(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
