package server

import "testing"

func TestMeasurementErrors(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		weight   float64
		expected []string
	}{
		{"both valid", 170, 70, nil},
		{"zero height", 0, 70, []string{"height_cm"}},
		{"negative weight", 170, -1, []string{"weight_kg"}},
		{"both invalid", -5, 0, []string{"height_cm", "weight_kg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := measurementErrors(tt.height, tt.weight)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d field errors, got %+v", len(tt.expected), got)
			}
			for i, field := range tt.expected {
				if got[i].Field != field || got[i].Message != "must be greater than 0" {
					t.Fatalf("unexpected field error %d: %+v", i, got[i])
				}
			}
		})
	}
}
