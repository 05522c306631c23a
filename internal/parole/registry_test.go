package parole

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"penal-engine/internal/model"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		name     string
		category model.PenaltyCategory
		want     int
	}{
		{
			name:     "minor uses half midpoint",
			category: model.PenaltyCategory{MinDays: 1, MaxDays: 60, Class: model.ClassMinor},
			want:     15,
		},
		{
			name:     "intermediate uses half midpoint",
			category: model.PenaltyCategory{MinDays: 61, MaxDays: 540, Class: model.ClassIntermediate},
			want:     150,
		},
		{
			name:     "major floors twice",
			category: model.PenaltyCategory{MinDays: 5476, MaxDays: 7300, Class: model.ClassMajor},
			want:     3194,
		},
		{
			name:     "life is fixed",
			category: model.PenaltyCategory{MinDays: 7301, MaxDays: 14600, Class: model.ClassLife},
			want:     LifeThresholdDays,
		},
		{
			name:     "aggravated life is fixed regardless of range",
			category: model.PenaltyCategory{MinDays: 0, MaxDays: 1, Class: model.ClassAggravatedLife},
			want:     AggravatedLifeThresholdDays,
		},
		{
			name:     "unknown class falls back to half midpoint",
			category: model.PenaltyCategory{MinDays: 100, MaxDays: 200, Class: "other"},
			want:     75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Threshold(tt.category))
		})
	}
}
