package engine

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penal-engine/internal/model"
	"penal-engine/internal/parole"
	"penal-engine/internal/reference"
)

var scale = reference.Default().Penalties

func TestAdjustOneMitigatingStepsDown(t *testing.T) {
	r, ok := Adjust(scale, model.AdjustmentInput{
		BaseCategoryID:  "presidio-menor-med",
		MitigatingCount: 1,
		DaysServed:      100,
	})
	require.True(t, ok)

	assert.Equal(t, "Presidio Menor Grado Medio", r.BaseCategoryName)
	assert.Equal(t, "Presidio Menor Grado Minimo", r.ResultingCategoryName)
	assert.Equal(t, 61, r.ResultingMinDays)
	assert.Equal(t, 540, r.ResultingMaxDays)
	assert.Equal(t, 150, r.ParoleThresholdDays)
	assert.Equal(t, 50, r.RemainingDaysToParole)
}

func TestAdjustAggravatingSaturatesAtTop(t *testing.T) {
	r, ok := Adjust(scale, model.AdjustmentInput{
		BaseCategoryID:   "presidio-mayor-max",
		AggravatingCount: 2,
	})
	require.True(t, ok)

	assert.Equal(t, "Presidio Perpetuo Calificado", r.ResultingCategoryName)
	assert.Equal(t, 14600, r.ParoleThresholdDays)
	assert.Equal(t, 14600, r.RemainingDaysToParole)
}

func TestAdjustUnknownCategory(t *testing.T) {
	for _, id := range []string{"", "presidio-eterno"} {
		_, ok := Adjust(scale, model.AdjustmentInput{BaseCategoryID: id, MitigatingCount: 1})
		assert.False(t, ok, "id=%q", id)
	}
}

func TestAdjustZeroNetStepsKeepsCategory(t *testing.T) {
	for _, p := range scale {
		for n := 0; n <= 3; n++ {
			r, ok := Adjust(scale, model.AdjustmentInput{
				BaseCategoryID:   p.ID,
				MitigatingCount:  n,
				AggravatingCount: n,
			})
			require.True(t, ok)
			assert.Equal(t, p.Name, r.ResultingCategoryName)
		}
	}
}

func TestAdjustStaysInBounds(t *testing.T) {
	extremes := []int{math.MinInt, -1000, -1, 0, 1, 1000, math.MaxInt}
	for _, p := range scale {
		for _, mit := range extremes {
			for _, agg := range extremes {
				r, ok := Adjust(scale, model.AdjustmentInput{
					BaseCategoryID:   p.ID,
					MitigatingCount:  mit,
					AggravatingCount: agg,
				})
				require.True(t, ok)
				assert.GreaterOrEqual(t, scale.Index(r.ResultingCategoryID), 0)
			}
		}
	}

	r, _ := Adjust(scale, model.AdjustmentInput{BaseCategoryID: "prision", MitigatingCount: math.MaxInt})
	assert.Equal(t, "prision", r.ResultingCategoryID)
	r, _ = Adjust(scale, model.AdjustmentInput{BaseCategoryID: "prision", AggravatingCount: math.MaxInt})
	assert.Equal(t, "perpetuo-calificado", r.ResultingCategoryID)
}

func TestAdjustMonotonic(t *testing.T) {
	for _, p := range scale {
		prev := -1
		for agg := 0; agg <= 12; agg++ {
			r, _ := Adjust(scale, model.AdjustmentInput{BaseCategoryID: p.ID, MitigatingCount: 2, AggravatingCount: agg})
			idx := scale.Index(r.ResultingCategoryID)
			assert.GreaterOrEqual(t, idx, prev)
			prev = idx
		}

		prev = len(scale)
		for mit := 0; mit <= 12; mit++ {
			r, _ := Adjust(scale, model.AdjustmentInput{BaseCategoryID: p.ID, MitigatingCount: mit, AggravatingCount: 1})
			idx := scale.Index(r.ResultingCategoryID)
			assert.LessOrEqual(t, idx, prev)
			prev = idx
		}
	}
}

func TestAdjustRemainingNeverNegative(t *testing.T) {
	for _, p := range scale {
		for _, served := range []model.Days{-10, 0, 1, 5000, 100000} {
			r, _ := Adjust(scale, model.AdjustmentInput{BaseCategoryID: p.ID, DaysServed: served})
			assert.GreaterOrEqual(t, r.RemainingDaysToParole, 0)
			assert.LessOrEqual(t, r.RemainingDaysToParole, r.ParoleThresholdDays)
		}
	}
}

func TestAdjustLifeThresholdsAreFixed(t *testing.T) {
	r, _ := Adjust(scale, model.AdjustmentInput{BaseCategoryID: "perpetuo"})
	assert.Equal(t, parole.LifeThresholdDays, r.ParoleThresholdDays)

	r, _ = Adjust(scale, model.AdjustmentInput{BaseCategoryID: "perpetuo-calificado", DaysServed: 20000})
	assert.Equal(t, parole.AggravatedLifeThresholdDays, r.ParoleThresholdDays)
	assert.Equal(t, 0, r.RemainingDaysToParole)
}

func TestProcessSuccess(t *testing.T) {
	resp := Process(scale, model.AdjustmentInput{
		BaseCategoryID:  "presidio-menor-med",
		MitigatingCount: 1,
		DaysServed:      100,
	})

	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	_, err := uuid.Parse(resp.CalculationMetadata.CalculationID)
	assert.NoError(t, err)
	assert.NotNil(t, resp.Messages)
	assert.Empty(t, resp.Messages)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 50, resp.Result.RemainingDaysToParole)
}

func TestProcessMissingCategory(t *testing.T) {
	tests := []struct {
		id   string
		code string
	}{
		{id: "", code: model.CodeCategoryRequired},
		{id: "nope", code: model.CodeCategoryNotFound},
	}
	for _, tt := range tests {
		resp := Process(scale, model.AdjustmentInput{BaseCategoryID: tt.id})

		assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
		assert.Nil(t, resp.Result)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, model.LevelCritical, resp.Messages[0].Level)
		assert.Equal(t, tt.code, resp.Messages[0].Code)
	}
}

func TestProcessWarnings(t *testing.T) {
	resp := Process(scale, model.AdjustmentInput{
		BaseCategoryID:   "presidio-mayor-max",
		MitigatingCount:  -1,
		AggravatingCount: 5,
	})

	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "perpetuo-calificado", resp.Result.ResultingCategoryID)

	codes := make([]string, 0, len(resp.Messages))
	for i, m := range resp.Messages {
		assert.Equal(t, i, m.ID)
		assert.Equal(t, model.LevelWarning, m.Level)
		codes = append(codes, m.Code)
	}
	assert.Equal(t, []string{
		model.CodeMitigatingOutOfRange,
		model.CodeAggravatingOutOfRange,
		model.CodeResultSaturated,
	}, codes)
}

func TestProcessNoSaturationWarningWithinScale(t *testing.T) {
	resp := Process(scale, model.AdjustmentInput{BaseCategoryID: "presidio-mayor-min", MitigatingCount: 3})
	assert.Empty(t, resp.Messages)
	assert.Equal(t, "presidio-menor-min", resp.Result.ResultingCategoryID)
}
