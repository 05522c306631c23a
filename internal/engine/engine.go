package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"penal-engine/internal/model"
	"penal-engine/internal/parole"
)

// Option sets offered by the calculator form. Counts outside these sets are
// still computed but reported with a warning.
const (
	MaxMitigating  = 3
	MaxAggravating = 2
)

// Adjust shifts the base category by the net number of aggravating minus
// mitigating steps and derives the parole figures for the resulting
// category. It reports false when the base category is not in the scale.
func Adjust(scale model.Scale, in model.AdjustmentInput) (model.CalculationResult, bool) {
	i := scale.Index(in.BaseCategoryID)
	if i < 0 {
		return model.CalculationResult{}, false
	}

	target := shift(i, in.AggravatingCount, in.MitigatingCount, len(scale))
	base := scale[i]
	resulting := scale[target]

	served := int(in.DaysServed)
	if served < 0 {
		served = 0
	}
	threshold := parole.Threshold(resulting)
	remaining := threshold - served
	if remaining < 0 {
		remaining = 0
	}

	return model.CalculationResult{
		BaseCategoryName:      base.Name,
		ResultingCategoryID:   resulting.ID,
		ResultingCategoryName: resulting.Name,
		ResultingMinDays:      resulting.MinDays,
		ResultingMaxDays:      resulting.MaxDays,
		ParoleThresholdDays:   threshold,
		DaysServed:            served,
		RemainingDaysToParole: remaining,
	}, true
}

// shift returns clamp(i+up-down, 0, n-1). Counts are bounded to ±n first
// so arbitrary ints cannot overflow.
func shift(i, up, down, n int) int {
	target := i + bound(up, n) - bound(down, n)
	if target < 0 {
		return 0
	}
	if target > n-1 {
		return n - 1
	}
	return target
}

func bound(v, n int) int {
	if v > n {
		return n
	}
	if v < -n {
		return -n
	}
	return v
}

// Process runs Adjust and wraps the outcome with metadata and messages.
// A missing or unknown base category yields a FAILURE with a nil result.
func Process(scale model.Scale, in model.AdjustmentInput) *model.CalculationResponse {
	start := time.Now()

	var msgs []model.CalculationMessage
	add := func(level, code, text string) {
		msgs = append(msgs, model.CalculationMessage{
			ID:      len(msgs),
			Level:   level,
			Code:    code,
			Message: text,
		})
	}

	outcome := model.OutcomeSuccess
	var result *model.CalculationResult

	i := scale.Index(in.BaseCategoryID)
	switch {
	case strings.TrimSpace(in.BaseCategoryID) == "":
		add(model.LevelCritical, model.CodeCategoryRequired, "A base penalty category is required")
		outcome = model.OutcomeFailure
	case i < 0:
		add(model.LevelCritical, model.CodeCategoryNotFound, fmt.Sprintf("Unknown penalty category: %s", in.BaseCategoryID))
		outcome = model.OutcomeFailure
	default:
		if in.MitigatingCount < 0 || in.MitigatingCount > MaxMitigating {
			add(model.LevelWarning, model.CodeMitigatingOutOfRange,
				fmt.Sprintf("Mitigating count %d is outside 0-%d", in.MitigatingCount, MaxMitigating))
		}
		if in.AggravatingCount < 0 || in.AggravatingCount > MaxAggravating {
			add(model.LevelWarning, model.CodeAggravatingOutOfRange,
				fmt.Sprintf("Aggravating count %d is outside 0-%d", in.AggravatingCount, MaxAggravating))
		}
		r, _ := Adjust(scale, in)
		result = &r

		requested := i + bound(in.AggravatingCount, len(scale)) - bound(in.MitigatingCount, len(scale))
		if requested != scale.Index(r.ResultingCategoryID) {
			add(model.LevelWarning, model.CodeResultSaturated,
				fmt.Sprintf("Adjustment clamped at %s", r.ResultingCategoryName))
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if msgs == nil {
		msgs = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		Messages: msgs,
		Input:    in,
		Result:   result,
	}
}
