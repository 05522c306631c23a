package parole

import "penal-engine/internal/model"

// Rule computes the number of days that must be served before a sentence
// in a given category becomes eligible for parole.
type Rule interface {
	Threshold(category model.PenaltyCategory) int
}

const (
	// LifeThresholdDays is 20 years expressed in days.
	LifeThresholdDays = 7300
	// AggravatedLifeThresholdDays is 40 years expressed in days.
	AggravatedLifeThresholdDays = 14600
)

// HalfMidpoint grants parole at half of the category's midpoint sentence.
type HalfMidpoint struct{}

func (HalfMidpoint) Threshold(category model.PenaltyCategory) int {
	return category.Midpoint() / 2
}

// Fixed ignores the category range and returns a constant threshold.
type Fixed struct {
	Days int
}

func (f Fixed) Threshold(model.PenaltyCategory) int {
	return f.Days
}
