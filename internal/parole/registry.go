package parole

import "penal-engine/internal/model"

var registry = map[model.PenaltyClass]Rule{
	model.ClassMinor:          HalfMidpoint{},
	model.ClassIntermediate:   HalfMidpoint{},
	model.ClassMajor:          HalfMidpoint{},
	model.ClassLife:           Fixed{Days: LifeThresholdDays},
	model.ClassAggravatedLife: Fixed{Days: AggravatedLifeThresholdDays},
}

// Get returns the rule for class. Unknown classes use HalfMidpoint.
func Get(class model.PenaltyClass) Rule {
	if r, ok := registry[class]; ok {
		return r
	}
	return HalfMidpoint{}
}

// Threshold is shorthand for Get(category.Class).Threshold(category).
func Threshold(category model.PenaltyCategory) int {
	return Get(category.Class).Threshold(category)
}
