package model

// PenaltyClass selects the parole-threshold rule for a category.
type PenaltyClass string

const (
	ClassMinor          PenaltyClass = "minor"
	ClassIntermediate   PenaltyClass = "intermediate"
	ClassMajor          PenaltyClass = "major"
	ClassLife           PenaltyClass = "life"
	ClassAggravatedLife PenaltyClass = "aggravated-life"
)

// Valid reports whether c is one of the known classes.
func (c PenaltyClass) Valid() bool {
	switch c {
	case ClassMinor, ClassIntermediate, ClassMajor, ClassLife, ClassAggravatedLife:
		return true
	}
	return false
}

// IsLife reports whether the class uses a fixed parole threshold.
func (c PenaltyClass) IsLife() bool {
	return c == ClassLife || c == ClassAggravatedLife
}

// PenaltyCategory is one tier of the sentencing scale. Day bounds are inclusive.
type PenaltyCategory struct {
	ID      string       `json:"id" yaml:"id"`
	Name    string       `json:"name" yaml:"name"`
	MinDays int          `json:"min_days" yaml:"min_days"`
	MaxDays int          `json:"max_days" yaml:"max_days"`
	Class   PenaltyClass `json:"class" yaml:"class"`
}

// Midpoint returns floor((MinDays+MaxDays)/2).
func (p PenaltyCategory) Midpoint() int {
	return (p.MinDays + p.MaxDays) / 2
}

// Scale is the penalty table ordered from least to most severe.
type Scale []PenaltyCategory

// Index returns the position of id in the scale, or -1.
func (s Scale) Index(id string) int {
	for i, p := range s {
		if p.ID == id {
			return i
		}
	}
	return -1
}
