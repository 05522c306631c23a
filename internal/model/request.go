package model

import (
	"strconv"

	json "github.com/goccy/go-json"

	"penal-engine/internal/format"
)

// AdjustmentInput is one calculator submission.
type AdjustmentInput struct {
	BaseCategoryID   string `json:"base_category_id"`
	MitigatingCount  int    `json:"mitigating_count"`
	AggravatingCount int    `json:"aggravating_count"`
	DaysServed       Days   `json:"days_served"`
}

// Days accepts either a JSON number or free text. Anything that does not
// parse as a non-negative integer decodes to 0.
type Days int

// ParseDays converts form text to Days.
func ParseDays(s string) Days {
	return Days(format.ParseDaysServed(s))
}

func (d *Days) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = Days(format.ParseDaysServed(s))
		return nil
	}
	*d = Days(format.ParseDaysServed(string(b)))
	return nil
}

func (d Days) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(d))), nil
}
