package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustmentInputDaysServed(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Days
	}{
		{name: "number", body: `{"days_served": 100}`, want: 100},
		{name: "numeric string", body: `{"days_served": "250"}`, want: 250},
		{name: "text", body: `{"days_served": "mucho"}`, want: 0},
		{name: "empty string", body: `{"days_served": ""}`, want: 0},
		{name: "null", body: `{"days_served": null}`, want: 0},
		{name: "negative", body: `{"days_served": -3}`, want: 0},
		{name: "fraction", body: `{"days_served": 12.7}`, want: 12},
		{name: "absent", body: `{}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in AdjustmentInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.DaysServed)
		})
	}
}

func TestScaleIndexAndMidpoint(t *testing.T) {
	s := Scale{
		{ID: "a", MinDays: 61, MaxDays: 540},
		{ID: "b", MinDays: 541, MaxDays: 1095},
	}
	assert.Equal(t, 0, s.Index("a"))
	assert.Equal(t, 1, s.Index("b"))
	assert.Equal(t, -1, s.Index(""))
	assert.Equal(t, 300, s[0].Midpoint())
	assert.Equal(t, 818, s[1].Midpoint())
}

func TestPenaltyClass(t *testing.T) {
	assert.True(t, ClassLife.IsLife())
	assert.True(t, ClassAggravatedLife.IsLife())
	assert.False(t, ClassMajor.IsLife())
	assert.True(t, ClassIntermediate.Valid())
	assert.False(t, PenaltyClass("capital").Valid())
}
