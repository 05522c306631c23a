// Package format holds the text helpers shared by the pages, the API and
// the CLI: day counts rendered as Spanish prose, days-served parsing and
// accent-insensitive folding for search.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const daysPerYear = 365

// DaysToText renders a day count as "N años y M dias", dropping the day
// part when it is zero and using plain days below one year.
func DaysToText(days int) string {
	if days >= daysPerYear {
		years := days / daysPerYear
		rest := days % daysPerYear
		if rest > 0 {
			return fmt.Sprintf("%d %s y %d %s", years, plural(years, "año", "años"), rest, plural(rest, "dia", "dias"))
		}
		return fmt.Sprintf("%d %s", years, plural(years, "año", "años"))
	}
	return fmt.Sprintf("%d %s", days, plural(days, "dia", "dias"))
}

func plural(n int, one, many string) string {
	if n > 1 {
		return many
	}
	return one
}

// Thousands formats n with Spanish digit grouping.
func Thousands(n int) string {
	return message.NewPrinter(language.Spanish).Sprintf("%d", n)
}

// ParseDaysServed reads the leading integer of s, the way a lenient form
// field does. Empty, non-numeric, negative and overflowing input yield 0.
func ParseDaysServed(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if s[0] == '+' {
		s = s[1:]
	} else if s[0] == '-' {
		return 0
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
