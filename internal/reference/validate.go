package reference

import (
	"errors"
	"fmt"
)

// Validate checks the penalty scale invariants and that every offense
// points at a known category.
func (c *Catalog) Validate() error {
	if len(c.Penalties) == 0 {
		return errors.New("penalty scale is empty")
	}

	seen := make(map[string]bool, len(c.Penalties))
	for i, p := range c.Penalties {
		if p.ID == "" {
			return fmt.Errorf("penalty %d: empty id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("penalty %q: duplicate id", p.ID)
		}
		seen[p.ID] = true

		if !p.Class.Valid() {
			return fmt.Errorf("penalty %q: unknown class %q", p.ID, p.Class)
		}
		if p.MinDays < 0 || p.MinDays > p.MaxDays {
			return fmt.Errorf("penalty %q: invalid range %d-%d", p.ID, p.MinDays, p.MaxDays)
		}
		if i == 0 {
			continue
		}
		prev := c.Penalties[i-1]
		// Life sentences use fixed parole thresholds, so their ranges are
		// not required to continue the scale.
		if prev.Class.IsLife() || p.Class.IsLife() {
			continue
		}
		if prev.MaxDays+1 != p.MinDays {
			return fmt.Errorf("penalty %q: range starts at %d, expected %d after %q",
				p.ID, p.MinDays, prev.MaxDays+1, prev.ID)
		}
	}

	for _, o := range c.Offenses {
		if !seen[o.CategoryID] {
			return fmt.Errorf("offense %q: unknown category %q", o.Name, o.CategoryID)
		}
	}
	return nil
}
