package reference

import (
	"penal-engine/internal/format"
	"penal-engine/internal/model"
)

// ResolvedOffense is an offense with its category name filled in.
type ResolvedOffense struct {
	Name         string `json:"name"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// Category returns the penalty with the given id.
func (c *Catalog) Category(id string) (model.PenaltyCategory, bool) {
	i := c.Penalties.Index(id)
	if i < 0 {
		return model.PenaltyCategory{}, false
	}
	return c.Penalties[i], true
}

// Resolve fills in the category name of o, falling back to the raw id
// when the category is unknown.
func (c *Catalog) Resolve(o Offense) ResolvedOffense {
	name := o.CategoryID
	if p, ok := c.Category(o.CategoryID); ok {
		name = p.Name
	}
	return ResolvedOffense{Name: o.Name, CategoryID: o.CategoryID, CategoryName: name}
}

// SearchOffenses returns the offenses whose name contains q, ignoring case
// and accents. An empty query returns every offense.
func (c *Catalog) SearchOffenses(q string) []ResolvedOffense {
	out := make([]ResolvedOffense, 0, len(c.Offenses))
	for _, o := range c.Offenses {
		if q != "" && !format.ContainsFolded(o.Name, q) {
			continue
		}
		out = append(out, c.Resolve(o))
	}
	return out
}
