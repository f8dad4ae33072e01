package rules

// Catalogue is an ordered set of rules. Declaration order is the report
// order: findings are rendered by catalogue position, not discovery order,
// so runs are deterministic even under parallel evaluation.
type Catalogue struct {
	rules []Rule
	byID  map[string]Rule
}

// NewCatalogue builds a catalogue from rules in declaration order.
func NewCatalogue(rs ...Rule) *Catalogue {
	c := &Catalogue{
		rules: rs,
		byID:  make(map[string]Rule, len(rs)),
	}
	for _, r := range rs {
		c.byID[r.ID()] = r
	}
	return c
}

// Rules returns the rules in declaration order.
func (c *Catalogue) Rules() []Rule {
	return c.rules
}

// Get returns a rule by ID.
func (c *Catalogue) Get(id string) (Rule, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Len returns the number of rules.
func (c *Catalogue) Len() int {
	return len(c.rules)
}
