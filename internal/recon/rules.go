package recon

import "strings"

// Rule maps a category keyword to a timeline partition. The relevance policy
// is data, not code: callers can extend or replace the default set.
type Rule struct {
	Keyword   string
	Scheduled bool
}

// DefaultRules returns the built-in relevance rule set: back-office keywords
// mark scheduled capacity, the known support/migration keywords mark
// technical demand. Order matters only for which rule is reported as the
// match; the scheduled/technical outcome is unambiguous per keyword.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "backoffice", Scheduled: true},
		{Keyword: "back office", Scheduled: true},
		{Keyword: "avocatmail", Scheduled: false},
		{Keyword: "adwin", Scheduled: false},
		{Keyword: "migration", Scheduled: false},
		{Keyword: "analyse", Scheduled: false},
	}
}

// Classifier decides whether a free-text category is relevant and, if so,
// which partition it belongs to, by case-insensitive substring match against
// an ordered rule set.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a Classifier. A nil or empty rule set falls back to
// DefaultRules.
func NewClassifier(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify reports whether the category matches any rule and whether the
// matching rule marks a scheduled event. Irrelevant categories report
// ok=false.
func (c *Classifier) Classify(category string) (scheduled, ok bool) {
	lower := strings.ToLower(category)
	for _, r := range c.rules {
		if strings.Contains(lower, r.Keyword) {
			return r.Scheduled, true
		}
	}
	return false, false
}
