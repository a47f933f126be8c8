package services

import "strings"

// DefaultCategory is used when no keyword matches a description.
const DefaultCategory = "Other"

type categoryRule struct {
	keyword  string
	category string
}

// categoryRules is checked in order; the first keyword contained in the
// lower-cased description wins.
var categoryRules = []categoryRule{
	{"starbucks", "Food & Drink"},
	{"coffee", "Food & Drink"},
	{"grocery", "Food & Drink"},
	{"gas", "Transportation"},
	{"uber", "Transportation"},
	{"amazon", "Shopping"},
	{"target", "Shopping"},
	{"netflix", "Entertainment"},
	{"spotify", "Entertainment"},
	{"electric", "Utilities"},
	{"water", "Utilities"},
}

// SuggestCategory proposes a category for a free-text transaction description.
func SuggestCategory(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return DefaultCategory
}
