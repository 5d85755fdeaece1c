// Package rules provides the keyword table driving categorization: an
// ordered mapping from category name to keyword phrases. Tables are built
// once and immutable afterwards, so they can be shared freely across runs.
package rules

import (
	"regexp"
	"strings"
)

// Category is one keyword rule: a category name and the ordered list of
// phrases that select it. The YAML tags match the categories.yaml format.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Table is an immutable, ordered keyword table. Declaration order is
// semantically meaningful: when keywords from two categories both match a
// description, the earlier-declared category wins.
type Table struct {
	categories []Category
	matchers   [][]*regexp.Regexp
}

// New builds a Table from ordered category rules, compiling a whole-word
// matcher per keyword. Matching is case-insensitive and requires a
// non-alphanumeric boundary on both ends of the phrase, so "rent" does not
// match inside "different".
func New(categories []Category) Table {
	t := Table{
		categories: make([]Category, len(categories)),
		matchers:   make([][]*regexp.Regexp, len(categories)),
	}
	copy(t.categories, categories)
	for i, c := range categories {
		t.matchers[i] = make([]*regexp.Regexp, len(c.Keywords))
		for j, kw := range c.Keywords {
			t.matchers[i][j] = compileKeyword(kw)
		}
	}
	return t
}

func compileKeyword(keyword string) *regexp.Regexp {
	phrase := regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(keyword)))
	return regexp.MustCompile(`(^|[^a-z0-9])` + phrase + `($|[^a-z0-9])`)
}

// Categories returns the category names in declaration order.
func (t Table) Categories() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of declared categories.
func (t Table) Len() int {
	return len(t.categories)
}

// Match scans categories in declaration order and each category's keywords
// in declared order, returning the name of the first category whose keyword
// occurs in the description as a whole word or phrase. The second return is
// false when nothing matched. The description is lower-cased here, so
// callers pass it as-is.
func (t Table) Match(description string) (string, bool) {
	desc := strings.ToLower(description)
	for i, c := range t.categories {
		for _, m := range t.matchers[i] {
			if m.MatchString(desc) {
				return c.Name, true
			}
		}
	}
	return "", false
}

// Default returns the built-in keyword table used when no categories.yaml is
// found.
func Default() Table {
	return New([]Category{
		{Name: "Income", Keywords: []string{"salary", "payroll", "deposit", "refund"}},
		{Name: "Groceries", Keywords: []string{"supermarket", "grocery", "coop", "migros", "aldi", "lidl"}},
		{Name: "Restaurants", Keywords: []string{"restaurant", "cafe", "pizzeria", "takeaway", "dining"}},
		{Name: "Housing", Keywords: []string{"rent", "mortgage", "landlord"}},
		{Name: "Utilities", Keywords: []string{"electric", "water", "gas", "utility", "internet", "phone bill"}},
		{Name: "Transport", Keywords: []string{"train", "bus", "taxi", "fuel", "parking", "sbb", "cff"}},
		{Name: "Shopping", Keywords: []string{"shop", "store", "amazon", "retail"}},
	})
}
