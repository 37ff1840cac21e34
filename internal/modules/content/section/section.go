// Package section defines the closed set of blog categories and the
// predicates used for routing and filtering. Comparison is always
// case-insensitive; the canonical form is upper-case.
package section

import "strings"

// Section is one of the four known blog categories.
type Section string

const (
	DSA        Section = "DSA"
	Java       Section = "JAVA"
	SpringBoot Section = "SPRINGBOOT"
	AWS        Section = "AWS"
)

// All lists every valid section in display order.
var All = []Section{DSA, Java, SpringBoot, AWS}

// Normalize maps an arbitrary-cased value onto its canonical Section.
// The second return is false for anything outside the enumeration.
func Normalize(value string) (Section, bool) {
	candidate := Section(strings.ToUpper(strings.TrimSpace(value)))
	for _, s := range All {
		if s == candidate {
			return s, true
		}
	}
	return "", false
}

// IsValid reports whether value names a known section, ignoring case.
func IsValid(value string) bool {
	_, ok := Normalize(value)
	return ok
}

// Matches reports whether a post's stored section value belongs to s.
// An empty stored value matches nothing: posts without a section are
// excluded from every section filter, there is no implicit bucket.
func (s Section) Matches(stored string) bool {
	if stored == "" {
		return false
	}
	return strings.ToUpper(stored) == string(s)
}
