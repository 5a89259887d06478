package reconcile

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Matcher decides how an item name is found in detected text and label
// descriptions. Both inputs are already lower-cased by the engine.
type Matcher interface {
	// CountOccurrences returns the number of non-overlapping occurrences of
	// name in text.
	CountOccurrences(text, name string) int
	// Contains reports whether a label description mentions name.
	Contains(description, name string) bool
}

// SubstringMatcher matches names as literal substrings. Names are not word
// bounded: "axe" is found inside "waxed".
type SubstringMatcher struct{}

func (SubstringMatcher) CountOccurrences(text, name string) int {
	if text == "" || name == "" {
		return 0
	}

	re, err := regexp2.Compile(regexp2.Escape(name), regexp2.None)
	if err != nil {
		// An escaped literal always compiles; fall back to a plain count anyway.
		return strings.Count(text, name)
	}

	count := 0
	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		count++
		m, err = re.FindNextMatch(m)
	}

	return count
}

func (SubstringMatcher) Contains(description, name string) bool {
	return strings.Contains(description, name)
}
