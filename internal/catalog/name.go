package catalog

import "strings"

// nameMatcher holds the lowercased whitespace-separated tokens of a name
// query. A key matches when every token occurs in it in order, each one
// after the end of the previous match, with anything in between.
type nameMatcher []string

func newNameMatcher(name string) nameMatcher {
	return strings.Fields(strings.ToLower(name))
}

func (m nameMatcher) matches(key string) bool {
	rest := key
	for _, token := range m {
		at := strings.Index(rest, token)
		if at < 0 {
			return false
		}
		rest = rest[at+len(token):]
	}
	return true
}
