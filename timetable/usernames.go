package timetable

import (
	"regexp"
	"strings"
)

// usernames follow the school's firstname.lastname convention with an
// optional disambiguating digit suffix
var usernamePattern = regexp.MustCompile(`^[a-zA-Z]+\.[a-zA-Z]+\d*$`)

// ValidUsername reports whether an identifier may be sent upstream.
// Anything else fails before any network request happens.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// Shortcuts rewrites well known abbreviations to canonical identifiers.
// The table is plain configuration data, keys match case insensitively.
type Shortcuts map[string]string

// Normalize resolves an identifier through the shortcut table, returning
// the input unchanged when no shortcut matches.
func (s Shortcuts) Normalize(input string) string {
	if canonical, ok := s[strings.ToLower(input)]; ok {
		return canonical
	}
	return input
}
