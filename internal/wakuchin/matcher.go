package wakuchin

import "regexp"

// Matches reports whether candidate matches regex. regexp.Regexp is
// safe for concurrent use by multiple goroutines, so the same compiled
// regex can be shared by reference among all workers without external
// synchronization.
func Matches(candidate string, regex *regexp.Regexp) bool {
	return regex.MatchString(candidate)
}
