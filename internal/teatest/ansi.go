package teatest

import "regexp"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes terminal escape sequences so views can be matched as
// plain text.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
