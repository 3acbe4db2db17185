package sanitize

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email lower-cases and trims an address. ok is false unless the result has
// the basic local@domain.tld shape.
func Email(email string) (string, bool) {
	s := strings.ToLower(prepare(email))
	if s == "" || !emailRe.MatchString(s) {
		return "", false
	}
	return s, true
}
