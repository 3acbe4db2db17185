package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// wsClass matches any Unicode whitespace. RE2's \s alone is ASCII-only and
// misses \v, NBSP and the other \p{Z} separators common in CRM exports.
const wsClass = `[\s\v\x{85}\p{Z}]`

var spaceRe = regexp.MustCompile(wsClass + `+`)

// prepare trims s and composes it to NFC so combining marks travel with
// their base letter through capitalization.
func prepare(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// collapseSpace replaces whitespace runs with a single space and trims.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// capitalize upper-cases the first rune of word and lower-cases the rest.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// capitalizeWords capitalizes every whitespace-separated word and joins them
// with single spaces.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// joinSegments capitalizes each non-empty trimmed part independently and
// joins the survivors with sep.
func joinSegments(parts []string, sep string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, capitalizeWords(p))
	}
	return strings.Join(out, sep)
}
