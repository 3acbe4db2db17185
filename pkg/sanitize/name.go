package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unknown is returned by the name sanitizers when nothing usable remains.
const Unknown = "Unknown"

var (
	// compoundRe matches a standalone "and" or "&" joining two names.
	compoundRe = regexp.MustCompile(`(?i)` + wsClass + `*(?:\band\b|&)` + wsClass + `*`)
	slashRe    = regexp.MustCompile(`[/\\]`)
)

// maxNoiseLen is the longest trailing part after a compound delimiter that is
// treated as noise ("Bob and S." → "Bob").
const maxNoiseLen = 2

// maxInitialLen is the longest middle token kept verbatim as initials.
const maxInitialLen = 2

// FirstName normalizes a first-name field. Titles such as "Mr." or "Dr" are
// removed and compound names ("bob and sue") are rejoined as "Bob & Sue".
//
//	FirstName("mr. john")   // "John"
//	FirstName("bob and s.") // "Bob"
func FirstName(name string) string {
	s, ok := cleanName(name, roleFirst)
	if !ok {
		return Unknown
	}
	return orUnknown(joinCompound(s))
}

// LastName normalizes a last-name field. Suffixes (Jr, Sr, Esq) are removed
// and slash-separated names are capitalized per segment and joined with "/".
//
//	LastName(`smith\jones`) // "Smith/Jones"
func LastName(name string) string {
	s, ok := cleanName(name, roleLast)
	if !ok {
		return Unknown
	}
	if strings.ContainsAny(s, `/\`) {
		return orUnknown(joinSegments(slashRe.Split(s, -1), "/"))
	}
	return orUnknown(joinCompound(s))
}

// FullName normalizes a full name to "First M Last". Every token between the
// first and last word collapses to an initial; tokens of one or two
// characters are kept whole so existing initials like "PJ" survive.
//
//	FullName("mr. aaron patrick jennings spurlock jr.") // "Aaron PJ Spurlock"
func FullName(name string) string {
	s, ok := cleanName(name, roleFull)
	if !ok {
		return Unknown
	}

	tokens := strings.Fields(s)
	if len(tokens) == 1 {
		return capitalize(tokens[0])
	}

	first := capitalize(tokens[0])
	last := capitalize(tokens[len(tokens)-1])

	var middle strings.Builder
	for _, t := range tokens[1 : len(tokens)-1] {
		middle.WriteString(initial(t))
	}
	if middle.Len() == 0 {
		return first + " " + last
	}
	return first + " " + middle.String() + " " + last
}

// cleanName runs the shared pipeline: trim, strip terms, turn periods into
// spaces, drop trailing compound noise (first/full only) and collapse
// whitespace. ok is false when nothing is left.
func cleanName(name string, r role) (string, bool) {
	s := prepare(name)
	if s == "" {
		return "", false
	}

	s = stripTerms(s, r)
	s = strings.ReplaceAll(s, ".", " ")
	if r != roleLast {
		s = dropCompoundNoise(s)
	}
	s = collapseSpace(s)
	return s, s != ""
}

// dropCompoundNoise splits s at the first compound delimiter and keeps only
// the part before it when the remainder is too short to be a name.
func dropCompoundNoise(s string) string {
	loc := compoundRe.FindStringIndex(s)
	if loc == nil {
		return s
	}
	rest := strings.TrimSpace(s[loc[1]:])
	if utf8.RuneCountInString(rest) <= maxNoiseLen {
		return s[:loc[0]]
	}
	return s
}

// joinCompound capitalizes each person in a compound name and joins them
// with " & ". Names without a delimiter are capitalized whole.
func joinCompound(s string) string {
	if !compoundRe.MatchString(s) {
		return capitalizeWords(s)
	}
	return joinSegments(compoundRe.Split(s, -1), " & ")
}

// initial reduces a middle token to its initial block.
func initial(token string) string {
	if utf8.RuneCountInString(token) <= maxInitialLen {
		return strings.ToUpper(token)
	}
	r, _ := utf8.DecodeRuneInString(token)
	return string(unicode.ToUpper(r))
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
