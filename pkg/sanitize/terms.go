package sanitize

import "regexp"

// role selects which term tables apply to a name.
type role int

const (
	roleFirst role = iota
	roleLast
	roleFull
)

// firstNameTerms are honorifics stripped from the front of first and full names.
// "mrs" must precede "mr" so the longer literal is tried first.
var firstNameTerms = []string{
	"mrs", "mr", "ms", "miss", "dr", "prof", "rev",
	"sho", // single home owner
}

// lastNameTerms are generational and professional suffixes.
var lastNameTerms = []string{"jr", "sr", "esq"}

// termPattern removes one whole-word term, an optional trailing period and
// any whitespace after it.
type termPattern struct {
	term string
	re   *regexp.Regexp
}

func compileTerms(terms []string) []termPattern {
	out := make([]termPattern, len(terms))
	for i, t := range terms {
		out[i] = termPattern{
			term: t,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t) + `\b\.?` + wsClass + `*`),
		}
	}
	return out
}

var (
	firstPatterns = compileTerms(firstNameTerms)
	lastPatterns  = compileTerms(lastNameTerms)
	fullPatterns  = append(append([]termPattern{}, firstPatterns...), lastPatterns...)
)

// termsFor returns the ordered patterns applied to a name of the given role.
func termsFor(r role) []termPattern {
	switch r {
	case roleFirst:
		return firstPatterns
	case roleLast:
		return lastPatterns
	default:
		return fullPatterns
	}
}

// stripTerms removes every occurrence of every applicable term.
func stripTerms(s string, r role) string {
	for _, p := range termsFor(r) {
		s = p.re.ReplaceAllString(s, "")
	}
	return s
}
