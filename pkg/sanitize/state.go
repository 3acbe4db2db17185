package sanitize

import "strings"

// stateCodes holds USPS codes for the states, DC, territories, freely
// associated states and armed-forces mail regions.
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {},

	// Territories
	"AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {}, "UM": {},

	// Freely associated states
	"FM": {}, "MH": {}, "PW": {},

	// Armed forces
	"AA": {}, "AE": {}, "AP": {},
}

// State upper-cases a two-letter state code and checks it against the USPS
// list. Full state names are not translated.
func State(state string) (string, bool) {
	s := strings.ToUpper(prepare(state))
	if _, ok := stateCodes[s]; !ok {
		return "", false
	}
	return s, true
}
