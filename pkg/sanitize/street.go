package sanitize

import (
	"regexp"
	"strings"
)

// streetSuffixes maps USPS street suffixes, spelled out or abbreviated, to
// their standard abbreviation.
var streetSuffixes = map[string]string{
	"avenue":    "Ave",
	"boulevard": "Blvd",
	"circle":    "Cir",
	"court":     "Ct",
	"drive":     "Dr",
	"lane":      "Ln",
	"parkway":   "Pkwy",
	"place":     "Pl",
	"road":      "Rd",
	"street":    "St",
	"terrace":   "Ter",
	"way":       "Way",

	"ave":  "Ave",
	"blvd": "Blvd",
	"cir":  "Cir",
	"ct":   "Ct",
	"dr":   "Dr",
	"ln":   "Ln",
	"pkwy": "Pkwy",
	"pl":   "Pl",
	"rd":   "Rd",
	"st":   "St",
	"ter":  "Ter",
}

// directions maps compass words and their abbreviations to USPS directionals.
var directions = map[string]string{
	"north":     "N",
	"south":     "S",
	"east":      "E",
	"west":      "W",
	"northeast": "NE",
	"northwest": "NW",
	"southeast": "SE",
	"southwest": "SW",

	"n":  "N",
	"s":  "S",
	"e":  "E",
	"w":  "W",
	"ne": "NE",
	"nw": "NW",
	"se": "SE",
	"sw": "SW",
}

var (
	streetDisallowedRe = regexp.MustCompile(`[^a-zA-Z0-9\s#\-./]`)
	houseNumberRe      = regexp.MustCompile(`^\d+(?:/\d+)?$`)
)

// Street normalizes a street address line. Suffixes and directionals are
// abbreviated wherever they appear in the line, unit numbers ("#2b") are
// upper-cased, house numbers and fractions ("1/2") are kept, and every other
// word is capitalized.
//
//	Street("789 northwest 1st avenue #2b") // "789 NW 1st Ave #2B"
func Street(address string) string {
	s := spaceRe.ReplaceAllString(prepare(address), " ")
	s = streetDisallowedRe.ReplaceAllString(s, "")

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = streetWord(w)
	}
	return strings.Join(words, " ")
}

func streetWord(w string) string {
	lower := strings.ToLower(w)
	if abbr, ok := streetSuffixes[lower]; ok {
		return abbr
	}
	if abbr, ok := directions[lower]; ok {
		return abbr
	}
	if strings.HasPrefix(w, "#") {
		return strings.ToUpper(w)
	}
	if houseNumberRe.MatchString(w) {
		return w
	}
	return capitalize(w)
}
