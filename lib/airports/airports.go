// Package airports normalizes user-supplied airport input: 3-letter codes
// pass through uppercased, and common city names resolve to their metro
// codes, tolerating small misspellings.
package airports

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// city names are matched after whitespace normalization and uppercasing.
var cityCodes = map[string]string{
	"NEW YORK":      "NYC",
	"LOS ANGELES":   "LAX",
	"CHICAGO":       "CHI",
	"MIAMI":         "MIA",
	"SAN FRANCISCO": "SFO",
	"SEATTLE":       "SEA",
	"BOSTON":        "BOS",
	"WASHINGTON":    "WAS",
	"ATLANTA":       "ATL",
	"DENVER":        "DEN",
	"DALLAS":        "DFW",
	"HOUSTON":       "HOU",
	"PHOENIX":       "PHX",
	"LAS VEGAS":     "LAS",
	"ORLANDO":       "MCO",
}

// minimum Jaro-Winkler similarity for a misspelled city name to resolve.
const fuzzyThreshold = 0.9

func normalize(input string) string {
	return strings.ToUpper(strings.Join(strings.Fields(input), " "))
}

// Resolve maps arbitrary airport input to an uppercased code or city name.
// Known city names (including near-miss spellings) become metro codes;
// everything else is returned uppercased so site adapters can deal with it.
func Resolve(input string) string {
	name := normalize(input)
	if name == "" {
		return ""
	}
	if len(name) == 3 {
		return name
	}

	if code, ok := cityCodes[name]; ok {
		return code
	}

	bestCode := ""
	bestScore := 0.0
	for city, code := range cityCodes {
		score := matchr.JaroWinkler(name, city, false)
		if score > bestScore {
			bestScore = score
			bestCode = code
		}
	}
	if bestScore >= fuzzyThreshold {
		return bestCode
	}

	return name
}
