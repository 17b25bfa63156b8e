package engine

import (
	"strings"
	"unicode"
)

// rollupStates are the pre-aggregated "grand total" rows NCRB exports carry.
// Keeping them would double-count every aggregate, so the loader drops them.
var rollupStates = map[string]bool{
	"Total (All India)": true,
	"Total (States)":    true,
	"Total (Uts)":       true,
}

// geoStateNames maps dataset state labels to the names used by the India
// GeoJSON the dashboard renders its choropleth against.
var geoStateNames = map[string]string{
	"Odisha":          "Orissa",
	"Jammu & Kashmir": "Jammu and Kashmir",
	"A & N Islands":   "Andaman and Nicobar",
	"D & N Haveli":    "Dadra and Nagar Haveli",
	"Daman & Diu":     "Daman and Diu",
	"Delhi (Ut)":      "Delhi",
	"Uttarakhand":     "Uttaranchal",
}

// GeoStateName returns the GeoJSON-compatible name for a dataset state label.
func GeoStateName(state string) string {
	if geo, ok := geoStateNames[state]; ok {
		return geo
	}
	return state
}

// titleCase capitalizes the first letter of every word, lowercasing the rest.
// A word starts after any non-letter, so "JAMMU & KASHMIR" becomes
// "Jammu & Kashmir" and "total (all india)" becomes "Total (All India)".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
