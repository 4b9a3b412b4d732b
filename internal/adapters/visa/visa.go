// Package visa holds a static advisory table standing in for a real
// visa-requirements lookup.
package visa

import "strings"

const fallbackAdvisory = "Visa requirements vary. Please check the embassy website."

type Directory struct {
	advisories map[string]string
}

func NewDirectory() *Directory {
	return &Directory{
		advisories: map[string]string{
			"Kazakhstan": "UAE travelers can get a visa-on-arrival. Stay up to 30 days.",
			"Japan":      "UAE travelers need a visa. Processing: 5-7 days. Cost: 120 AED.",
			"Thailand":   "Visa-on-arrival for UAE travelers. Fee: 100 AED.",
			"USA":        "UAE travelers need a B1/B2 visa. Interview required.",
			"France":     "Schengen visa required. Processing: 15 days.",
		},
	}
}

// Lookup is total: unknown destinations get the fallback advisory.
func (d *Directory) Lookup(destination string) string {
	if advisory, ok := d.advisories[strings.TrimSpace(destination)]; ok {
		return advisory
	}
	return fallbackAdvisory
}
