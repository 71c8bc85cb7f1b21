// Package country resolves ISO 3166-1 alpha-2 country codes to their
// alpha-3 equivalents.
//
// The table is static and read-only, so every function here is safe for
// concurrent use and needs no memoization.
package country

import "strings"

// Country is one ISO 3166-1 entry.
type Country struct {
	Alpha2 string
	Alpha3 string
	Name   string
}

// Resolve maps a 2-letter country code to its 3-letter code.
// Unknown, empty or malformed codes return ("", false). Lookup ignores
// ASCII case and surrounding whitespace.
func Resolve(code string) (string, bool) {
	c, ok := Lookup(code)
	if !ok {
		return "", false
	}
	return c.Alpha3, true
}

// Lookup returns the full table entry for a 2-letter code.
func Lookup(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return Country{}, false
	}
	c, ok := iso3166[code]
	return c, ok
}

// Name returns the English short name for a 2-letter code, or the code
// itself when it is not in the table.
func Name(code string) string {
	if c, ok := Lookup(code); ok {
		return c.Name
	}
	return code
}

// Count returns the number of entries in the table.
func Count() int {
	return len(iso3166)
}
