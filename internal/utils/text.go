package utils

import "strings"

// accentReplacer maps accented Spanish characters to their plain form.
// Kept as a plain replacer so matching stays allocation-cheap.
var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"ü", "u", "Ü", "u", "ñ", "n", "Ñ", "n",
)

// Normalize lowercases s and strips Spanish accents.
func Normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// ContainsFold reports whether substr occurs in s, ignoring case and accents.
// Neighborhood names are typed with and without accents interchangeably, so
// location matching has to treat "Pichincha" and "pichinchá" the same.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Normalize(s), Normalize(substr))
}
