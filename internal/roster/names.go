// Package roster reconciles the member roster against a service's
// check-in list: canonical name matching, the absentee set difference
// and the merge of free-text absence notes into the absence ledger.
package roster

import "strings"

// CanonicalName is the single normalization applied at every name
// comparison site: trim, collapse inner whitespace and case fold.  The
// source data keeps whatever capitalization it was entered with; only
// comparisons go through this function.
func CanonicalName(name string) string {
	fields := strings.Fields(name)
	return strings.ToLower(strings.Join(fields, " "))
}

// SameName reports whether two display names refer to the same person
// under canonical matching.
func SameName(a, b string) bool {
	return CanonicalName(a) == CanonicalName(b)
}
