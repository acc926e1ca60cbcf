package pricer

import "strings"

const (
	currencySymbol = "Kč"
	currencyCode   = "CZK"
)

// NormalizePrice canonicalizes a displayed price string: interior whitespace
// runs (including non-breaking spaces) collapse to a single ASCII space, the
// result is trimmed, and the local currency symbol is replaced with its
// three-letter code. Pure and idempotent; whitespace-only input yields "".
func NormalizePrice(raw string) string {
	cleaned := strings.ReplaceAll(raw, " ", " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.ReplaceAll(cleaned, currencySymbol, currencyCode)
}
