package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer handles display-text normalization for parsed records.
type Normalizer struct {
	titleCaser cases.Caser
}

// NewNormalizer creates a new normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		titleCaser: cases.Title(language.English),
	}
}

// TitleCase maps a free-text name field to title case for display.
// Purely cosmetic: joins use IDs, never names, so this cannot affect
// join correctness. Idempotent.
func (n *Normalizer) TitleCase(s string) string {
	return n.titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
}

// UpperCase collapses case-based duplicates in categorical and
// predicate fields (employer, occupation) before matching.
func (n *Normalizer) UpperCase(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
