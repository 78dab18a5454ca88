// Package normalizer collapses raw categorical and free-text fields
// from the bulk extracts into the forms the reports use.
package normalizer

import (
	"strings"

	"fecflow/internal/models"
)

// candidateAliases maps uppercased candidate-level affiliation codes
// to the five-way label set. Unmapped non-empty values become Other.
var candidateAliases = map[string]models.Party{
	"DEM":         models.Democrat,
	"DEMOCRAT":    models.Democrat,
	"DEMOCRATIC":  models.Democrat,
	"REP":         models.Republican,
	"REPUBLICAN":  models.Republican,
	"GOP":         models.Republican,
	"IND":         models.Independent,
	"INDEPENDENT": models.Independent,
	"LIB":         models.Libertarian,
	"LIBERTARIAN": models.Libertarian,
}

// committeeAliases is the coarser three-way table used for committee
// affiliations, which are sparser in the source data. Kept separate
// from candidateAliases on purpose: the crosstab reports depend on
// the three-way split.
var committeeAliases = map[string]models.Party{
	"DEM":        models.Democrat,
	"DEMOCRAT":   models.Democrat,
	"DEMOCRATIC": models.Democrat,
	"REP":        models.Republican,
	"REPUBLICAN": models.Republican,
	"GOP":        models.Republican,
}

// CandidateParty maps a raw candidate affiliation to the five-way
// label set. The mapping is total: empty input stays NoParty, known
// aliases map explicitly, everything else is Other. Case is
// normalized before lookup, and already-normalized labels map to
// themselves.
func CandidateParty(raw string) models.Party {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return models.NoParty
	}

	if p, ok := candidateAliases[key]; ok {
		return p
	}

	return models.OtherParty
}

// CommitteeParty maps a raw committee affiliation to the three-way
// label set {Democrat, Republican, Other}; empty stays NoParty.
func CommitteeParty(raw string) models.Party {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return models.NoParty
	}

	if p, ok := committeeAliases[key]; ok {
		return p
	}

	return models.OtherParty
}
