package models

// Party is the closed set of normalized party labels. Every raw
// affiliation string maps to exactly one Party; NoParty marks an
// absent value and is excluded from party-keyed aggregates.
type Party int

// Normalized party labels.
const (
	NoParty Party = iota
	Democrat
	Republican
	Independent
	Libertarian
	OtherParty
)

// String returns the display label for the party.
func (p Party) String() string {
	switch p {
	case Democrat:
		return "Democrat"
	case Republican:
		return "Republican"
	case Independent:
		return "Independent"
	case Libertarian:
		return "Libertarian"
	case OtherParty:
		return "Other"
	case NoParty:
		return ""
	}

	return ""
}

// CommitteeParties is the fixed column order for committee-level
// crosstabs and charts.
var CommitteeParties = []Party{Democrat, Republican, OtherParty}
