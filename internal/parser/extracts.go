package parser

import (
	"io"

	"fecflow/internal/models"
)

// Column positions are 1-based and fixed by the publisher's file
// descriptions for the cycle; everything unselected is dropped.
var (
	// CandidateSpec selects from the candidate summary extract.
	CandidateSpec = &Spec{
		Name: "candidates",
		Columns: []Column{
			{Pos: 1, Name: "candidate_id", Type: String},
			{Pos: 2, Name: "name", Type: String},
			{Pos: 5, Name: "party", Type: String},
			{Pos: 11, Name: "cash_on_hand", Type: Decimal},
			{Pos: 19, Name: "state", Type: String},
		},
	}

	// CommitteeSpec selects from the committee master extract.
	CommitteeSpec = &Spec{
		Name: "committees",
		Columns: []Column{
			{Pos: 1, Name: "committee_id", Type: String},
			{Pos: 11, Name: "party", Type: String},
			{Pos: 15, Name: "candidate_id", Type: String},
		},
	}

	// ContributionSpec selects from the individual-contributions
	// extract.
	ContributionSpec = &Spec{
		Name: "contributions",
		Columns: []Column{
			{Pos: 1, Name: "committee_id", Type: String},
			{Pos: 12, Name: "employer", Type: String},
			{Pos: 13, Name: "occupation", Type: String},
			{Pos: 14, Name: "date", Type: Date},
			{Pos: 15, Name: "amount", Type: Decimal},
		},
	}
)

// LoadCandidates parses the candidate summary extract into typed
// rows. Party stays raw here; normalization is a separate stage.
func LoadCandidates(r io.Reader) ([]models.Candidate, *Stats, error) {
	records, stats, err := NewParser(CandidateSpec).Parse(r)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]models.Candidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, models.Candidate{
			ID:         rec.Strings["candidate_id"],
			Name:       rec.Strings["name"],
			RawParty:   rec.Strings["party"],
			CashOnHand: rec.Decimals["cash_on_hand"],
			State:      rec.Strings["state"],
		})
	}

	return candidates, stats, nil
}

// LoadCommittees parses the committee master extract.
func LoadCommittees(r io.Reader) ([]models.Committee, *Stats, error) {
	records, stats, err := NewParser(CommitteeSpec).Parse(r)
	if err != nil {
		return nil, nil, err
	}

	committees := make([]models.Committee, 0, len(records))
	for _, rec := range records {
		committees = append(committees, models.Committee{
			ID:          rec.Strings["committee_id"],
			RawParty:    rec.Strings["party"],
			CandidateID: rec.Strings["candidate_id"],
		})
	}

	return committees, stats, nil
}

// LoadContributions parses the individual-contributions extract.
func LoadContributions(r io.Reader) ([]models.Contribution, *Stats, error) {
	records, stats, err := NewParser(ContributionSpec).Parse(r)
	if err != nil {
		return nil, nil, err
	}

	contributions := make([]models.Contribution, 0, len(records))
	for _, rec := range records {
		contributions = append(contributions, models.Contribution{
			CommitteeID: rec.Strings["committee_id"],
			Employer:    rec.Strings["employer"],
			Occupation:  rec.Strings["occupation"],
			Date:        rec.Dates["date"],
			Amount:      rec.Decimals["amount"],
		})
	}

	return contributions, stats, nil
}
