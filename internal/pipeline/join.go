// Package pipeline performs the relational steps of the report run:
// joining the three extracts, filtering to donor cohorts, and
// aggregating for the report tables. All inputs are read-only
// snapshots owned by the caller; every stage returns fresh slices.
package pipeline

import (
	"strings"

	"fecflow/internal/models"
)

// Join left-joins contributions to committees on committee ID, then
// the result to candidates on candidate ID. Every contribution
// survives; unmatched rows carry zero-valued downstream fields with
// their Matched flags cleared. Duplicate keys on the right side fan
// out rows; no deduplication is attempted.
func Join(contribs []models.Contribution, committees []models.Committee, candidates []models.Candidate) []models.Donation {
	committeeByID := make(map[string][]models.Committee, len(committees))
	for _, cm := range committees {
		committeeByID[cm.ID] = append(committeeByID[cm.ID], cm)
	}

	candidateByID := make(map[string][]models.Candidate, len(candidates))
	for _, cd := range candidates {
		candidateByID[cd.ID] = append(candidateByID[cd.ID], cd)
	}

	donations := make([]models.Donation, 0, len(contribs))

	for _, ct := range contribs {
		base := models.Donation{
			CommitteeID: ct.CommitteeID,
			Employer:    ct.Employer,
			Occupation:  ct.Occupation,
			Date:        ct.Date,
			Amount:      ct.Amount,
		}

		matched := committeeByID[ct.CommitteeID]
		if len(matched) == 0 {
			donations = append(donations, base)

			continue
		}

		for _, cm := range matched {
			d := base
			d.MatchedCommittee = true
			d.CommitteeParty = cm.Party
			d.CandidateID = cm.CandidateID

			cands := candidateByID[cm.CandidateID]
			if cm.CandidateID == "" || len(cands) == 0 {
				donations = append(donations, d)

				continue
			}

			for _, cd := range cands {
				dd := d
				dd.MatchedCandidate = true
				dd.CandidateParty = cd.Party
				donations = append(donations, dd)
			}
		}
	}

	return donations
}

// ByEmployer keeps rows whose employer exactly matches the literal.
func ByEmployer(rows []models.Donation, employer string) []models.Donation {
	var out []models.Donation

	for _, d := range rows {
		if d.Employer == employer {
			out = append(out, d)
		}
	}

	return out
}

// ByOccupation keeps rows whose occupation contains the literal
// token. The match is case-sensitive; the extracts publish
// occupations uppercased.
func ByOccupation(rows []models.Donation, token string) []models.Donation {
	var out []models.Donation

	for _, d := range rows {
		if strings.Contains(d.Occupation, token) {
			out = append(out, d)
		}
	}

	return out
}

// WithParty drops rows whose resolved committee party is absent.
// This is a hard filter applied before any party-keyed aggregate,
// not an extra bucket: unmatched joins and blank affiliations both
// land here.
func WithParty(rows []models.Donation) []models.Donation {
	var out []models.Donation

	for _, d := range rows {
		if d.CommitteeParty != models.NoParty {
			out = append(out, d)
		}
	}

	return out
}
