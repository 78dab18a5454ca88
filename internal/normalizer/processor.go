package normalizer

import "fecflow/internal/models"

// Processor applies normalization to freshly parsed extracts. Inputs
// are treated as immutable snapshots; normalized copies are returned
// and the parsed slices are never written to.
type Processor struct {
	normalizer *Normalizer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		normalizer: NewNormalizer(),
	}
}

// Candidates returns a normalized copy of the candidate rows: party
// collapsed to the five-way label set, name title-cased for display.
func (p *Processor) Candidates(in []models.Candidate) []models.Candidate {
	out := make([]models.Candidate, len(in))

	for i, c := range in {
		c.Party = CandidateParty(c.RawParty)
		c.Name = p.normalizer.TitleCase(c.Name)
		out[i] = c
	}

	return out
}

// Contributions returns a normalized copy of the contribution rows
// with employer and occupation uppercased, collapsing case-based
// duplicates before the cohort predicates run. The predicates
// themselves stay case-sensitive.
func (p *Processor) Contributions(in []models.Contribution) []models.Contribution {
	out := make([]models.Contribution, len(in))

	for i, c := range in {
		c.Employer = p.normalizer.UpperCase(c.Employer)
		c.Occupation = p.normalizer.UpperCase(c.Occupation)
		out[i] = c
	}

	return out
}

// Committees returns a normalized copy of the committee rows with
// party collapsed to the three-way label set.
func (p *Processor) Committees(in []models.Committee) []models.Committee {
	out := make([]models.Committee, len(in))

	for i, c := range in {
		c.Party = CommitteeParty(c.RawParty)
		out[i] = c
	}

	return out
}
