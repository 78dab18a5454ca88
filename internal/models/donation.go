package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Donation is the transient join of Contribution -> Committee ->
// Candidate. It exists only between the join stage and the reports;
// it is never persisted.
type Donation struct {
	CommitteeID    string          `json:"committeeId"`
	CandidateID    string          `json:"candidateId"`
	Employer       string          `json:"employer"`
	Occupation     string          `json:"occupation"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	CommitteeParty Party           `json:"committeeParty"`
	CandidateParty Party           `json:"candidateParty"`

	// MatchedCommittee and MatchedCandidate record whether each left
	// join found its key. Unmatched rows carry zero-valued downstream
	// fields and are dropped before any party-keyed aggregate.
	MatchedCommittee bool `json:"matchedCommittee"`
	MatchedCandidate bool `json:"matchedCandidate"`
}

// Quarter returns the calendar-quarter label for the donation date,
// e.g. "2005 Q1". Quarter boundaries are calendar-aligned.
func (d *Donation) Quarter() string {
	return QuarterLabel(d.Date)
}

// QuarterLabel formats a date as its calendar-quarter bucket.
func QuarterLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	q := (int(t.Month())-1)/3 + 1

	return fmt.Sprintf("%d Q%d", t.Year(), q)
}
