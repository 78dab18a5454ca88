package models

import "github.com/shopspring/decimal"

// Candidate is one row of the per-cycle candidate summary extract.
// Loaded once per run and never mutated.
type Candidate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	RawParty   string          `json:"rawParty"`
	Party      Party           `json:"party"`
	CashOnHand decimal.Decimal `json:"cashOnHand"`
	State      string          `json:"state"`
}
