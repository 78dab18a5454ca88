package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is one row of the individual-contributions extract.
// There is no unique key; the extract is an append-only fact table
// for the cycle.
type Contribution struct {
	CommitteeID string          `json:"committeeId"`
	Employer    string          `json:"employer"`
	Occupation  string          `json:"occupation"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}
