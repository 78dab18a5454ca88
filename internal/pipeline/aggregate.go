package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"fecflow/internal/models"
)

// PartyCash is one row of the party cash-on-hand ranking.
type PartyCash struct {
	Party      models.Party
	Total      decimal.Decimal
	Candidates int
}

// TopPartiesByCash groups candidates by normalized party, sums cash
// on hand, and returns the top n parties by total, descending. Rows
// without a party are excluded. Ties on the total break by party
// label ascending so output is deterministic.
func TopPartiesByCash(candidates []models.Candidate, n int) []PartyCash {
	totals := make(map[models.Party]*PartyCash)

	for _, c := range candidates {
		if c.Party == models.NoParty {
			continue
		}

		row, ok := totals[c.Party]
		if !ok {
			row = &PartyCash{Party: c.Party}
			totals[c.Party] = row
		}

		row.Total = row.Total.Add(c.CashOnHand)
		row.Candidates++
	}

	ranked := make([]PartyCash, 0, len(totals))
	for _, row := range totals {
		ranked = append(ranked, *row)
	}

	sort.Slice(ranked, func(i, j int) bool {
		cmp := ranked[i].Total.Cmp(ranked[j].Total)
		if cmp != 0 {
			return cmp > 0
		}

		return ranked[i].Party.String() < ranked[j].Party.String()
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// Crosstab is the wide-form quarter-by-party count table. Parties is
// the fixed column order; every (quarter, party) cell exists, absent
// combinations as zero.
type Crosstab struct {
	Quarters []string
	Parties  []models.Party
	counts   map[string]map[models.Party]int
}

// Count returns the cell for a quarter and party; zero when the pair
// never occurred.
func (ct *Crosstab) Count(quarter string, p models.Party) int {
	return ct.counts[quarter][p]
}

// QuarterCrosstab buckets donations into calendar quarters and
// counts per (quarter, party), pivoted wide over the fixed
// committee-party columns. Rows must already be party-filtered
// (WithParty); dateless rows are skipped. Quarters sort
// chronologically, which for the 4-digit-year labels is lexical
// order.
func QuarterCrosstab(rows []models.Donation) *Crosstab {
	counts := make(map[string]map[models.Party]int)

	for _, d := range rows {
		q := d.Quarter()
		if q == "" {
			continue
		}

		if counts[q] == nil {
			counts[q] = make(map[models.Party]int)

			// Zero-fill the full column set for the new row.
			for _, p := range models.CommitteeParties {
				counts[q][p] = 0
			}
		}

		counts[q][d.CommitteeParty]++
	}

	quarters := make([]string, 0, len(counts))
	for q := range counts {
		quarters = append(quarters, q)
	}

	sort.Strings(quarters)

	return &Crosstab{
		Quarters: quarters,
		Parties:  models.CommitteeParties,
		counts:   counts,
	}
}

// Totals is the pre-join summary over the raw contribution extract.
// It keeps unmatched rows visible: a contribution whose committee
// never resolves is excluded from party aggregates but still counted
// here.
type Totals struct {
	Count  int
	Amount decimal.Decimal
}

// RawTotals computes the raw contribution count and amount sum.
func RawTotals(contribs []models.Contribution) Totals {
	t := Totals{}

	for _, c := range contribs {
		t.Count++
		t.Amount = t.Amount.Add(c.Amount)
	}

	return t
}
