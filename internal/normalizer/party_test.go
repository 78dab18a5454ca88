package normalizer

import (
	"testing"

	"fecflow/internal/models"
)

func TestCandidateParty_KnownAliases(t *testing.T) {
	cases := []struct {
		raw  string
		want models.Party
	}{
		{"DEM", models.Democrat},
		{"DEMOCRAT", models.Democrat},
		{"DEMOCRATIC", models.Democrat},
		{"REP", models.Republican},
		{"GOP", models.Republican},
		{"IND", models.Independent},
		{"LIB", models.Libertarian},
		{"LIBERTARIAN", models.Libertarian},
	}

	for _, c := range cases {
		if got := CandidateParty(c.raw); got != c.want {
			t.Errorf("CandidateParty(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestCandidateParty_CaseInsensitive(t *testing.T) {
	for _, raw := range []string{"dem", "DEM", "Dem", "  dem "} {
		if got := CandidateParty(raw); got != models.Democrat {
			t.Errorf("CandidateParty(%q) = %v, want Democrat", raw, got)
		}
	}
}

func TestCandidateParty_UnmappedGoesToOther(t *testing.T) {
	for _, raw := range []string{"GRE", "DFL", "UNK", "W", "SOCIALIST"} {
		if got := CandidateParty(raw); got != models.OtherParty {
			t.Errorf("CandidateParty(%q) = %v, want Other", raw, got)
		}
	}
}

func TestCandidateParty_EmptyStaysAbsent(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		if got := CandidateParty(raw); got != models.NoParty {
			t.Errorf("CandidateParty(%q) = %v, want NoParty", raw, got)
		}
	}
}

func TestCandidateParty_ClosedSet(t *testing.T) {
	inputs := []string{"DEM", "REP", "IND", "LIB", "GRE", "", "garbage", "123"}

	valid := map[models.Party]bool{
		models.NoParty:     true,
		models.Democrat:    true,
		models.Republican:  true,
		models.Independent: true,
		models.Libertarian: true,
		models.OtherParty:  true,
	}

	for _, raw := range inputs {
		if got := CandidateParty(raw); !valid[got] {
			t.Errorf("CandidateParty(%q) = %v, outside the closed label set", raw, got)
		}
	}
}

func TestCandidateParty_Idempotent(t *testing.T) {
	for _, raw := range []string{"DEM", "rep", "IND", "LIB", "GRE", ""} {
		once := CandidateParty(raw)
		twice := CandidateParty(once.String())

		// NoParty renders as "", which maps back to NoParty.
		if once != twice {
			t.Errorf("CandidateParty not idempotent for %q: first %v, second %v", raw, once, twice)
		}
	}
}

func TestCommitteeParty_ThreeWayCollapse(t *testing.T) {
	cases := []struct {
		raw  string
		want models.Party
	}{
		{"DEM", models.Democrat},
		{"dem", models.Democrat},
		{"REP", models.Republican},
		{"GOP", models.Republican},
		{"IND", models.OtherParty},
		{"LIB", models.OtherParty},
		{"GRE", models.OtherParty},
		{"", models.NoParty},
	}

	for _, c := range cases {
		if got := CommitteeParty(c.raw); got != c.want {
			t.Errorf("CommitteeParty(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}
