package models

import (
	"testing"
	"time"
)

func TestQuarterLabel(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC), "2005 Q1"},
		{time.Date(2005, time.March, 31, 0, 0, 0, 0, time.UTC), "2005 Q1"},
		{time.Date(2005, time.April, 1, 0, 0, 0, 0, time.UTC), "2005 Q2"},
		{time.Date(2006, time.September, 15, 0, 0, 0, 0, time.UTC), "2006 Q3"},
		{time.Date(2006, time.December, 31, 0, 0, 0, 0, time.UTC), "2006 Q4"},
		{time.Time{}, ""},
	}

	for _, c := range cases {
		if got := QuarterLabel(c.date); got != c.want {
			t.Errorf("QuarterLabel(%v) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestParty_String(t *testing.T) {
	cases := map[Party]string{
		Democrat:    "Democrat",
		Republican:  "Republican",
		Independent: "Independent",
		Libertarian: "Libertarian",
		OtherParty:  "Other",
		NoParty:     "",
	}

	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", p, got, want)
		}
	}
}
