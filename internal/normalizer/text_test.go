package normalizer

import "testing"

func TestTitleCase(t *testing.T) {
	n := NewNormalizer()

	cases := []struct {
		in   string
		want string
	}{
		{"OBAMA, BARACK", "Obama, Barack"},
		{"smith, john a", "Smith, John A"},
		{"  KENNEDY, EDWARD M  ", "Kennedy, Edward M"},
		{"Already Title", "Already Title"},
		{"", ""},
	}

	for _, c := range cases {
		if got := n.TitleCase(c.in); got != c.want {
			t.Errorf("TitleCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	n := NewNormalizer()

	for _, in := range []string{"HARVARD UNIVERSITY", "obama, barack", "McCain, John"} {
		once := n.TitleCase(in)
		twice := n.TitleCase(once)

		if once != twice {
			t.Errorf("TitleCase not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestUpperCase(t *testing.T) {
	n := NewNormalizer()

	if got := n.UpperCase("  Harvard University "); got != "HARVARD UNIVERSITY" {
		t.Errorf("UpperCase = %q, want HARVARD UNIVERSITY", got)
	}
}
