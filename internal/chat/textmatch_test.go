package chat

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  What is a   Variable? ": "what is a variable",
		"WHAT-IS-A-LOOP":           "whatisaloop",
		"plain":                    "plain",
		"":                         "",
	}
	for in, want := range cases {
		if got := normalize(in); got != want {
			t.Errorf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q,%q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := similarity("What is a variable?", "what is a variable"); got != 1 {
		t.Errorf("punctuation/case should not matter, got %v", got)
	}
	if got := similarity("abc", "xyz"); got != 0 {
		t.Errorf("disjoint strings similarity = %v, want 0", got)
	}
}

func TestFallbackResponse(t *testing.T) {
	got := fallbackResponse("What is a variable?")
	if got == defaultFallback {
		t.Error("close question fell through to default")
	}
	if got := fallbackResponse("explain quantum entanglement in detail"); got != defaultFallback {
		t.Errorf("unrelated question matched a canned answer: %q", got)
	}
}
