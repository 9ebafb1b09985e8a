package scoring

import (
	"strings"
	"testing"

	"github.com/legalmind-ai/legalmind/internal/domain"
)

func TestScore_PhraseAndTerms(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name  string
		query string
		text  string
		want  int
	}{
		{
			name:  "exact phrase plus both terms",
			query: "right to equality",
			text:  "The right to equality is fundamental.",
			want:  100 + 2*10, // phrase + "right" + "equality" ("to" is too short)
		},
		{
			name:  "terms only, phrase absent",
			query: "equality right",
			text:  "The right to equality is fundamental.",
			want:  2 * 10,
		},
		{
			name:  "single term",
			query: "equality",
			text:  "Equality before the law.",
			want:  100 + 10, // a one-term query is also its own phrase
		},
		{
			name:  "no match",
			query: "habeas corpus",
			text:  "The right to equality is fundamental.",
			want:  0,
		},
		{
			name:  "short tokens only match via phrase",
			query: "is a",
			text:  "this is a test",
			want:  100,
		},
		{
			name:  "case insensitive",
			query: "RIGHT TO EQUALITY",
			text:  "the right to equality",
			want:  100 + 2*10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := domain.NewQuery(tt.query)
			if got := w.Score(q, tt.text); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.query, tt.text, got, tt.want)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	w := DefaultWeights()
	q := domain.NewQuery("freedom of speech and expression")
	text := "Freedom of speech and expression is guaranteed.\n\nRestrictions apply."

	first := w.Score(q, text)
	for i := 0; i < 10; i++ {
		if got := w.Score(q, text); got != first {
			t.Fatalf("score changed between calls: %d != %d", got, first)
		}
	}
	if first < 0 {
		t.Errorf("score must be non-negative, got %d", first)
	}
}

func TestScore_PhraseBeatsNonPhrase(t *testing.T) {
	w := DefaultWeights()
	q := domain.NewQuery("right to equality")

	with := w.Score(q, "The right to equality is fundamental.")
	without := w.Score(q, "The equality right is fundamental.")
	if with <= without {
		t.Errorf("phrase-bearing text must outscore the rest: %d <= %d", with, without)
	}
}

func TestBestPassage_PicksHighestBlock(t *testing.T) {
	w := DefaultWeights()
	text := "Preamble text about the constitution.\n\n" +
		"The right to equality is fundamental.\n\n" +
		"Directive principles of state policy."

	passage, score := w.BestPassage(domain.NewQuery("right to equality"), text)
	if passage != "The right to equality is fundamental." {
		t.Errorf("wrong passage: %q", passage)
	}
	if score != 100+2*10 {
		t.Errorf("wrong score: %d", score)
	}
}

func TestBestPassage_FallbackWhenPhraseSpansBoundary(t *testing.T) {
	w := DefaultWeights()
	// Query tokens are all under the term-length cutoff, so only the
	// exact-phrase bonus can fire — and the phrase crosses the blank line,
	// so no single passage matches.
	text := "end of\n\nto be"

	passage, score := w.BestPassage(domain.NewQuery("of\n\nto"), text)
	if score != w.Phrase {
		t.Fatalf("expected whole-document fallback score %d, got %d", w.Phrase, score)
	}
	if !strings.HasPrefix(text, passage) {
		t.Errorf("fallback passage should be a document prefix, got %q", passage)
	}
}

func TestBestPassage_FallbackPrefixBounded(t *testing.T) {
	w := DefaultWeights()
	w.FallbackPrefixLen = 10
	text := "liberty\n\n" + strings.Repeat("x", 100)

	passage, score := w.BestPassage(domain.NewQuery("ty\n\nxx"), text)
	if score != w.Phrase {
		t.Fatalf("expected fallback score %d, got %d", w.Phrase, score)
	}
	if len(passage) > 10 {
		t.Errorf("fallback passage exceeds bound: %d bytes", len(passage))
	}
}

func TestBestPassage_NoMatch(t *testing.T) {
	w := DefaultWeights()
	passage, score := w.BestPassage(domain.NewQuery("nonexistent"), "some text")
	if passage != "" || score != 0 {
		t.Errorf("expected no candidate, got (%q, %d)", passage, score)
	}
}

func TestSplitPassages(t *testing.T) {
	got := SplitPassages("first block\nsecond line\n\n\n  third block  \n\n")
	want := []string{"first block\nsecond line", "third block"}
	if len(got) != len(want) {
		t.Fatalf("got %d passages, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("passage %d = %q, want %q", i, got[i], want[i])
		}
	}
}
