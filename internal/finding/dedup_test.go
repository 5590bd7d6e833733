package finding

import (
	"reflect"
	"testing"

	"textwarden/internal/text"
)

func mk(start, end uint32, cat Category, sev Severity) Finding {
	return Finding{
		Span:     text.Span{Start: start, End: end},
		Message:  "test finding",
		Category: cat,
		Severity: sev,
		ID:       MakeID(cat, "test finding"),
	}
}

func TestDeduplicateExactSpanCollision(t *testing.T) {
	// A spelling and a typo finding for the same token: spelling is the
	// more specific category and must survive.
	in := []Finding{
		mk(0, 5, CategorySpelling, SevWarning),
		mk(0, 5, CategoryTypo, SevError),
	}
	out := Deduplicate(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(out))
	}
	if out[0].Category != CategorySpelling {
		t.Fatalf("expected Spelling to survive, got %s", out[0].Category)
	}
}

func TestDeduplicateSeverityTiebreak(t *testing.T) {
	in := []Finding{
		mk(3, 9, CategoryStyle, SevInfo),
		mk(3, 9, CategoryStyle, SevError),
		mk(3, 9, CategoryStyle, SevWarning),
	}
	out := Deduplicate(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(out))
	}
	if out[0].Severity != SevError {
		t.Fatalf("expected error severity to win tiebreak, got %s", out[0].Severity)
	}
}

func TestDeduplicateOverlappingSpansKept(t *testing.T) {
	in := []Finding{
		mk(0, 5, CategorySpelling, SevWarning),
		mk(2, 7, CategoryTypo, SevWarning),
		mk(5, 9, CategoryGrammar, SevError),
	}
	out := Deduplicate(in)
	if len(out) != 3 {
		t.Fatalf("overlapping but non-identical spans must not merge: got %d findings", len(out))
	}
}

func TestDeduplicateSortedAndIdempotent(t *testing.T) {
	in := []Finding{
		mk(20, 25, CategoryStyle, SevInfo),
		mk(0, 5, CategorySpelling, SevWarning),
		mk(0, 5, CategoryTypo, SevWarning),
		mk(10, 15, CategoryGrammar, SevError),
	}
	once := Deduplicate(in)
	twice := Deduplicate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("deduplicate is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	if len(once) > len(in) {
		t.Fatalf("deduplicate grew the finding list: %d > %d", len(once), len(in))
	}
	for i := 1; i < len(once); i++ {
		if once[i-1].Span.Start > once[i].Span.Start {
			t.Fatalf("output not sorted by start: %v before %v", once[i-1].Span, once[i].Span)
		}
	}
	seen := make(map[text.Span]bool)
	for _, f := range once {
		if seen[f.Span] {
			t.Fatalf("duplicate span %v in output", f.Span)
		}
		seen[f.Span] = true
	}
}

func TestDeduplicateEmptyAndSingle(t *testing.T) {
	if out := Deduplicate(nil); len(out) != 0 {
		t.Fatalf("expected empty output for nil input")
	}
	single := []Finding{mk(0, 3, CategoryGrammar, SevError)}
	if out := Deduplicate(single); len(out) != 1 {
		t.Fatalf("expected single finding to pass through")
	}
}

func TestMakeID(t *testing.T) {
	tests := []struct {
		cat  Category
		msg  string
		want string
	}{
		{CategoryFormatting, "Horizontal ellipsis must have 3 dots", "Formatting::horizontal_ellipsis_must_have_3_dots"},
		{CategorySpelling, "Did you mean “hello”?", "Spelling::did_you_mean_hello"},
		{CategoryGrammar, "one two three four five six seven eight nine ten", "Grammar::one_two_three_four_five_six_seven_eight"},
		{CategoryTypo, "", "Typo::"},
	}
	for _, tt := range tests {
		if got := MakeID(tt.cat, tt.msg); got != tt.want {
			t.Errorf("MakeID(%s, %q) = %q, want %q", tt.cat, tt.msg, got, tt.want)
		}
	}
}
