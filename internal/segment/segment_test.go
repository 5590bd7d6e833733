package segment

import (
	"strings"
	"testing"

	"textwarden/internal/text"
)

func slices(s string, spans []text.Span) []string {
	r := text.NewRunes(s)
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = r.SliceSpan(sp)
	}
	return out
}

func TestSegmentThreeSentences(t *testing.T) {
	s := "First sentence. Second sentence! Third sentence?"
	spans := Segment(s)
	if len(spans) != 3 {
		t.Fatalf("expected 3 segments, got %d: %v", len(spans), slices(s, spans))
	}
	got := slices(s, spans)
	want := []string{"First sentence.", "Second sentence!", "Third sentence?"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSegmentEmptyAndWhitespace(t *testing.T) {
	for _, s := range []string{"", "   ", "\n\n\t  \n"} {
		if spans := Segment(s); len(spans) != 0 {
			t.Errorf("Segment(%q) = %d spans, want 0", s, len(spans))
		}
	}
}

func TestSegmentNoBoundaryIsOneSegment(t *testing.T) {
	s := "just some words with no terminal punctuation"
	spans := Segment(s)
	if len(spans) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(spans))
	}
	if got := slices(s, spans)[0]; got != s {
		t.Fatalf("whole text should be one segment, got %q", got)
	}
}

func TestSegmentParagraphBreak(t *testing.T) {
	s := "First paragraph without punctuation\n\nSecond paragraph"
	spans := Segment(s)
	if len(spans) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(spans), slices(s, spans))
	}
	got := slices(s, spans)
	if got[0] != "First paragraph without punctuation" || got[1] != "Second paragraph" {
		t.Fatalf("unexpected segments: %v", got)
	}
}

func TestSegmentBulletList(t *testing.T) {
	s := "Overview\n- first item\n- second item\n• third item"
	spans := Segment(s)
	got := slices(s, spans)
	if len(got) != 4 {
		t.Fatalf("expected 4 segments, got %d: %v", len(got), got)
	}
	if !strings.HasPrefix(got[1], "- first") || !strings.HasPrefix(got[3], "• third") {
		t.Fatalf("bullet segments misplaced: %v", got)
	}
}

func TestSegmentNumberedList(t *testing.T) {
	s := "Steps:\n1. Install the tool\n2. Run the check\na) review output"
	spans := Segment(s)
	got := slices(s, spans)
	if len(got) != 4 {
		t.Fatalf("expected 4 segments, got %d: %v", len(got), got)
	}
	if !strings.HasPrefix(got[1], "1. Install") {
		t.Errorf("numbered item should start its own segment: %v", got)
	}
	if !strings.HasPrefix(got[3], "a) review") {
		t.Errorf("lettered item should start its own segment: %v", got)
	}
}

func TestSegmentIndentedListItems(t *testing.T) {
	// Indentation before a list marker must not surface as a
	// whitespace-only segment; blank segments inflate the
	// language-ratio denominator downstream.
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"indented bullet alone", "  - item", []string{"- item"}},
		{"indented bullet after paragraph", "para one.\n\n  - item two", []string{"para one.", "- item two"}},
		{"indented numbered item", "Steps:\n\n  1. first step", []string{"Steps:", "1. first step"}},
		{"tab before bullet", "\t- tabbed item", []string{"- tabbed item"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Segment(tt.text)
			got := slices(tt.text, spans)
			if len(got) != len(tt.want) {
				t.Fatalf("segments = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegmentNoBlankSpans(t *testing.T) {
	r := text.NewRunes("  - one\n\t* two\n\n   3. three\n\nplain tail")
	for i, sp := range Segment("  - one\n\t* two\n\n   3. three\n\nplain tail") {
		if strings.TrimSpace(r.SliceSpan(sp)) == "" {
			t.Errorf("span %d [%d,%d) is whitespace-only", i, sp.Start, sp.End)
		}
	}
}

func TestSegmentListMarkerDotIsNotTerminal(t *testing.T) {
	s := "1. Install the tool"
	spans := Segment(s)
	if len(spans) != 1 {
		t.Fatalf("list marker dot must not close the segment: %v", slices(s, spans))
	}
}

func TestSegmentAbbreviationNotSplit(t *testing.T) {
	// Lowercase continuation after a period reads as an abbreviation.
	s := "see e.g. the manual for details"
	spans := Segment(s)
	if len(spans) != 1 {
		t.Fatalf("abbreviation split into %d segments: %v", len(spans), slices(s, spans))
	}
}

func TestSegmentQuoteAfterTerminal(t *testing.T) {
	s := "He said stop. “No way.”"
	spans := Segment(s)
	if len(spans) < 2 {
		t.Fatalf("quotation mark should confirm the boundary: %v", slices(s, spans))
	}
	if got := slices(s, spans)[0]; got != "He said stop." {
		t.Errorf("first segment = %q", got)
	}
}

func TestSegmentUnicodeOffsets(t *testing.T) {
	s := "Héllo wörld. Ça va bien!"
	spans := Segment(s)
	if len(spans) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(spans), slices(s, spans))
	}
	got := slices(s, spans)
	if got[0] != "Héllo wörld." || got[1] != "Ça va bien!" {
		t.Fatalf("unicode segments wrong: %v", got)
	}
}

// Concatenated segment text must reproduce a subsequence of the
// original content: nothing duplicated across two segments.
func TestSegmentCoverage(t *testing.T) {
	inputs := []string{
		"First sentence. Second sentence! Third sentence?",
		"Notes:\n- one\n- two\n\nFinal paragraph without end",
		"Mixed… punctuation? Sure! 1. list\n2. more",
	}
	for _, s := range inputs {
		spans := Segment(s)
		var prevEnd uint32
		for i, sp := range spans {
			if sp.Start >= sp.End {
				t.Fatalf("%q: empty span at %d", s, i)
			}
			if sp.Start < prevEnd {
				t.Fatalf("%q: span %d overlaps previous (start %d < prev end %d)", s, i, sp.Start, prevEnd)
			}
			prevEnd = sp.End
		}
	}
}
