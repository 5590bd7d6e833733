package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"textwarden/internal/finding"
	"textwarden/internal/pipeline"
	"textwarden/internal/text"
)

func sampleFinding() finding.Finding {
	return finding.Finding{
		Span:        text.Span{Start: 6, End: 11},
		Message:     "Unknown word",
		Category:    finding.CategorySpelling,
		Severity:    finding.SevWarning,
		ID:          "Spelling::unknown_word",
		Suggestions: []string{"world"},
	}
}

func TestPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, "letter.txt", "hello wrold again", []finding.Finding{sampleFinding()}, PrettyOpts{})

	out := buf.String()
	if !strings.Contains(out, "letter.txt:1:7: warning Spelling::unknown_word: Unknown word") {
		t.Errorf("header line missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "hello wrold again") {
		t.Errorf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "      ^~~~~") {
		t.Errorf("underline misaligned:\n%s", out)
	}
	if !strings.Contains(out, "suggestion: world") {
		t.Errorf("suggestion missing:\n%s", out)
	}
}

func TestPrettyMultiline(t *testing.T) {
	src := "first line\nsecond wrold here"
	f := sampleFinding()
	f.Span = text.Span{Start: 18, End: 23}

	var buf bytes.Buffer
	Pretty(&buf, "doc.txt", src, []finding.Finding{f}, PrettyOpts{})

	if !strings.Contains(buf.String(), "doc.txt:2:8:") {
		t.Errorf("line/col resolution wrong:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "first line") {
		t.Errorf("context should show only the finding's line:\n%s", buf.String())
	}
}

func TestPrettyMaxCapsOutput(t *testing.T) {
	findings := []finding.Finding{sampleFinding(), sampleFinding(), sampleFinding()}
	var buf bytes.Buffer
	Pretty(&buf, "x.txt", "hello wrold again", findings, PrettyOpts{Max: 1})

	out := buf.String()
	if got := strings.Count(out, "Unknown word"); got != 1 {
		t.Errorf("printed %d findings, want 1", got)
	}
	if !strings.Contains(out, "and 2 more") {
		t.Errorf("hidden-count note missing:\n%s", out)
	}
}

func TestPrettyEmptySuggestionRendersRemove(t *testing.T) {
	f := sampleFinding()
	f.Suggestions = []string{""}
	var buf bytes.Buffer
	Pretty(&buf, "x.txt", "hello wrold again", []finding.Finding{f}, PrettyOpts{})

	if !strings.Contains(buf.String(), "suggestion: remove") {
		t.Errorf("empty suggestion should render as removal:\n%s", buf.String())
	}
}

func TestPrettyOutOfRangeSpan(t *testing.T) {
	f := sampleFinding()
	f.Span = text.Span{Start: 500, End: 510}
	var buf bytes.Buffer
	Pretty(&buf, "x.txt", "short", []finding.Finding{f}, PrettyOpts{})

	// Header still prints; context is skipped.
	if !strings.Contains(buf.String(), "Unknown word") {
		t.Errorf("header missing for out-of-range span:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "^") {
		t.Errorf("no underline expected for out-of-range span:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	res := pipeline.Result{
		Findings:  []finding.Finding{sampleFinding()},
		WordCount: 3,
		ElapsedMS: 7,
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, "letter.txt", res); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got ResultJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.File != "letter.txt" || got.Count != 1 || got.WordCount != 3 || got.ElapsedMS != 7 {
		t.Errorf("envelope = %+v", got)
	}
	f := got.Findings[0]
	if f.Severity != "warning" || f.Category != "Spelling" || f.Span.Start != 6 || f.Span.End != 11 {
		t.Errorf("finding = %+v", f)
	}
}

func TestSummarySingular(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, "a.txt", 1, 10, 2)
	if !strings.Contains(buf.String(), "1 finding,") {
		t.Errorf("singular form wrong: %q", buf.String())
	}
}
