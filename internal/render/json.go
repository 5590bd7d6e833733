package render

import (
	"encoding/json"
	"io"

	"textwarden/internal/finding"
	"textwarden/internal/pipeline"
)

// SpanJSON carries rune offsets, half-open.
type SpanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FindingJSON is the serialized form of one finding.
type FindingJSON struct {
	Severity    string   `json:"severity"`
	Category    string   `json:"category"`
	ID          string   `json:"id"`
	Message     string   `json:"message"`
	Span        SpanJSON `json:"span"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ResultJSON is the root structure of the JSON output for one input.
type ResultJSON struct {
	File      string        `json:"file,omitempty"`
	Findings  []FindingJSON `json:"findings"`
	Count     int           `json:"count"`
	WordCount int           `json:"word_count"`
	ElapsedMS uint64        `json:"elapsed_ms"`
}

// BuildResult converts a pipeline result into its JSON shape.
func BuildResult(file string, res pipeline.Result) ResultJSON {
	findings := make([]FindingJSON, 0, len(res.Findings))
	for _, f := range res.Findings {
		findings = append(findings, buildFinding(f))
	}
	return ResultJSON{
		File:      file,
		Findings:  findings,
		Count:     len(findings),
		WordCount: res.WordCount,
		ElapsedMS: res.ElapsedMS,
	}
}

func buildFinding(f finding.Finding) FindingJSON {
	return FindingJSON{
		Severity:    f.Severity.String(),
		Category:    string(f.Category),
		ID:          f.ID,
		Message:     f.Message,
		Span:        SpanJSON{Start: f.Span.Start, End: f.Span.End},
		Suggestions: f.Suggestions,
	}
}

// WriteJSON serializes one result with indentation.
func WriteJSON(w io.Writer, file string, res pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildResult(file, res))
}
