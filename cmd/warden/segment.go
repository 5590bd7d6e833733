package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"textwarden/internal/lang"
	"textwarden/internal/segment"
	"textwarden/internal/text"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [flags] [file]",
	Short: "Split text into sentence segments",
	Long: `Segment shows the sentence boundaries the analysis pipeline works
with, including each segment's detected language.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSegment,
}

func init() {
	segmentCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	segmentCmd.Flags().Bool("lang", false, "detect each segment's language")
}

type segmentJSON struct {
	Start    uint32 `json:"start"`
	End      uint32 `json:"end"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

func runSegment(cmd *cobra.Command, args []string) error {
	var source string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		source = string(data)
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		source = string(data)
	}

	detectLang, _ := cmd.Flags().GetBool("lang")
	format, _ := cmd.Flags().GetString("format")

	runes := text.NewRunes(source)
	spans := segment.Segment(source)
	detector := lang.WhatlangDetector{}

	segments := make([]segmentJSON, 0, len(spans))
	for _, span := range spans {
		s := segmentJSON{Start: span.Start, End: span.End, Text: runes.SliceSpan(span)}
		if detectLang {
			s.Language = detector.Detect(s.Text).String()
		}
		segments = append(segments, s)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(segments)
	case "pretty":
		for i, s := range segments {
			if s.Language != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d [%d:%d] (%s) %q\n", i, s.Start, s.End, s.Language, s.Text)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d [%d:%d] %q\n", i, s.Start, s.End, s.Text)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d segments\n", len(segments))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
