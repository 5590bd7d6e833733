package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"textwarden/internal/config"
	"textwarden/internal/rewrite"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] [sentence]",
	Short: "Rephrase a sentence in a chosen style",
	Long: `Rewrite sends one sentence to the configured rewrite backend and
prints the result with a word-level diff. The backend is configured in
the [rewrite] section of warden.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().String("style", "default", "target style (default|formal|informal|business|concise)")
	rewriteCmd.Flags().Bool("list-styles", false, "list the available styles")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list-styles"); list {
		for _, s := range rewrite.AllStyles() {
			fmt.Fprintf(out, "%-10s %-10s %s\n", s.String(), s.DisplayName(), s.Description())
		}
		return nil
	}

	var sentence string
	if len(args) == 1 {
		sentence = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sentence = strings.TrimSpace(string(data))
	}

	cfg, err := config.Discover(".")
	if err != nil {
		return err
	}
	engine := rewrite.NewEngine(cfg.RewriteClient())

	styleName, _ := cmd.Flags().GetString("style")
	outcome := engine.Rephrase(cmd.Context(), sentence, rewrite.ParseStyle(styleName))

	switch outcome.Kind {
	case rewrite.OutcomeOK:
		fmt.Fprintln(out, outcome.Text)
		if !mustQuiet(cmd) {
			printDiff(out, outcome.Diff, useColor(cmd, os.Stdout))
		}
		return nil
	case rewrite.OutcomeKnownFailure:
		return fmt.Errorf("rewrite failed: %s", outcome.Reason)
	default:
		return fmt.Errorf("rewrite failed unexpectedly: %s", outcome.Diagnostic)
	}
}

func mustQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

func printDiff(out io.Writer, diff []rewrite.DiffSegment, colored bool) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed, color.CrossedOut)
	if !colored {
		added.DisableColor()
		removed.DisableColor()
	}

	var b strings.Builder
	for _, seg := range diff {
		switch seg.Kind {
		case rewrite.DiffAdded:
			b.WriteString(added.Sprint(seg.Text))
		case rewrite.DiffRemoved:
			b.WriteString(removed.Sprint(seg.Text))
		default:
			b.WriteString(seg.Text)
		}
	}
	fmt.Fprintln(out, b.String())
}
