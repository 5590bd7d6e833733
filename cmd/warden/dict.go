package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textwarden/internal/dictionary"
)

var dictCmd = &cobra.Command{
	Use:   "dict [word]",
	Short: "Inspect the bundled dictionary layers",
	Long: `Without arguments dict lists every bundled layer with its size.
With a word argument it reports which layers know the word.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDict,
}

func allWordlists() []dictionary.Wordlist {
	lists := []dictionary.Wordlist{dictionary.WordlistBase}
	lists = append(lists, dictionary.Optional()...)
	return append(lists,
		dictionary.WordlistBritishSpellings,
		dictionary.WordlistCanadianSpellings,
		dictionary.WordlistAustralianSpellings,
	)
}

func runDict(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, w := range allWordlists() {
			layer := w.Load()
			fmt.Fprintf(out, "%-22s %6d words  %s\n", w.String(), layer.Len(), w.Description())
		}
		return nil
	}

	word := args[0]
	found := false
	for _, w := range allWordlists() {
		if w.Load().Contains(word) {
			fmt.Fprintf(out, "%s: known in %s\n", word, w.String())
			found = true
		}
	}
	if !found {
		fmt.Fprintf(out, "%s: unknown\n", word)
	}
	return nil
}
