package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"textwarden/internal/cache"
	"textwarden/internal/config"
	"textwarden/internal/dialect"
	"textwarden/internal/event"
	"textwarden/internal/lang"
	"textwarden/internal/markdown"
	"textwarden/internal/pipeline"
	"textwarden/internal/render"
	"textwarden/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files...]",
	Short: "Check files or stdin for spelling, grammar and style findings",
	Long: `Check analyzes prose and reports findings with suggestions.
Without file arguments the text is read from stdin.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("dialect", "", "english dialect (american|british|canadian|australian)")
	checkCmd.Flags().Bool("abbrev", false, "accept internet abbreviations")
	checkCmd.Flags().Bool("slang", false, "accept modern slang")
	checkCmd.Flags().Bool("it-terms", false, "accept IT terminology")
	checkCmd.Flags().Bool("brands", false, "accept brand names")
	checkCmd.Flags().Bool("names", false, "accept common given names")
	checkCmd.Flags().Bool("last-names", false, "accept common family names")
	checkCmd.Flags().Bool("lang-filter", false, "drop findings in excluded languages")
	checkCmd.Flags().StringSlice("exclude-lang", nil, "languages to exclude (implies --lang-filter)")
	checkCmd.Flags().Bool("capitalize", false, "capitalize suggestions at sentence starts")
	checkCmd.Flags().Bool("markdown", false, "treat input as markdown and mask code regions")
	checkCmd.Flags().Bool("cache", false, "reuse cached results for unchanged inputs")
	checkCmd.Flags().Bool("no-ui", false, "disable interactive progress")
}

type fileResult struct {
	path   string
	source string
	result pipeline.Result
	err    error
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(".")
	if err != nil {
		return err
	}
	opts := applyCheckFlags(cmd, cfg.Options())

	analyzer := pipeline.New(nil, nil, event.NewSlog(nil))

	var store *cache.Disk
	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		store, err = cache.Open("warden")
		if err != nil {
			return fmt.Errorf("failed to open result cache: %w", err)
		}
	}

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		fr := checkText(cmd, analyzer, store, opts, "<stdin>", string(data))
		return writeResults(cmd, []fileResult{fr})
	}

	results := make([]fileResult, len(args))
	work := func(events chan<- ui.Event) error {
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, path := range args {
			g.Go(func() error {
				if events != nil {
					events <- ui.Event{File: path, Status: ui.StatusChecking}
				}
				results[i] = checkFile(cmd, analyzer, store, opts, path)
				if events != nil {
					status := ui.StatusDone
					if results[i].err != nil {
						status = ui.StatusError
					}
					events <- ui.Event{File: path, Status: status, Findings: len(results[i].result.Findings)}
				}
				return nil
			})
		}
		return g.Wait()
	}

	format, _ := cmd.Flags().GetString("format")
	noUI, _ := cmd.Flags().GetBool("no-ui")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	interactive := len(args) > 1 && format == "pretty" && !noUI && !quiet && isTerminal(os.Stdout)

	if interactive {
		if err := runCheckWithUI("checking", args, work); err != nil {
			return err
		}
	} else if err := work(nil); err != nil {
		return err
	}

	return writeResults(cmd, results)
}

// applyCheckFlags layers explicit command-line flags over the file
// configuration; flags the user did not touch keep the config values.
func applyCheckFlags(cmd *cobra.Command, opts pipeline.Options) pipeline.Options {
	flags := cmd.Flags()
	if flags.Changed("dialect") {
		s, _ := flags.GetString("dialect")
		opts.Dialect = dialect.Parse(s)
	}
	boolFlag := func(name string, dst *bool) {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	boolFlag("abbrev", &opts.Abbreviations)
	boolFlag("slang", &opts.Slang)
	boolFlag("it-terms", &opts.ITTerminology)
	boolFlag("brands", &opts.BrandNames)
	boolFlag("names", &opts.PersonNames)
	boolFlag("last-names", &opts.LastNames)
	boolFlag("capitalize", &opts.CapitalizeSuggestions)
	boolFlag("lang-filter", &opts.LanguageFilter.Enabled)
	if flags.Changed("exclude-lang") {
		names, _ := flags.GetStringSlice("exclude-lang")
		opts.LanguageFilter.Excluded = lang.ParseAll(names)
		opts.LanguageFilter.Enabled = true
	}
	return opts
}

func checkFile(cmd *cobra.Command, analyzer *pipeline.Analyzer, store *cache.Disk, opts pipeline.Options, path string) fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	return checkText(cmd, analyzer, store, opts, path, string(data))
}

func checkText(cmd *cobra.Command, analyzer *pipeline.Analyzer, store *cache.Disk, opts pipeline.Options, path, source string) fileResult {
	asMarkdown, _ := cmd.Flags().GetBool("markdown")
	if asMarkdown || isMarkdownPath(path) {
		source = markdown.Mask(source)
	}

	key := cache.Key(source, opts.Fingerprint())
	if store != nil {
		var payload cache.Payload
		if hit, err := store.Get(key, &payload); err == nil && hit {
			return fileResult{path: path, source: source, result: pipeline.Result{
				Findings:  payload.Findings,
				WordCount: payload.WordCount,
				ElapsedMS: payload.ElapsedMS,
			}}
		}
	}

	res := analyzer.Analyze(cmd.Context(), source, opts)

	if store != nil {
		// Cache misses on write are not fatal; the next run recomputes.
		_ = store.Put(key, &cache.Payload{
			Findings:  res.Findings,
			WordCount: res.WordCount,
			ElapsedMS: res.ElapsedMS,
		})
	}
	return fileResult{path: path, source: source, result: res}
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func writeResults(cmd *cobra.Command, results []fileResult) error {
	format, _ := cmd.Flags().GetString("format")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxFindings, _ := cmd.Root().PersistentFlags().GetInt("max-findings")

	var firstErr error
	for _, fr := range results {
		if fr.err != nil && firstErr == nil {
			firstErr = fr.err
		}
	}

	switch format {
	case "json":
		out := make([]render.ResultJSON, 0, len(results))
		for _, fr := range results {
			if fr.err != nil {
				continue
			}
			out = append(out, render.BuildResult(fr.path, fr.result))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	case "pretty":
		for _, fr := range results {
			if fr.err != nil {
				fmt.Fprintln(os.Stderr, fr.err)
				continue
			}
			render.Pretty(cmd.OutOrStdout(), fr.path, fr.source, fr.result.Findings, render.PrettyOpts{
				Color: useColor(cmd, os.Stdout),
				Max:   maxFindings,
			})
			if !quiet {
				render.Summary(cmd.OutOrStdout(), fr.path,
					len(fr.result.Findings), fr.result.WordCount, fr.result.ElapsedMS)
			}
			if timings {
				for _, p := range fr.result.Timings.Phases {
					fmt.Fprintf(os.Stderr, "  %-12s %7.2f ms\n", p.Name, p.DurationMS)
				}
			}
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return firstErr
}
