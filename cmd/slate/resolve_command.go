package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"slate/internal/batch"
	"slate/internal/logging"
	"slate/internal/mediasearch"
	"slate/internal/mediasearch/tmdb"
	"slate/internal/ratelimit"
	"slate/internal/resolve"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var delayMS int
	var maxRetries int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve [titles...]",
		Short: "Resolve titles against TMDB and classify each match",
		Long: `Resolve one or more free-text titles against TMDB. Each title is
classified as exact, fuzzy, not_found, or error. Titles come from
arguments, --file, or stdin (one per line; blank lines and lines
starting with # are skipped).

Examples:
  slate resolve "Fight Club" "The Matrix"
  slate resolve --file titles.txt
  cat titles.txt | slate resolve --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			titles, err := collectTitles(args, filePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(titles) == 0 {
				return fmt.Errorf("no titles to resolve (pass arguments, --file, or pipe stdin)")
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
			if err != nil {
				return fmt.Errorf("create TMDB client: %w", err)
			}

			limiter := ratelimit.New(tmdb.Provider, cfg.RateLimitInterval(),
				ratelimit.WithLogger(logger))
			searcher := mediasearch.NewLimitedSearcher(client, limiter)
			resolver := resolve.New(searcher, resolve.WithLogger(logger))
			runner := batch.NewRunner(resolver, batch.WithLogger(logger))

			opts := batch.Defaults()
			opts.Delay = cfg.BatchDelay()
			opts.MaxRetries = cfg.Batch.MaxRetries
			if delayMS >= 0 {
				opts.Delay = time.Duration(delayMS) * time.Millisecond
			}
			if maxRetries >= 0 {
				opts.MaxRetries = maxRetries
			}

			progressOut := cmd.ErrOrStderr()
			if isTerminal(progressOut) {
				opts.OnProgress = func(p batch.Progress) {
					fmt.Fprintf(progressOut, "\rResolving %d/%d (%d%%)", p.Current, p.Total, p.Percentage)
					if p.Current == p.Total {
						fmt.Fprintln(progressOut)
					}
				}
			}

			batchID := uuid.NewString()
			logger = logging.NewComponentLogger(logger, "batch")
			logger.Info("batch started",
				logging.String(logging.FieldBatchID, batchID),
				logging.Int("titles", len(titles)),
				logging.Duration("delay", opts.Delay),
				logging.Int("max_retries", opts.MaxRetries))

			started := time.Now()
			results, err := runner.Run(cmd.Context(), titles, opts)
			if err != nil {
				return fmt.Errorf("run batch: %w", err)
			}
			summary := batch.Summarize(results)

			logger.Info("batch finished",
				logging.String(logging.FieldBatchID, batchID),
				logging.Int("total", summary.Total),
				logging.Int("matched", summary.Exact+summary.Fuzzy),
				logging.Duration("elapsed", time.Since(started)))

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSONReport(out, batchID, results, summary)
			}
			writeResultsTable(out, results)
			writeSummary(out, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "File with one title per line")
	cmd.Flags().IntVar(&delayMS, "delay-ms", -1, "Pacing delay between titles in milliseconds (default: config)")
	cmd.Flags().IntVar(&maxRetries, "max-retries", -1, "Extra attempts per title on throttling (default: config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")

	return cmd
}

func writeResultsTable(out io.Writer, results []resolve.Result) {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		title, year, kind := "-", "-", "-"
		detail := ""
		if result.Matched != nil {
			title = result.Matched.Title
			if y := result.Matched.Year(); y != "" {
				year = y
			}
			kind = mediaKindLabel(result.Matched.MediaType)
		}
		switch result.Status {
		case resolve.StatusFuzzy:
			if n := len(result.Alternatives); n > 0 {
				detail = fmt.Sprintf("+%d alternatives", n)
			}
		case resolve.StatusError:
			detail = result.ErrorMessage
		}
		rows = append(rows, []string{result.Query, string(result.Status), title, year, kind, detail})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Query", "Status", "Matched Title", "Year", "Kind", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	))
}

func writeSummary(out io.Writer, summary batch.Summary) {
	fmt.Fprintf(out, "Resolved %d titles: %d exact, %d fuzzy, %d not found, %d errors (%d%% matched)\n",
		summary.Total, summary.Exact, summary.Fuzzy, summary.NotFound, summary.Errors, summary.SuccessRate)
}
