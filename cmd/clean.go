package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/contact-sanitize/internal/contact"
	"github.com/sells-group/contact-sanitize/internal/fetcher"
)

var (
	cleanInput       string
	cleanOutput      string
	cleanFormat      string
	cleanConcurrency int
	cleanLimit       int
	cleanDedupe      bool
	cleanNoDerive    bool
)

// cleanJob describes one clean run independent of flags and config.
type cleanJob struct {
	Input       string
	Output      string
	Format      string
	Concurrency int
	Limit       int
	Dedupe      bool
	Options     contact.Options
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Sanitize every contact in a CSV, TSV, XLSX or JSON file",
	Long: `Reads a contact sheet, maps its columns to contact fields by header name and
writes one cleaned row per input row.

Examples:
  # CSV in, CSV out on stdout
  contact-sanitize clean --input contacts.csv

  # Excel workbook, duplicates removed
  contact-sanitize clean --input contacts.xlsx --output cleaned.xlsx --dedupe

  # JSON with per-field issues
  contact-sanitize clean --input contacts.csv --format json --output cleaned.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		job := cleanJob{
			Input:       cleanInput,
			Output:      cleanOutput,
			Format:      cleanFormat,
			Concurrency: cleanConcurrency,
			Limit:       cleanLimit,
			Dedupe:      cleanDedupe || cfg.Clean.Dedupe,
			Options:     contact.Options{DeriveFullName: cfg.Clean.DeriveFullName && !cleanNoDerive},
		}
		if job.Concurrency <= 0 {
			job.Concurrency = cfg.Clean.Concurrency
		}
		if job.Format == "" {
			job.Format = formatFor(job.Output, cfg.Clean.Format)
		}

		_, err := runClean(cmd.Context(), job, cmd.OutOrStdout())
		return err
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInput, "input", "", "path to contact sheet (.csv, .tsv, .xlsx, .json)")
	cleanCmd.Flags().StringVar(&cleanOutput, "output", "", "write results to file (default: stdout)")
	cleanCmd.Flags().StringVar(&cleanFormat, "format", "", "output format: csv, json, yaml or xlsx (default from output extension, then config)")
	cleanCmd.Flags().IntVar(&cleanConcurrency, "concurrency", 0, "max rows cleaned concurrently (default from config)")
	cleanCmd.Flags().IntVar(&cleanLimit, "limit", 0, "max rows to clean (0 = all)")
	cleanCmd.Flags().BoolVar(&cleanDedupe, "dedupe", false, "drop rows whose dedup key was already seen")
	cleanCmd.Flags().BoolVar(&cleanNoDerive, "no-derive", false, "do not build missing full names from first and last name")
	_ = cleanCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cleanCmd)
}

// formatFor picks an output format from the output file extension, falling
// back to def.
func formatFor(output, def string) string {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".xlsx":
		return "xlsx"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".csv":
		return "csv"
	}
	return def
}

// runClean reads, cleans and writes one contact sheet. Results keep input
// order regardless of concurrency.
func runClean(ctx context.Context, job cleanJob, stdout io.Writer) (contact.Summary, error) {
	log := zap.L().With(zap.String("run_id", uuid.NewString()), zap.String("input", job.Input))
	start := time.Now()

	switch job.Format {
	case "csv", "json", "yaml":
	case "xlsx":
		if job.Output == "" {
			return contact.Summary{}, eris.New("clean: xlsx output requires --output")
		}
	default:
		return contact.Summary{}, eris.Errorf("clean: unsupported format %q", job.Format)
	}

	table, err := fetcher.ReadTable(ctx, job.Input)
	if err != nil {
		return contact.Summary{}, eris.Wrap(err, "clean: read input")
	}
	cols, err := contact.MapHeader(table.Header)
	if err != nil {
		return contact.Summary{}, eris.Wrap(err, "clean: map header")
	}

	rows := table.Rows
	if job.Limit > 0 && job.Limit < len(rows) {
		rows = rows[:job.Limit]
	}
	log.Info("clean: input parsed", zap.Int("rows", len(rows)), zap.Int("columns", len(cols)))

	concurrency := job.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	results := make([]contact.Result, len(rows))
	for i, row := range rows {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = contact.Clean(cols.Contact(row.Fields), job.Options)
			if results[i].Invalid() {
				log.Debug("clean: row has invalid fields",
					zap.Int("line", row.Line),
					zap.Any("issues", results[i].Issues),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return contact.Summary{}, eris.Wrap(err, "clean: process rows")
	}

	summary := contact.Summarize(results)
	if job.Dedupe {
		results = contact.Dedupe(results)
	}

	if err := writeCleaned(job, results, stdout); err != nil {
		return summary, err
	}

	log.Info("clean: batch complete",
		zap.Int("total", summary.Total),
		zap.Int("clean", summary.Clean),
		zap.Any("invalid", summary.Invalid),
		zap.Int("derived", summary.Derived),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("written", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

// writeCleaned writes results in the job's format to the output file or
// stdout.
func writeCleaned(job cleanJob, results []contact.Result, stdout io.Writer) error {
	if job.Format == "xlsx" {
		if err := fetcher.WriteXLSX(job.Output, fetcher.XLSXOptions{}, contact.OutputColumns, records(results)); err != nil {
			return eris.Wrap(err, "clean: write xlsx")
		}
		return nil
	}

	w := stdout
	if job.Output != "" {
		f, err := os.Create(job.Output)
		if err != nil {
			return eris.Wrap(err, "clean: create output file")
		}
		defer f.Close() //nolint:errcheck
		w = f
	}

	var err error
	switch job.Format {
	case "csv":
		err = fetcher.WriteCSV(w, contact.OutputColumns, records(results))
	case "json":
		err = fetcher.WriteJSON(w, results)
	case "yaml":
		err = fetcher.WriteYAML(w, results)
	default:
		return eris.Errorf("clean: unsupported format %q", job.Format)
	}
	if err != nil {
		return eris.Wrapf(err, "clean: write %s", job.Format)
	}
	return nil
}

func records(results []contact.Result) [][]string {
	out := make([][]string, len(results))
	for i, r := range results {
		out[i] = r.Record()
	}
	return out
}
