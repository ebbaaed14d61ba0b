package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	spamham "github.com/jamesainslie/go-spamham"
	"github.com/jamesainslie/go-spamham/internal/bench"
	"github.com/jamesainslie/go-spamham/internal/cli"
	"github.com/jamesainslie/go-spamham/internal/corpus"
	"github.com/jamesainslie/go-spamham/vocab"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	corpusPath string
	folds      int
	workers    int
	logLevel   string
	json       bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "spam-bench [flags]",
		Short:        "Cross-validate the spam classifier on a labeled corpus",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), stdout, stderr, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.corpusPath, "corpus", "c", "spam.csv", "Path to the labeled corpus")
	flags.IntVarP(&opts.folds, "folds", "k", 5, "Number of cross-validation folds")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Training goroutines per fold (0 = number of CPUs)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.json, "json", false, "Print the report as JSON")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts options) error {
	logger, err := cli.NewLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	c, err := corpus.Load(opts.corpusPath)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded",
		"path", c.Path,
		"spam", c.Count(vocab.Spam),
		"ham", c.Count(vocab.Ham),
		"skipped", c.Skipped,
	)

	report, err := bench.CrossValidate(ctx, c.Records, opts.folds,
		spamham.WithWorkers(opts.workers),
		spamham.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if opts.json {
		folds := make([]any, 0, len(report.Folds))
		for _, f := range report.Folds {
			folds = append(folds, map[string]any{
				"fold":    f.Fold,
				"train":   f.Train,
				"test":    f.Test,
				"metrics": metricsFields(f.Metrics),
			})
		}
		return cli.WriteJSON(stdout, map[string]any{
			"corpus":    c.Path,
			"records":   len(c.Records),
			"skipped":   c.Skipped,
			"folds":     folds,
			"aggregate": metricsFields(report.Aggregate),
		})
	}

	fmt.Fprintf(stdout, "Loaded %d records from %s (%d skipped)\n\n", len(c.Records), c.Path, c.Skipped)
	fmt.Fprintf(stdout, "%-6s %-8s %-8s %-8s %-8s %-8s\n", "Fold", "Test", "Prec", "Rec", "F1", "Acc")
	fmt.Fprintln(stdout, strings.Repeat("-", 50))
	for _, f := range report.Folds {
		m := f.Metrics
		fmt.Fprintf(stdout, "%-6d %-8d %-8.4f %-8.4f %-8.4f %-8.4f\n",
			f.Fold+1, f.Test, m.Precision, m.Recall, m.F1, m.Accuracy)
	}
	fmt.Fprintln(stdout, strings.Repeat("-", 50))

	agg := report.Aggregate
	fmt.Fprintf(stdout, "Precision: %.4f  Recall: %.4f  F1: %.4f  Accuracy: %.4f\n",
		agg.Precision, agg.Recall, agg.F1, agg.Accuracy)
	fmt.Fprintf(stdout, "(TP: %d, FP: %d, TN: %d, FN: %d)\n",
		agg.TruePositives, agg.FalsePositives, agg.TrueNegatives, agg.FalseNegatives)
	return nil
}

func metricsFields(m bench.Metrics) map[string]any {
	return map[string]any{
		"true_positives":  m.TruePositives,
		"false_positives": m.FalsePositives,
		"true_negatives":  m.TrueNegatives,
		"false_negatives": m.FalseNegatives,
		"precision":       m.Precision,
		"recall":          m.Recall,
		"f1":              m.F1,
		"accuracy":        m.Accuracy,
	}
}
