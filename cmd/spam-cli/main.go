package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	spamham "github.com/jamesainslie/go-spamham"
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
		Use:          "spam-cli [flags] MESSAGE...",
		Short:        "Classify a message as spam or ham",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), stdout, stderr, opts, strings.Join(args, " "))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.corpusPath, "corpus", "c", "spam.csv", "Path to the labeled training corpus")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Training goroutines (0 = number of CPUs)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.json, "json", false, "Print the result as JSON")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts options, message string) error {
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

	model, err := spamham.Train(ctx, c.Records,
		spamham.WithWorkers(opts.workers),
		spamham.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("training: %w", err)
	}

	res, err := model.Classify(message)
	if err != nil {
		if errors.Is(err, spamham.ErrEmptyCorpus) {
			return fmt.Errorf("corpus %s cannot train a model: %w", c.Path, err)
		}
		return err
	}

	stats := model.Stats()
	// Classify succeeded, so both priors are defined.
	pSpam, _ := model.Prior(vocab.Spam)

	if opts.json {
		return cli.WriteJSON(stdout, map[string]any{
			"message":         message,
			"decision":        res.Decision.String(),
			"log_spam":        res.LogSpam,
			"log_ham":         res.LogHam,
			"tokens":          res.Tokens,
			"spam_docs":       stats.SpamDocs,
			"ham_docs":        stats.HamDocs,
			"vocabulary_size": stats.VocabularySize,
			"prior_spam":      pSpam,
			"prior_ham":       1 - pSpam,
		})
	}

	fmt.Fprintf(stdout, "spam: %d, ham: %d\n", stats.SpamDocs, stats.HamDocs)
	fmt.Fprintf(stdout, "P(spam): %.4f, P(ham): %.4f\n", pSpam, 1-pSpam)
	fmt.Fprintf(stdout, "log P(spam|d): %.4f\n", res.LogSpam)
	fmt.Fprintf(stdout, "log P(ham|d): %.4f\n", res.LogHam)
	fmt.Fprintf(stdout, "=> %s\n", strings.ToUpper(res.Decision.String()))
	return nil
}
