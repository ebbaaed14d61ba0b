package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	spamham "github.com/jamesainslie/go-spamham"
	"github.com/jamesainslie/go-spamham/vocab"
)

// ErrTooFewRecords indicates a corpus smaller than the number of folds.
var ErrTooFewRecords = errors.New("bench: fewer records than folds")

// FoldResult holds metrics for one held-out fold.
type FoldResult struct {
	Fold    int
	Train   int // records trained on
	Test    int // records evaluated
	Metrics Metrics
}

// Report aggregates a cross-validation run.
type Report struct {
	Folds     []FoldResult
	Aggregate Metrics
}

// Split returns the records outside and inside the given fold. Folds are
// stratified: the n-th record of each class goes to fold n mod k, so every
// fold sees both classes in roughly corpus proportions.
func Split(records []vocab.Record, k, fold int) (train, test []vocab.Record) {
	var seen [2]int
	for _, r := range records {
		n := seen[r.Class]
		seen[r.Class]++
		if n%k == fold {
			test = append(test, r)
		} else {
			train = append(train, r)
		}
	}
	return train, test
}

// CrossValidate runs k-fold cross-validation. Every fold trains a fresh
// model on the other k-1 folds with opts and evaluates it on the held-out
// fold.
func CrossValidate(ctx context.Context, records []vocab.Record, k int, opts ...spamham.Option) (Report, error) {
	if k < 2 {
		return Report{}, fmt.Errorf("bench: need at least 2 folds, got %d", k)
	}
	if len(records) < k {
		return Report{}, fmt.Errorf("%w: %d records, %d folds", ErrTooFewRecords, len(records), k)
	}

	folds := make([]FoldResult, 0, k)
	for fold := 0; fold < k; fold++ {
		train, test := Split(records, k, fold)

		model, err := spamham.Train(ctx, train, opts...)
		if err != nil {
			return Report{}, fmt.Errorf("fold %d: %w", fold, err)
		}

		m, err := Evaluate(model, test)
		if err != nil {
			return Report{}, fmt.Errorf("fold %d: %w", fold, err)
		}

		folds = append(folds, FoldResult{
			Fold:    fold,
			Train:   len(train),
			Test:    len(test),
			Metrics: m,
		})
	}

	agg := lo.Reduce(folds, func(acc Metrics, f FoldResult, _ int) Metrics {
		return acc.Add(f.Metrics)
	}, Metrics{})

	return Report{Folds: folds, Aggregate: agg}, nil
}
