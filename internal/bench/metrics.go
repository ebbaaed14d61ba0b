// Package bench provides evaluation utilities for the spam classifier.
package bench

import (
	"fmt"

	spamham "github.com/jamesainslie/go-spamham"
	"github.com/jamesainslie/go-spamham/vocab"
)

// Metrics holds evaluation results with spam as the positive class.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	Accuracy       float64
}

// Total returns the number of evaluated messages.
func (m Metrics) Total() int {
	return m.TruePositives + m.FalsePositives + m.TrueNegatives + m.FalseNegatives
}

// Add returns the element-wise sum of the confusion counts of m and o with
// the derived rates recomputed.
func (m Metrics) Add(o Metrics) Metrics {
	return Compute(
		m.TruePositives+o.TruePositives,
		m.FalsePositives+o.FalsePositives,
		m.TrueNegatives+o.TrueNegatives,
		m.FalseNegatives+o.FalseNegatives,
	)
}

// Compute derives precision, recall, F1 and accuracy from confusion counts.
// Rates with a zero denominator are left at zero.
func Compute(tp, fp, tn, fn int) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		TrueNegatives:  tn,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	if total := tp + fp + tn + fn; total > 0 {
		m.Accuracy = float64(tp+tn) / float64(total)
	}

	return m
}

// Evaluate classifies every record with model and compares the decision
// against the record's label.
func Evaluate(model *spamham.Model, records []vocab.Record) (Metrics, error) {
	var tp, fp, tn, fn int

	for i, r := range records {
		res, err := model.Classify(r.Text)
		if err != nil {
			return Metrics{}, fmt.Errorf("record %d: %w", i, err)
		}

		switch {
		case res.IsSpam() && r.Class == vocab.Spam:
			tp++
		case res.IsSpam():
			fp++
		case r.Class == vocab.Spam:
			fn++
		default:
			tn++
		}
	}

	return Compute(tp, fp, tn, fn), nil
}
