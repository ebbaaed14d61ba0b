package bench

import (
	"context"
	"math"
	"testing"

	spamham "github.com/jamesainslie/go-spamham"
	"github.com/jamesainslie/go-spamham/vocab"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		tp, fp, tn, fn int
		wantPrecision  float64
		wantRecall     float64
		wantAccuracy   float64
	}{
		{
			name:          "perfect",
			tp:            5,
			tn:            5,
			wantPrecision: 1,
			wantRecall:    1,
			wantAccuracy:  1,
		},
		{
			name:          "false positive",
			tp:            2,
			fp:            2,
			tn:            4,
			wantPrecision: 0.5,
			wantRecall:    1,
			wantAccuracy:  0.75,
		},
		{
			name:          "false negative",
			tp:            1,
			tn:            2,
			fn:            1,
			wantPrecision: 1,
			wantRecall:    0.5,
			wantAccuracy:  0.75,
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.tp, tt.fp, tt.tn, tt.fn)

			if got.Precision != tt.wantPrecision {
				t.Errorf("Precision = %v, want %v", got.Precision, tt.wantPrecision)
			}
			if got.Recall != tt.wantRecall {
				t.Errorf("Recall = %v, want %v", got.Recall, tt.wantRecall)
			}
			if got.Accuracy != tt.wantAccuracy {
				t.Errorf("Accuracy = %v, want %v", got.Accuracy, tt.wantAccuracy)
			}
			if got.Total() != tt.tp+tt.fp+tt.tn+tt.fn {
				t.Errorf("Total = %d", got.Total())
			}
		})
	}
}

func TestCompute_F1(t *testing.T) {
	m := Compute(2, 2, 4, 0)
	want := 2 * 0.5 * 1 / 1.5
	if math.Abs(m.F1-want) > 1e-12 {
		t.Errorf("F1 = %v, want %v", m.F1, want)
	}
}

func TestEvaluate(t *testing.T) {
	model, err := spamham.Train(context.Background(), []vocab.Record{
		{Class: vocab.Ham, Text: "Hello how are you"},
		{Class: vocab.Spam, Text: "WIN money now"},
		{Class: vocab.Spam, Text: "Claim your prize now"},
	})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	got, err := Evaluate(model, []vocab.Record{
		{Class: vocab.Spam, Text: "win now"},
		{Class: vocab.Ham, Text: "hello how are you"},
		{Class: vocab.Ham, Text: "claim your prize"},
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if got.TruePositives != 1 || got.TrueNegatives != 1 || got.FalsePositives != 1 || got.FalseNegatives != 0 {
		t.Errorf("confusion = %+v, want TP=1 TN=1 FP=1 FN=0", got)
	}
}

func TestEvaluate_Untrained(t *testing.T) {
	_, err := Evaluate(spamham.New(), []vocab.Record{{Class: vocab.Ham, Text: "hi"}})
	if err == nil {
		t.Error("expected error for untrained model")
	}
}
