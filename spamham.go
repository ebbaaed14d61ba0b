package spamham

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/jamesainslie/go-spamham/ingest"
	"github.com/jamesainslie/go-spamham/tokenizer"
	"github.com/jamesainslie/go-spamham/vocab"
)

// Model is a two-class Naive Bayes training session. It starts untrained,
// becomes trained after one successful call to Train, and is read-only from
// then on.
type Model struct {
	vocab    atomic.Pointer[vocab.Vocabulary]
	trainMu  sync.Mutex
	workers  int
	tieBreak vocab.Class
	logger   *slog.Logger
}

// Stats describes the corpus a Model was trained on.
type Stats struct {
	SpamDocs       int
	HamDocs        int
	VocabularySize int
	SpamTotal      int // token occurrences in spam documents
	HamTotal       int // token occurrences in ham documents
}

// Docs returns the total number of training documents.
func (s Stats) Docs() int {
	return s.SpamDocs + s.HamDocs
}

// Result is the outcome of classifying one message.
type Result struct {
	Decision vocab.Class
	LogSpam  float64
	LogHam   float64
	Tokens   int // number of query tokens that contributed to the scores
}

// Score returns the log-score of class c.
func (r Result) Score(c vocab.Class) float64 {
	if c == vocab.Spam {
		return r.LogSpam
	}
	return r.LogHam
}

// IsSpam reports whether the decision is spam.
func (r Result) IsSpam() bool {
	return r.Decision == vocab.Spam
}

// New creates an untrained Model.
func New(opts ...Option) *Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Model{
		workers:  cfg.workers,
		tieBreak: cfg.tieBreak,
		logger:   cfg.logger,
	}
}

// Train creates a Model and trains it on records.
func Train(ctx context.Context, records []vocab.Record, opts ...Option) (*Model, error) {
	m := New(opts...)
	if err := m.Train(ctx, records); err != nil {
		return nil, err
	}
	return m, nil
}

// Train ingests every record in one pass and freezes the model. An empty
// corpus trains successfully; queries on it then fail with ErrEmptyCorpus.
func (m *Model) Train(ctx context.Context, records []vocab.Record) error {
	m.trainMu.Lock()
	defer m.trainMu.Unlock()

	if m.vocab.Load() != nil {
		return ErrAlreadyTrained
	}

	v, err := ingest.Build(ctx, records, m.workers)
	if err != nil {
		return fmt.Errorf("building vocabulary: %w", err)
	}
	m.vocab.Store(v)

	m.logger.Debug("model trained",
		"spam_docs", v.Docs(vocab.Spam),
		"ham_docs", v.Docs(vocab.Ham),
		"vocabulary", v.Len(),
		"workers", m.workers,
	)
	return nil
}

// Trained reports whether Train has completed.
func (m *Model) Trained() bool {
	return m.vocab.Load() != nil
}

// Stats returns the training statistics. The zero Stats is returned for an
// untrained model.
func (m *Model) Stats() Stats {
	v := m.vocab.Load()
	if v == nil {
		return Stats{}
	}
	return Stats{
		SpamDocs:       v.Docs(vocab.Spam),
		HamDocs:        v.Docs(vocab.Ham),
		VocabularySize: v.Len(),
		SpamTotal:      v.ClassTotal(vocab.Spam),
		HamTotal:       v.ClassTotal(vocab.Ham),
	}
}

// Count returns the training counts of an already normalized token.
func (m *Model) Count(token string) (total, spam, ham int) {
	v := m.vocab.Load()
	if v == nil {
		return 0, 0, 0
	}
	return v.Count(token)
}

// Classify scores text under both classes and picks the one with the
// strictly greater log-score. A text without tokens is scored on the priors
// alone.
func (m *Model) Classify(text string) (Result, error) {
	v := m.vocab.Load()
	if v == nil {
		return Result{}, ErrUntrained
	}

	logSpam, logHam, err := logPriors(v)
	if err != nil {
		return Result{}, err
	}

	res := Result{LogSpam: logSpam, LogHam: logHam}
	for tok := range tokenizer.Tokenize(text) {
		ps, err := wordGivenClass(v, tok, vocab.Spam)
		if err != nil {
			return Result{}, err
		}
		ph, err := wordGivenClass(v, tok, vocab.Ham)
		if err != nil {
			return Result{}, err
		}
		res.LogSpam += math.Log(ps)
		res.LogHam += math.Log(ph)
		res.Tokens++
	}

	res.Decision = m.decide(res.LogSpam, res.LogHam)

	m.logger.Debug("message classified",
		"decision", res.Decision,
		"log_spam", res.LogSpam,
		"log_ham", res.LogHam,
		"tokens", res.Tokens,
	)
	return res, nil
}

// decide applies the argmax rule. An exact tie is arbitrary and resolved by
// the configured tie-break class.
func (m *Model) decide(logSpam, logHam float64) vocab.Class {
	switch {
	case logSpam > logHam:
		return vocab.Spam
	case logHam > logSpam:
		return vocab.Ham
	default:
		return m.tieBreak
	}
}
