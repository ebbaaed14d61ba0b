package spamham

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrEmptyCorpus indicates the model was trained on no documents, or on
	// documents that produced no tokens when a word probability is needed.
	ErrEmptyCorpus = errors.New("spamham: empty training corpus")

	// ErrUntrained indicates the model was queried before Train.
	ErrUntrained = errors.New("spamham: model not trained")

	// ErrAlreadyTrained indicates Train was called twice on the same model.
	ErrAlreadyTrained = errors.New("spamham: model already trained")
)
