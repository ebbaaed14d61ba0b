package spamham

import (
	"log/slog"
	"runtime"

	"github.com/jamesainslie/go-spamham/vocab"
)

// Option configures a Model.
type Option func(*config)

type config struct {
	workers  int
	tieBreak vocab.Class
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		workers:  runtime.NumCPU(),
		tieBreak: vocab.Ham,
		logger:   slog.Default(),
	}
}

// WithWorkers sets the number of goroutines used for training
// (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithTieBreak sets the class returned when both log-scores are exactly
// equal (default: vocab.Ham).
func WithTieBreak(class vocab.Class) Option {
	return func(c *config) {
		if class.Valid() {
			c.tieBreak = class
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
