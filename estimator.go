package spamham

import (
	"fmt"
	"math"

	"github.com/jamesainslie/go-spamham/vocab"
)

// Prior returns P(c), the share of training documents labeled c.
func (m *Model) Prior(c vocab.Class) (float64, error) {
	v := m.vocab.Load()
	if v == nil {
		return 0, ErrUntrained
	}
	return prior(v, c)
}

// WordGivenClass returns the Laplace-smoothed P(token|c). The token is
// looked up as given; pass it through the tokenizer first.
func (m *Model) WordGivenClass(token string, c vocab.Class) (float64, error) {
	v := m.vocab.Load()
	if v == nil {
		return 0, ErrUntrained
	}
	return wordGivenClass(v, token, c)
}

// prior computes P(spam) from document counts and P(ham) as its complement.
// Both classes need at least one document for the priors to lie in (0, 1).
func prior(v *vocab.Vocabulary, c vocab.Class) (float64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", vocab.ErrUnknownClass, c)
	}
	spam, ham := v.Docs(vocab.Spam), v.Docs(vocab.Ham)
	if spam+ham == 0 {
		return 0, ErrEmptyCorpus
	}
	if spam == 0 || ham == 0 {
		missing := vocab.Spam
		if ham == 0 {
			missing = vocab.Ham
		}
		return 0, fmt.Errorf("%w: no %s documents", ErrEmptyCorpus, missing)
	}

	pSpam := float64(spam) / float64(spam+ham)
	if c == vocab.Spam {
		return pSpam, nil
	}
	return 1 - pSpam, nil
}

func logPriors(v *vocab.Vocabulary) (logSpam, logHam float64, err error) {
	pSpam, err := prior(v, vocab.Spam)
	if err != nil {
		return 0, 0, err
	}
	pHam, err := prior(v, vocab.Ham)
	if err != nil {
		return 0, 0, err
	}
	return math.Log(pSpam), math.Log(pHam), nil
}

// wordGivenClass computes (count(w, c) + 1) / (total(c) + |V|).
func wordGivenClass(v *vocab.Vocabulary, token string, c vocab.Class) (float64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", vocab.ErrUnknownClass, c)
	}
	size := v.Len()
	if size == 0 {
		return 0, fmt.Errorf("%w: vocabulary has no tokens", ErrEmptyCorpus)
	}
	n := v.ClassCount(token, c)
	return float64(n+1) / float64(v.ClassTotal(c)+size), nil
}
