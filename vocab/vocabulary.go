package vocab

import (
	"sort"

	"github.com/jamesainslie/go-spamham/tokenizer"
)

// Entry holds the occurrence counts of one token.
// Total always equals Spam + Ham.
type Entry struct {
	Total int
	Spam  int
	Ham   int
}

// count returns the class-specific count.
func (e Entry) count(c Class) int {
	if c == Spam {
		return e.Spam
	}
	return e.Ham
}

// Vocabulary maps tokens to per-class counts. It also tracks the number of
// documents seen per class, so one pass over the corpus fills every
// statistic the estimator needs.
//
// A Vocabulary is not safe for concurrent mutation. Build one per goroutine
// and combine them with Merge.
type Vocabulary struct {
	entries map[string]*Entry

	// classTotals caches the sum of per-class counts over all entries.
	classTotals [2]int
	docs        [2]int
}

// New returns an empty Vocabulary.
func New() *Vocabulary {
	return &Vocabulary{entries: make(map[string]*Entry)}
}

// Ingest tokenizes text and adds every token to the class c.
// The document counter for c is incremented even if text has no tokens.
func (v *Vocabulary) Ingest(c Class, text string) {
	v.docs[c]++
	for tok := range tokenizer.Tokenize(text) {
		v.add(tok, c, 1)
	}
}

func (v *Vocabulary) add(tok string, c Class, n int) {
	e, ok := v.entries[tok]
	if !ok {
		e = &Entry{}
		v.entries[tok] = e
	}
	e.Total += n
	if c == Spam {
		e.Spam += n
	} else {
		e.Ham += n
	}
	v.classTotals[c] += n
}

// Count returns the counts of tok, or zeros when tok was never seen.
func (v *Vocabulary) Count(tok string) (total, spam, ham int) {
	e, ok := v.entries[tok]
	if !ok {
		return 0, 0, 0
	}
	return e.Total, e.Spam, e.Ham
}

// ClassCount returns how often tok occurred in class c.
func (v *Vocabulary) ClassCount(tok string, c Class) int {
	e, ok := v.entries[tok]
	if !ok {
		return 0
	}
	return e.count(c)
}

// Len returns the number of distinct tokens, |V|.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// ClassTotal returns the number of token occurrences in class c.
func (v *Vocabulary) ClassTotal(c Class) int {
	return v.classTotals[c]
}

// ScanClassTotal recomputes ClassTotal by walking every entry.
// It exists to check the cached totals.
func (v *Vocabulary) ScanClassTotal(c Class) int {
	n := 0
	for _, e := range v.entries {
		n += e.count(c)
	}
	return n
}

// Docs returns the number of documents ingested for class c.
func (v *Vocabulary) Docs(c Class) int {
	return v.docs[c]
}

// Merge adds every count of other into v. Counts are sums, so the result
// does not depend on the order in which shards are merged.
func (v *Vocabulary) Merge(other *Vocabulary) {
	if other == nil {
		return
	}
	for tok, e := range other.entries {
		if e.Spam > 0 {
			v.add(tok, Spam, e.Spam)
		}
		if e.Ham > 0 {
			v.add(tok, Ham, e.Ham)
		}
	}
	v.docs[Spam] += other.docs[Spam]
	v.docs[Ham] += other.docs[Ham]
}

// Tokens returns the distinct tokens in lexical order.
func (v *Vocabulary) Tokens() []string {
	toks := make([]string, 0, len(v.entries))
	for tok := range v.entries {
		toks = append(toks, tok)
	}
	sort.Strings(toks)
	return toks
}

// Entry returns a copy of the entry for tok.
func (v *Vocabulary) Entry(tok string) (Entry, bool) {
	e, ok := v.entries[tok]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}
