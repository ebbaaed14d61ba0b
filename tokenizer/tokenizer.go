// Package tokenizer splits message text into normalized word tokens.
//
// A token is a maximal run of non-separator bytes with everything except
// ASCII letters and digits removed and the letters lowercased. Runs that
// normalize to the empty string are dropped.
package tokenizer

import (
	"iter"
	"strings"
)

// punctuation holds the non-space separator bytes.
const punctuation = `,.!?;:"'()[]{}-_`

// IsSeparator reports whether b ends a candidate word.
func IsSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return strings.IndexByte(punctuation, b) >= 0
}

// Tokenize returns the tokens of text as a lazy sequence. The sequence may be
// ranged over any number of times and yields the same tokens each time.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i < len(text); i++ {
			if !IsSeparator(text[i]) {
				if start == -1 {
					start = i
				}
				continue
			}
			if start != -1 {
				if tok := normalize(text[start:i]); tok != "" && !yield(tok) {
					return
				}
				start = -1
			}
		}
		if start != -1 {
			if tok := normalize(text[start:]); tok != "" {
				yield(tok)
			}
		}
	}
}

// Tokens collects Tokenize(text) into a slice.
func Tokens(text string) []string {
	var toks []string
	for tok := range Tokenize(text) {
		toks = append(toks, tok)
	}
	return toks
}
