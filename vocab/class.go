// Package vocab holds the word-frequency statistics a spam/ham model is
// trained from.
package vocab

import (
	"errors"
	"fmt"
)

// ErrUnknownClass indicates a label that is neither "spam" nor "ham".
var ErrUnknownClass = errors.New("vocab: unknown class")

// Class is one of the two fixed message classes.
type Class uint8

const (
	// Ham is a legitimate message.
	Ham Class = iota
	// Spam is an unsolicited message.
	Spam
)

// Classes lists every class in a stable order.
var Classes = [...]Class{Spam, Ham}

// String returns the lowercase label of the class.
func (c Class) String() string {
	switch c {
	case Spam:
		return "spam"
	case Ham:
		return "ham"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Valid reports whether c is Spam or Ham.
func (c Class) Valid() bool {
	return c == Spam || c == Ham
}

// ParseClass converts a label into a Class. Matching is exact; callers that
// accept sloppy input should trim and fold case first.
func ParseClass(label string) (Class, error) {
	switch label {
	case "spam":
		return Spam, nil
	case "ham":
		return Ham, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, label)
}

// Record is one labeled training document.
type Record struct {
	Class Class
	Text  string
}

// NewRecord builds a Record from a textual label, matched exactly.
func NewRecord(label, text string) (Record, error) {
	c, err := ParseClass(label)
	if err != nil {
		return Record{}, err
	}
	return Record{Class: c, Text: text}, nil
}
