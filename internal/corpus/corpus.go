// Package corpus reads labeled training messages from disk.
//
// Each line holds a label, a comma, and the message text. Text that starts
// with a double quote runs to the next unpaired quote, with "" standing for
// a literal quote. Unquoted text runs to the next comma or the end of line.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jamesainslie/go-spamham/vocab"
)

// maxLineSize bounds a single corpus line.
const maxLineSize = 1 << 20

// Corpus is a loaded training corpus.
type Corpus struct {
	Path    string
	Records []vocab.Record
	Skipped int // lines without a comma or with an unknown label
}

// Count returns the number of records of class c.
func (c *Corpus) Count(class vocab.Class) int {
	n := 0
	for _, r := range c.Records {
		if r.Class == class {
			n++
		}
	}
	return n
}

// ParseLine splits one corpus line into its label and text.
// ok is false when the line has no comma.
func ParseLine(line string) (label, text string, ok bool) {
	label, rest, found := strings.Cut(line, ",")
	if !found {
		return "", "", false
	}

	if !strings.HasPrefix(rest, `"`) {
		if i := strings.IndexByte(rest, ','); i >= 0 {
			rest = rest[:i]
		}
		return label, rest, true
	}

	var builder strings.Builder
	rest = rest[1:]
	for i := 0; i < len(rest); i++ {
		if rest[i] != '"' {
			builder.WriteByte(rest[i])
			continue
		}
		if i+1 < len(rest) && rest[i+1] == '"' {
			builder.WriteByte('"')
			i++
			continue
		}
		break
	}
	return label, builder.String(), true
}

// Parse reads a corpus from r. Lines that do not parse, or whose label is
// not exactly "spam" or "ham", are counted in Skipped.
func Parse(r io.Reader) (*Corpus, error) {
	c := &Corpus{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		label, text, ok := ParseLine(line)
		if !ok {
			c.Skipped++
			continue
		}
		rec, err := vocab.NewRecord(label, text)
		if err != nil {
			c.Skipped++
			continue
		}
		c.Records = append(c.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	return c, nil
}

// Load reads and parses the corpus file at path.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }() // Read-only; close error carries no data loss

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}
