package ingest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/jamesainslie/go-spamham/vocab"
)

func syntheticCorpus(n int) []vocab.Record {
	records := make([]vocab.Record, n)
	for i := range records {
		if i%3 == 0 {
			records[i] = vocab.Record{Class: vocab.Spam, Text: fmt.Sprintf("WIN cash prize %d now", i%17)}
		} else {
			records[i] = vocab.Record{Class: vocab.Ham, Text: fmt.Sprintf("see you at %d tonight", i%11)}
		}
	}
	return records
}

func TestBuild_MatchesSequential(t *testing.T) {
	records := syntheticCorpus(2000)

	want := vocab.New()
	for _, r := range records {
		want.Ingest(r.Class, r.Text)
	}

	for _, workers := range []int{-1, 0, 1, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := Build(context.Background(), records, workers)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if !slices.Equal(got.Tokens(), want.Tokens()) {
				t.Fatalf("token sets differ")
			}
			for _, tok := range want.Tokens() {
				g, _ := got.Entry(tok)
				w, _ := want.Entry(tok)
				if g != w {
					t.Errorf("Entry(%q) = %+v, want %+v", tok, g, w)
				}
			}
			for _, c := range vocab.Classes {
				if got.Docs(c) != want.Docs(c) {
					t.Errorf("Docs(%s) = %d, want %d", c, got.Docs(c), want.Docs(c))
				}
				if got.ClassTotal(c) != want.ClassTotal(c) {
					t.Errorf("ClassTotal(%s) = %d, want %d", c, got.ClassTotal(c), want.ClassTotal(c))
				}
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	v, err := Build(context.Background(), nil, 4)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if v.Len() != 0 || v.Docs(vocab.Spam) != 0 || v.Docs(vocab.Ham) != 0 {
		t.Errorf("expected empty vocabulary, got len=%d", v.Len())
	}
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, syntheticCorpus(10), 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBuild_InvalidClass(t *testing.T) {
	records := []vocab.Record{{Class: vocab.Class(7), Text: "boom"}}

	_, err := Build(context.Background(), records, 1)
	if !errors.Is(err, vocab.ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass, got %v", err)
	}
}
