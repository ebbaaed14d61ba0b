// Package ingest builds a vocabulary from a training corpus using several
// workers. Each worker owns a private shard; shards are merged once every
// worker is done, so no count is ever written by two goroutines.
package ingest

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-spamham/vocab"
)

// minShardSize keeps tiny corpora on a single worker.
const minShardSize = 256

// Build ingests records into a single Vocabulary using up to workers shards.
// workers <= 0 is treated as 1. The result does not depend on the number of
// workers.
func Build(ctx context.Context, records []vocab.Record, workers int) (*vocab.Vocabulary, error) {
	if len(records) == 0 {
		return vocab.New(), nil
	}
	if workers <= 0 {
		workers = 1
	}

	shardSize := (len(records) + workers - 1) / workers
	if shardSize < minShardSize {
		shardSize = minShardSize
	}

	chunks := lo.Chunk(records, shardSize)
	shards := make([]*vocab.Vocabulary, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			shard, err := ingestShard(ctx, chunk)
			if err != nil {
				return fmt.Errorf("shard %d: %w", i, err)
			}
			shards[i] = shard
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := shards[0]
	for _, shard := range shards[1:] {
		merged.Merge(shard)
	}
	return merged, nil
}

// ingestShard fills a private vocabulary, checking ctx between records.
func ingestShard(ctx context.Context, records []vocab.Record) (*vocab.Vocabulary, error) {
	v := vocab.New()
	for _, r := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if !r.Class.Valid() {
			return nil, fmt.Errorf("%w: %d", vocab.ErrUnknownClass, r.Class)
		}
		v.Ingest(r.Class, r.Text)
	}
	return v, nil
}
