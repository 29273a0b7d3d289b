package xata

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	// defaultChunkSize is the number of records sent per bulk round trip.
	defaultChunkSize = 200

	// maxConcurrentFlushes bounds the chunk writes in flight during one
	// flush.
	maxConcurrentFlushes = 4
)

// bulkProcessor batches many row writes into fewer round trips: rows
// are queued with put and written with one flush call. A failure of
// any chunk aborts the whole flush and surfaces a single error;
// partial-batch semantics are never exposed to the caller.
type bulkProcessor struct {
	api       API
	table     string
	chunkSize int
	queue     []map[string]any
}

func newBulkProcessor(api API, table string) *bulkProcessor {
	return &bulkProcessor{
		api:       api,
		table:     table,
		chunkSize: defaultChunkSize,
	}
}

// put enqueues records for the next flush.
func (b *bulkProcessor) put(records ...map[string]any) {
	b.queue = append(b.queue, records...)
}

// flush writes all queued records in chunks and empties the queue.
// Chunks are written concurrently; the first failing chunk cancels the
// rest and its error is returned.
func (b *bulkProcessor) flush(ctx context.Context) error {
	if len(b.queue) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFlushes)

	for start := 0; start < len(b.queue); start += b.chunkSize {
		end := start + b.chunkSize
		if end > len(b.queue) {
			end = len(b.queue)
		}
		chunk := b.queue[start:end]

		g.Go(func() error {
			return b.api.BulkInsert(ctx, b.table, chunk)
		})
	}

	err := g.Wait()
	b.queue = nil
	return err
}
