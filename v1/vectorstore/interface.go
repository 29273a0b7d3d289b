package vectorstore

import "context"

// Store is the common interface for all vector-store backends.
// It exposes a uniform table abstraction (fixed three-column schema,
// CRUD, similarity search, metadata filtering) on top of whatever the
// remote database natively speaks.
//
// All operations are synchronous: no call returns before the
// underlying network round trips complete. Adapters add no locking and
// no retry policy of their own; one call should be in flight per
// adapter instance at a time.
//
// Every backend-originating failure is converted at the operation
// boundary into an [*Error] carrying the operation's table name and
// the underlying cause. Only caller contract violations (see
// [ErrUsage]) are raised without touching the backend.
type Store interface {
	// Connect establishes the backend handle. It is idempotent: when
	// already connected it returns nil without side effects.
	Connect(ctx context.Context) error

	// Disconnect releases the handle. No-op when already disconnected.
	Disconnect() error

	// CheckConnection performs a cheap authenticated round trip. If the
	// connection was opened solely for the probe, it is closed again
	// afterwards; on failure the store is forced to disconnected.
	CheckConnection(ctx context.Context) Status

	// CreateTable provisions a table with the fixed schema returned by
	// SchemaColumns.
	CreateTable(ctx context.Context, table string) error

	// DropTable deletes a table.
	DropTable(ctx context.Context, table string) error

	// GetTables lists the table names in the store.
	GetTables(ctx context.Context) ([]string, error)

	// GetColumns validates that the table exists, then returns the
	// fixed schema description.
	GetColumns(ctx context.Context, table string) ([]ColumnDef, error)

	// Insert writes a batch of rows. An empty batch succeeds without a
	// backend call. columns declares which row keys the caller intends
	// to persist; it also gates the insert-with-explicit-id path.
	Insert(ctx context.Context, table string, rows []Row, columns []string) error

	// Select runs either a similarity search (exactly one condition on
	// FieldSearchVector) or a plain retrieval (none) and returns a
	// uniform row set. Zero matching rows yield an empty result, not an
	// error.
	Select(ctx context.Context, table string, q Query) (*QueryResult, error)

	// Update is part of the contract but not every backend implements
	// it; unsupported backends return ErrNotImplemented.
	Update(ctx context.Context, table string, rows []Row, columns []string) error

	// Delete removes rows matching the given conditions. At least one
	// condition is required; an empty list is an ErrUsage violation and
	// never reaches the backend.
	Delete(ctx context.Context, table string, conditions []FilterCondition) error
}
