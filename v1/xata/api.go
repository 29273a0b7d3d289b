package xata

import "context"

// API is the surface of the Xata client the adapter consumes. The
// adapter treats it as an opaque collaborator: transport, retries, and
// authentication all live behind this interface.
//
// The default implementation is the REST client constructed by
// newRESTClient; tests substitute a recording fake via WithAPI.
type API interface {
	// GetUser fetches the authenticated identity. Used as the cheap
	// health-check round trip.
	GetUser(ctx context.Context) (*User, error)

	// CreateTable creates an empty table.
	CreateTable(ctx context.Context, table string) error

	// DeleteTable removes a table.
	DeleteTable(ctx context.Context, table string) error

	// SetTableSchema replaces the column schema of a table.
	SetTableSchema(ctx context.Context, table string, schema TableSchema) error

	// GetTableColumns returns the columns of an existing table.
	GetTableColumns(ctx context.Context, table string) ([]SchemaColumn, error)

	// GetBranchDetails returns branch metadata, including table names.
	GetBranchDetails(ctx context.Context) (*BranchDetails, error)

	// InsertRecord inserts one record; the backend assigns the id.
	InsertRecord(ctx context.Context, table string, record map[string]any, columns []string) (*RecordMeta, error)

	// InsertRecordWithID inserts one record under a caller-supplied id.
	// With createOnly set the call fails instead of overwriting an
	// existing record.
	InsertRecordWithID(ctx context.Context, table, id string, record map[string]any, createOnly bool, columns []string) (*RecordMeta, error)

	// BulkInsert writes many records in one round trip.
	BulkInsert(ctx context.Context, table string, records []map[string]any) error

	// VectorSearch runs a similarity query. The response batches are
	// wrapped one level deeper than Query's flat shape.
	VectorSearch(ctx context.Context, table string, req VectorSearchRequest) (*VectorSearchResponse, error)

	// Query runs a plain retrieval with optional ids, filter, limit and
	// offset.
	Query(ctx context.Context, table string, req QueryRequest) (*QueryResponse, error)

	// DeleteRecords removes records by id list and/or filter.
	DeleteRecords(ctx context.Context, table string, ids []string, filter map[string]any) error
}

// User is the authenticated identity returned by GetUser.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"fullname"`
}

// TableSchema is the column layout sent to SetTableSchema.
type TableSchema struct {
	Columns []SchemaColumn `json:"columns"`
}

// SchemaColumn is one column in a table schema.
type SchemaColumn struct {
	Name   string      `json:"name"`
	Type   string      `json:"type"`
	Vector *VectorMeta `json:"vector,omitempty"`
}

// VectorMeta carries vector-column settings.
type VectorMeta struct {
	Dimension int `json:"dimension"`
}

// BranchDetails is the branch metadata shape returned by the backend.
type BranchDetails struct {
	Schema BranchSchema `json:"schema"`
}

// BranchSchema lists the tables of a branch.
type BranchSchema struct {
	Tables []TableMeta `json:"tables"`
}

// TableMeta names one table of a branch.
type TableMeta struct {
	Name string `json:"name"`
}

// RecordMeta is the application-level outcome embedded in an insert
// response. A transport-level success may still carry a non-success
// status here; callers must check IsSuccess.
type RecordMeta struct {
	ID      string `json:"id,omitempty"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// IsSuccess reports whether the backend accepted the write. A zero
// status means the response carried no explicit status field.
func (m *RecordMeta) IsSuccess() bool {
	if m == nil {
		return false
	}
	return m.Status == 0 || (m.Status >= 200 && m.Status < 300)
}

// VectorSearchRequest is the similarity-query call shape.
type VectorSearchRequest struct {
	// Column is the vector column searched against.
	Column string `json:"column"`

	// QueryVector is the query embedding.
	QueryVector []float64 `json:"queryVector"`

	// Filter is the translated metadata filter, or nil.
	Filter map[string]any `json:"filter,omitempty"`

	// Size caps the number of results, when set.
	Size *int `json:"size,omitempty"`
}

// VectorSearchResponse is the similarity-query result shape. Every
// field is wrapped one level deeper than QueryResponse: the outer
// slice holds one batch per query vector, and this adapter always
// consumes the first batch.
type VectorSearchResponse struct {
	IDs       [][]string         `json:"ids"`
	Documents [][]string         `json:"documents"`
	Metadatas [][]map[string]any `json:"metadatas"`
	Distances [][]float64        `json:"distances"`
}

// QueryRequest is the plain-retrieval call shape.
type QueryRequest struct {
	IDs    []string       `json:"ids,omitempty"`
	Filter map[string]any `json:"filter,omitempty"`
	Limit  *int           `json:"limit,omitempty"`
	Offset *int           `json:"offset,omitempty"`
}

// QueryResponse is the flat plain-retrieval result shape. Distances
// are undefined for this path.
type QueryResponse struct {
	IDs       []string         `json:"ids"`
	Documents []string         `json:"documents"`
	Metadatas []map[string]any `json:"metadatas"`
}
