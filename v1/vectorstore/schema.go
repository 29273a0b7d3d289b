package vectorstore

// ColumnType identifies the backend-agnostic type of a table column.
type ColumnType string

const (
	ColumnVector ColumnType = "vector"
	ColumnText   ColumnType = "text"
	ColumnJSON   ColumnType = "json"
)

// ColumnDef describes one column of a table.
type ColumnDef struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// SchemaColumns returns the fixed three-column schema every table in a
// vector store carries, in provisioning order.
func SchemaColumns() []ColumnDef {
	return []ColumnDef{
		{Name: FieldEmbeddings, Type: ColumnVector},
		{Name: FieldContent, Type: ColumnText},
		{Name: FieldMetadata, Type: ColumnJSON},
	}
}
