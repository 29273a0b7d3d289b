package vectorstore

// Reserved column names shared by every table in a vector store.
// Adapters route conditions on FieldSearchVector and FieldID through
// dedicated backend call shapes instead of the generic filter grammar.
const (
	// FieldID is the record identifier column.
	FieldID = "id"

	// FieldContent is the text document column.
	FieldContent = "content"

	// FieldEmbeddings is the stored vector column. It is provisioned on
	// every table and is never included in projected query output.
	FieldEmbeddings = "embeddings"

	// FieldMetadata is the JSON metadata column. On the write path it
	// arrives serialized as a JSON string and is deserialized by the
	// adapter before transmission.
	FieldMetadata = "metadata"

	// FieldSearchVector is the virtual query column. A condition
	// targeting it carries the query embedding and switches a select
	// into a similarity search.
	FieldSearchVector = "search_vector"

	// FieldDistance is the virtual result column attached to every row
	// returned by a similarity search.
	FieldDistance = "distance"
)

// FilterOperator identifies a comparison primitive in a FilterCondition.
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpIn                 FilterOperator = "IN"
	OpNotIn              FilterOperator = "NOT IN"
	OpLike               FilterOperator = "LIKE"
)

// FilterCondition is a single (column, operator, value) predicate.
// A condition list is evaluated as a conjunction; conditions targeting
// the reserved columns are extracted by adapters rather than conjoined.
type FilterCondition struct {
	Column   string         `json:"column"`
	Operator FilterOperator `json:"operator"`
	Value    any            `json:"value"`
}

// NewCondition constructs a FilterCondition.
func NewCondition(column string, op FilterOperator, value any) FilterCondition {
	return FilterCondition{Column: column, Operator: op, Value: value}
}

// Row maps column names to values.
type Row map[string]any

// Query describes a select against one table. The zero value selects
// all uniform columns with no filtering and no pagination.
type Query struct {
	// Columns is the requested projection, in output order. Nil means
	// all uniform columns. FieldEmbeddings is excluded from output even
	// when requested here.
	Columns []string `json:"columns,omitempty"`

	// Conditions is the filter-condition list, evaluated as an AND.
	Conditions []FilterCondition `json:"conditions,omitempty"`

	// Offset skips rows in the plain-retrieval path. It is not
	// supported in combination with a similarity search.
	Offset *int `json:"offset,omitempty"`

	// Limit caps the number of returned rows. For similarity searches
	// it becomes the backend's result-count parameter.
	Limit *int `json:"limit,omitempty"`
}

// QueryResult is the uniform tabular result shape every adapter emits.
// Rows follow backend order; adapters do not re-sort.
type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Status reports the outcome of a connection check.
type Status struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message,omitempty"`
}

// Int returns a pointer to v, for Query.Offset and Query.Limit.
func Int(v int) *int {
	return &v
}
