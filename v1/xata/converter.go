package xata

import (
	"fmt"

	"github.com/vectoradapters/std/v1/vectorstore"
)

// rowSet is the normalized row shape both retrieval paths converge on.
// distances is nil for the plain path and non-nil for the similarity
// path; row order is backend order and is never re-sorted here.
type rowSet struct {
	ids       []string
	documents []string
	metadatas []map[string]any
	distances []float64
}

// rowsFromSearch unwraps a similarity response. The backend wraps this
// path one level deeper than the plain path: one batch per query
// vector, of which this adapter always issues exactly one.
func rowsFromSearch(resp *VectorSearchResponse) rowSet {
	rs := rowSet{distances: []float64{}}
	if resp == nil {
		return rs
	}
	if len(resp.IDs) > 0 {
		rs.ids = resp.IDs[0]
	}
	if len(resp.Documents) > 0 {
		rs.documents = resp.Documents[0]
	}
	if len(resp.Metadatas) > 0 {
		rs.metadatas = resp.Metadatas[0]
	}
	if len(resp.Distances) > 0 {
		rs.distances = resp.Distances[0]
	}
	return rs
}

// rowsFromQuery adopts a plain-retrieval response as is.
func rowsFromQuery(resp *QueryResponse) rowSet {
	if resp == nil {
		return rowSet{}
	}
	return rowSet{
		ids:       resp.IDs,
		documents: resp.Documents,
		metadatas: resp.Metadatas,
	}
}

// uniformColumns is the full projection emitted when the caller does
// not request specific columns.
var uniformColumns = []string{
	vectorstore.FieldID,
	vectorstore.FieldContent,
	vectorstore.FieldMetadata,
}

// project applies the caller's column projection and builds the
// uniform tabular result. The embeddings column is excluded even when
// explicitly requested; the distance column is always attached when
// the similarity path executed, regardless of the projection list.
func (rs rowSet) project(columns []string) *vectorstore.QueryResult {
	selected := uniformColumns
	if columns != nil {
		selected = make([]string, 0, len(columns))
		for _, col := range columns {
			if col == vectorstore.FieldEmbeddings {
				continue
			}
			if isUniformColumn(col) {
				selected = append(selected, col)
			}
		}
	}

	withDistance := rs.distances != nil
	out := selected
	if withDistance {
		out = append(append([]string{}, selected...), vectorstore.FieldDistance)
	}

	rows := make([]vectorstore.Row, len(rs.ids))
	for i := range rs.ids {
		row := vectorstore.Row{}
		for _, col := range selected {
			switch col {
			case vectorstore.FieldID:
				row[col] = rs.ids[i]
			case vectorstore.FieldContent:
				row[col] = valueAt(rs.documents, i)
			case vectorstore.FieldMetadata:
				row[col] = valueAt(rs.metadatas, i)
			}
		}
		if withDistance {
			row[vectorstore.FieldDistance] = valueAt(rs.distances, i)
		}
		rows[i] = row
	}

	return &vectorstore.QueryResult{Columns: out, Rows: rows}
}

func isUniformColumn(col string) bool {
	for _, c := range uniformColumns {
		if c == col {
			return true
		}
	}
	return false
}

// valueAt guards against backend responses whose parallel arrays are
// shorter than the id list.
func valueAt[T any](values []T, i int) T {
	var zero T
	if i < len(values) {
		return values[i]
	}
	return zero
}

// toFloat64Slice coerces a search-vector condition value into the
// query embedding shape the backend expects.
func toFloat64Slice(value any) ([]float64, error) {
	switch v := value.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, f := range v {
			out[i] = float64(f)
		}
		return out, nil
	case []any:
		out := make([]float64, len(v))
		for i, item := range v {
			switch n := item.(type) {
			case float64:
				out[i] = n
			case float32:
				out[i] = float64(n)
			case int:
				out[i] = float64(n)
			case int64:
				out[i] = float64(n)
			default:
				return nil, fmt.Errorf("query embedding element %d is %T, want a number", i, item)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("query embedding must be a numeric vector, got %T", value)
	}
}
