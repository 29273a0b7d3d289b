// Package vectorstore defines a database-agnostic contract for document
// vector stores: named tables with a fixed embedding/content/metadata
// schema, CRUD operations, similarity search, and metadata filtering.
//
// # Overview
//
// This package defines the common interface [Store] that backend
// adapters implement, allowing applications to switch between remote
// vector databases without changing application code.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                    Application Layer                        │
//	│     (uses vectorstore.Store - no backend-specific imports)  │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                    vectorstore.Store                        │
//	│          (common interface + backend-agnostic types)        │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	                           ▼
//	                  ┌────────────────┐
//	                  │  xata.Store    │
//	                  │  (implements)  │
//	                  └────────────────┘
//
// # Data model
//
// Every table carries the same fixed schema: a numeric vector column
// ([FieldEmbeddings]), a text column ([FieldContent]), and a JSON
// column ([FieldMetadata]). Rows are column-name-to-value maps; query
// results are ordered row sets with an explicit column list.
//
// Filtering is expressed as a flat list of [FilterCondition] values
// evaluated as a conjunction. Two column names are reserved and get
// special routing inside adapters rather than being translated into
// the backend filter grammar:
//
//   - [FieldSearchVector]: an equality condition on this column turns
//     the select into a similarity search; its value is the query
//     embedding.
//   - [FieldID]: conditions on this column become an explicit id-list
//     filter, because backends expose id retrieval through a distinct
//     call shape.
//
// # Usage
//
// In your application, depend only on the vectorstore interface:
//
//	import "github.com/vectoradapters/std/v1/vectorstore"
//
//	type DocumentService struct {
//	    db vectorstore.Store
//	}
//
//	func (s *DocumentService) Similar(ctx context.Context, table string, vec []float64, limit int) (*vectorstore.QueryResult, error) {
//	    return s.db.Select(ctx, table, vectorstore.Query{
//	        Columns: []string{vectorstore.FieldID, vectorstore.FieldContent},
//	        Conditions: []vectorstore.FilterCondition{
//	            vectorstore.NewCondition(vectorstore.FieldSearchVector, vectorstore.OpEqual, vec),
//	        },
//	        Limit: vectorstore.Int(limit),
//	    })
//	}
package vectorstore
