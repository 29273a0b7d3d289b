// Package xata adapts the Xata serverless database to the
// backend-agnostic [vectorstore.Store] contract: named tables with a
// fixed embedding/content/metadata schema, CRUD, similarity search,
// and metadata filtering.
//
// # Core Features
//
//   - Idempotent, lazily established connection with health checks
//   - Table provisioning with a fixed vector/text/json schema
//   - Translation of abstract filter conditions into the backend's
//     native filter grammar
//   - Similarity search vs plain retrieval routing based on a
//     search-vector predicate, with both result shapes normalized into
//     one uniform row set
//   - Three-path write routing (bulk, insert-with-id in create-only
//     mode, id-less insert) keyed by batch shape
//   - Fx integration, optional zap logging, prometheus operation
//     metrics and otel spans
//
// # Query routing
//
// A select carrying exactly one condition on
// [vectorstore.FieldSearchVector] becomes a similarity query; its
// value is the query embedding and every returned row carries a
// distance. Without such a condition the select is a plain retrieval:
// id conditions become an explicit id-list filter, offset and limit
// are honored, and no distance column is emitted.
//
// # Usage
//
//	cfg := xata.FromDatabaseURL(os.Getenv("XATA_DATABASE_URL")).
//	    WithAPIKey(os.Getenv("XATA_API_KEY")).
//	    WithDimension(1536)
//
//	store := xata.NewStore(cfg)
//	if err := store.Connect(ctx); err != nil {
//	    return err
//	}
//	defer store.Disconnect()
//
//	result, err := store.Select(ctx, "docs", vectorstore.Query{
//	    Columns: []string{vectorstore.FieldID, vectorstore.FieldContent},
//	    Conditions: []vectorstore.FilterCondition{
//	        vectorstore.NewCondition(vectorstore.FieldSearchVector, vectorstore.OpEqual, queryVector),
//	    },
//	    Limit: vectorstore.Int(5),
//	})
//
// With Fx:
//
//	app := fx.New(
//	    logger.FXModule,
//	    xata.FXModule,
//	    fx.Provide(func() logger.Config { return logger.Config{ServiceName: "search"} }),
//	)
package xata
