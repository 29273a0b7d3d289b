package xata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/vectoradapters/std/v1/vectorstore"
)

// Select runs either a similarity search or a plain retrieval against
// one table and normalizes both backend result shapes into the uniform
// tabular result.
//
// The routing decision is driven by the condition list: exactly one
// condition targeting the search-vector column makes this a similarity
// search whose value is the query embedding; zero such conditions make
// it a plain retrieval. Conditions on the id column become an explicit
// id-list filter, honored only by the plain path.
//
// The similarity path has no offset support; combining a search-vector
// condition with a non-nil offset is rejected as a usage error instead
// of silently ignoring the offset.
func (s *Store) Select(ctx context.Context, table string, q vectorstore.Query) (result *vectorstore.QueryResult, err error) {
	ctx, span := s.startSpan(ctx, "xata.select", table)
	defer func() { s.endSpan(span, err) }()
	defer s.observe("select", table, time.Now(), &err)

	tq, err := translateConditions(q.Conditions)
	if err != nil {
		return nil, withTable(err, table)
	}

	if tq.vector != nil && q.Offset != nil {
		return nil, vectorstore.NewError(vectorstore.ErrUsage, table,
			errors.New("offset is not supported in combination with a similarity search"))
	}

	api, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}

	var rows rowSet
	if tq.vector != nil {
		embedding, verr := toFloat64Slice(tq.vector.Value)
		if verr != nil {
			return nil, vectorstore.NewError(vectorstore.ErrUsage, table, verr)
		}

		resp, qerr := api.VectorSearch(ctx, table, VectorSearchRequest{
			Column:      vectorstore.FieldEmbeddings,
			QueryVector: embedding,
			Filter:      tq.filter,
			Size:        q.Limit,
		})
		if qerr != nil {
			return nil, vectorstore.NewError(vectorstore.ErrRead, table, qerr)
		}
		rows = rowsFromSearch(resp)
	} else {
		resp, qerr := api.Query(ctx, table, QueryRequest{
			IDs:    tq.ids,
			Filter: tq.filter,
			Limit:  q.Limit,
			Offset: q.Offset,
		})
		if qerr != nil {
			return nil, vectorstore.NewError(vectorstore.ErrRead, table, qerr)
		}
		rows = rowsFromQuery(resp)
	}

	s.log.Debug("xata select completed",
		zap.String("table", table),
		zap.Int("rows", len(rows.ids)),
		zap.Bool("similarity", tq.vector != nil))

	return rows.project(q.Columns), nil
}

// insertKind selects one of the three write execution paths.
type insertKind int

const (
	insertNone insertKind = iota
	insertBulk
	insertWithID
	insertAuto
)

// insertPlan is the closed dispatch decision for one insert call,
// keyed by batch size, id presence, and column declaration.
type insertPlan struct {
	kind insertKind
	id   string
}

// planInsert decides the write path for a batch. A multi-row batch
// always goes through the bulk path. A singleton batch takes the
// insert-with-explicit-id path only when the row carries an id AND the
// caller declared id in the column list; otherwise the backend assigns
// identity.
func planInsert(rows []vectorstore.Row, columns []string) insertPlan {
	switch {
	case len(rows) == 0:
		return insertPlan{kind: insertNone}
	case len(rows) > 1:
		return insertPlan{kind: insertBulk}
	}

	if id, ok := rows[0][vectorstore.FieldID]; ok && containsColumn(columns, vectorstore.FieldID) {
		return insertPlan{kind: insertWithID, id: fmt.Sprintf("%v", id)}
	}
	return insertPlan{kind: insertAuto}
}

// Insert writes a batch of rows, routing across the bulk,
// insert-with-id, and insert-without-id paths. An empty batch returns
// success without any backend call. The insert-with-id path runs in
// create-only mode: a pre-existing id fails the call instead of
// overwriting.
//
// An application-level failure embedded in an otherwise successful
// backend response is treated identically to a transport error: both
// surface as one write failure naming the table.
func (s *Store) Insert(ctx context.Context, table string, rows []vectorstore.Row, columns []string) (err error) {
	plan := planInsert(rows, columns)
	if plan.kind == insertNone {
		return nil
	}

	ctx, span := s.startSpan(ctx, "xata.insert", table)
	defer func() { s.endSpan(span, err) }()
	defer s.observe("insert", table, time.Now(), &err)

	records, err := encodeRecords(rows)
	if err != nil {
		return vectorstore.NewError(vectorstore.ErrWrite, table, err)
	}

	api, err := s.handle(ctx)
	if err != nil {
		return err
	}

	switch plan.kind {
	case insertBulk:
		bp := newBulkProcessor(api, table)
		bp.put(records...)
		if err := bp.flush(ctx); err != nil {
			return vectorstore.NewError(vectorstore.ErrWrite, table, err)
		}

	case insertWithID:
		record := cloneWithout(records[0], vectorstore.FieldID)
		resp, err := api.InsertRecordWithID(ctx, table, plan.id, record, true, columns)
		if err != nil {
			return vectorstore.NewError(vectorstore.ErrWrite, table, err)
		}
		if !resp.IsSuccess() {
			return vectorstore.NewError(vectorstore.ErrWrite, table, errors.New(resp.Message))
		}

	case insertAuto:
		resp, err := api.InsertRecord(ctx, table, records[0], columns)
		if err != nil {
			return vectorstore.NewError(vectorstore.ErrWrite, table, err)
		}
		if !resp.IsSuccess() {
			return vectorstore.NewError(vectorstore.ErrWrite, table, errors.New(resp.Message))
		}
	}

	s.log.Debug("xata insert completed",
		zap.String("table", table),
		zap.Int("rows", len(rows)))
	return nil
}

// Update is not supported by this backend.
func (s *Store) Update(ctx context.Context, table string, rows []vectorstore.Row, columns []string) error {
	return vectorstore.NewError(vectorstore.ErrNotImplemented, table,
		errors.New("update is not supported by the xata adapter"))
}

// Delete removes rows matching the given conditions. A delete without
// any condition, neither metadata filter nor id filter, is rejected as
// a usage error before any backend call; it is never executed as a
// delete-all.
func (s *Store) Delete(ctx context.Context, table string, conditions []vectorstore.FilterCondition) (err error) {
	tq, err := translateConditions(conditions)
	if err != nil {
		return withTable(err, table)
	}
	if tq.filter == nil && len(tq.ids) == 0 {
		return vectorstore.NewError(vectorstore.ErrUsage, table,
			errors.New("delete requires at least one condition"))
	}

	ctx, span := s.startSpan(ctx, "xata.delete", table)
	defer func() { s.endSpan(span, err) }()
	defer s.observe("delete", table, time.Now(), &err)

	api, err := s.handle(ctx)
	if err != nil {
		return err
	}

	if err := api.DeleteRecords(ctx, table, tq.ids, tq.filter); err != nil {
		return vectorstore.NewError(vectorstore.ErrWrite, table, err)
	}

	s.log.Debug("xata delete completed", zap.String("table", table))
	return nil
}

// encodeRecords converts rows into wire records. A metadata field
// arriving as a JSON string is deserialized into its structured value
// before transmission, because the input representation always carries
// metadata serialized.
func encodeRecords(rows []vectorstore.Row) ([]map[string]any, error) {
	records := make([]map[string]any, len(rows))
	for i, row := range rows {
		record := make(map[string]any, len(row))
		for k, v := range row {
			record[k] = v
		}
		if raw, ok := record[vectorstore.FieldMetadata].(string); ok && raw != "" {
			var structured any
			if err := json.Unmarshal([]byte(raw), &structured); err != nil {
				return nil, fmt.Errorf("row %d: invalid metadata JSON: %w", i, err)
			}
			record[vectorstore.FieldMetadata] = structured
		}
		records[i] = record
	}
	return records, nil
}

func cloneWithout(record map[string]any, key string) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		if k == key {
			continue
		}
		out[k] = v
	}
	return out
}

func containsColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

// withTable stamps the table name onto a structured error produced
// below the operation boundary.
func withTable(err error, table string) error {
	var se *vectorstore.Error
	if errors.As(err, &se) && se.Table == "" {
		return vectorstore.NewError(se.Kind, table, se.Cause)
	}
	return err
}

// startSpan opens a trace span for one public operation.
func (s *Store) startSpan(ctx context.Context, name, table string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("db.system", "xata"),
		attribute.String("db.table", table),
	))
}

func (s *Store) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}

// observe reports one finished operation to the observer, if any. The
// error is taken by pointer so deferred calls see the final outcome.
func (s *Store) observe(operation, table string, start time.Time, err *error) {
	if s == nil || s.observer == nil {
		return
	}
	var cause error
	if err != nil {
		cause = *err
	}
	s.observer.ObserveOperation(operation, table, time.Since(start), cause)
}
