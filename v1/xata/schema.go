package xata

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vectoradapters/std/v1/vectorstore"
)

// tableSchema is the fixed three-column layout every provisioned table
// receives, with the vector dimension taken from the configuration.
func (s *Store) tableSchema() TableSchema {
	return TableSchema{
		Columns: []SchemaColumn{
			{
				Name:   vectorstore.FieldEmbeddings,
				Type:   string(vectorstore.ColumnVector),
				Vector: &VectorMeta{Dimension: s.cfg.Dimension},
			},
			{Name: vectorstore.FieldContent, Type: string(vectorstore.ColumnText)},
			{Name: vectorstore.FieldMetadata, Type: string(vectorstore.ColumnJSON)},
		},
	}
}

// CreateTable creates an empty table and then sets its schema to the
// fixed three-column layout. Failure at either step yields one
// aggregated provisioning error naming the table. No rollback is
// attempted: when the schema-set fails after creation succeeded, the
// table is left behind without a schema.
func (s *Store) CreateTable(ctx context.Context, table string) (err error) {
	ctx, span := s.startSpan(ctx, "xata.create_table", table)
	defer func() { s.endSpan(span, err) }()
	defer s.observe("create_table", table, time.Now(), &err)

	api, err := s.handle(ctx)
	if err != nil {
		return err
	}

	if err := api.CreateTable(ctx, table); err != nil {
		return vectorstore.NewError(vectorstore.ErrProvisioning, table, err)
	}
	if err := api.SetTableSchema(ctx, table, s.tableSchema()); err != nil {
		return vectorstore.NewError(vectorstore.ErrProvisioning, table, err)
	}

	s.log.Info("xata table created",
		zap.String("table", table),
		zap.Int("dimension", s.cfg.Dimension))
	return nil
}

// DropTable deletes a table.
func (s *Store) DropTable(ctx context.Context, table string) (err error) {
	ctx, span := s.startSpan(ctx, "xata.drop_table", table)
	defer func() { s.endSpan(span, err) }()
	defer s.observe("drop_table", table, time.Now(), &err)

	api, err := s.handle(ctx)
	if err != nil {
		return err
	}

	if err := api.DeleteTable(ctx, table); err != nil {
		return vectorstore.NewError(vectorstore.ErrProvisioning, table, err)
	}

	s.log.Info("xata table dropped", zap.String("table", table))
	return nil
}

// GetColumns validates that the table exists on the backend, then
// returns the fixed schema description shared by all tables.
func (s *Store) GetColumns(ctx context.Context, table string) (cols []vectorstore.ColumnDef, err error) {
	ctx, span := s.startSpan(ctx, "xata.get_columns", table)
	defer func() { s.endSpan(span, err) }()
	defer s.observe("get_columns", table, time.Now(), &err)

	api, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := api.GetTableColumns(ctx, table); err != nil {
		return nil, vectorstore.NewError(vectorstore.ErrRead, table, err)
	}

	return vectorstore.SchemaColumns(), nil
}

// GetTables lists the table names in the store's branch.
func (s *Store) GetTables(ctx context.Context) (tables []string, err error) {
	ctx, span := s.startSpan(ctx, "xata.get_tables", "")
	defer func() { s.endSpan(span, err) }()
	defer s.observe("get_tables", "", time.Now(), &err)

	api, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}

	details, err := api.GetBranchDetails(ctx)
	if err != nil {
		return nil, vectorstore.NewError(vectorstore.ErrRead, "", err)
	}

	names := make([]string, 0, len(details.Schema.Tables))
	for _, t := range details.Schema.Tables {
		names = append(names, t.Name)
	}
	return names, nil
}
