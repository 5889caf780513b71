package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ormcheatsheet/pkg/logger"
	"ormcheatsheet/services/job"
	"ormcheatsheet/services/store"
	"ormcheatsheet/utils"

	"gorm.io/gorm"
)

// Query is a definition together with the SQL it renders to.
type Query struct {
	Definition
	SQL string `json:"sql"`
}

// Record is one result row keyed by column name. Values are string, int64,
// float64 or nil for SQL NULL.
type Record map[string]interface{}

// Result holds the rows returned by one catalog query.
type Result struct {
	Query
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// Service provides access to the query catalog.
type Service interface {
	List() []Definition
	Describe(shape Shape) (*Query, error)
	Run(ctx context.Context, shape Shape) (*Result, error)
}

type queryService struct {
	store   *store.Store
	history *job.RunHistory
}

// Option configures a query service.
type Option func(*queryService)

// WithHistory records every run in h.
func WithHistory(h *job.RunHistory) Option {
	return func(s *queryService) {
		s.history = h
	}
}

// NewQueryService creates a catalog service running queries against st.
func NewQueryService(st *store.Store, opts ...Option) Service {
	s := &queryService{
		store: st,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *queryService) List() []Definition {
	return Definitions()
}

func (s *queryService) Describe(shape Shape) (*Query, error) {
	def, err := Lookup(shape)
	if err != nil {
		return nil, err
	}
	return &Query{Definition: def, SQL: RenderSQL(s.store.DB, def)}, nil
}

// Run executes shape on a dedicated session and returns every row.
func (s *queryService) Run(ctx context.Context, shape Shape) (*Result, error) {
	query, err := s.Describe(shape)
	if err != nil {
		return nil, err
	}

	var runID string
	if s.history != nil {
		runID = s.history.Start(shape.String())
	}

	result := &Result{Query: *query}
	start := time.Now()
	err = s.store.WithSession(ctx, func(sess *store.Session) error {
		logger.Debugf("Running %s on session %s", shape, sess.ID)
		if s.history != nil {
			s.history.SetSession(runID, sess.ID)
		}
		rows, err := query.Build(sess.DB).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		result.Columns, result.Records, err = ScanRecords(rows)
		return err
	})
	if s.history != nil {
		s.history.Complete(runID, len(result.Records), err)
	}
	if err != nil {
		logger.Errorf("Query %s failed: %v", shape, err)
		return nil, fmt.Errorf("failed to run query %s: %w", shape, err)
	}

	logger.Infof("Query %s returned %d rows in %v", shape, len(result.Records), time.Since(start))
	return result, nil
}

// RenderSQL returns the statement def produces, with parameters inlined.
// Nothing is sent to the database.
func RenderSQL(db *gorm.DB, def Definition) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return def.Build(tx).Find(&[]map[string]interface{}{})
	})
}

// ScanRecords reads every remaining row and normalizes each value by its
// column database type.
func ScanRecords(rows *sql.Rows) ([]string, []Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns: %w", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read column types: %w", err)
	}

	records := []Record{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(Record, len(columns))
		for i, col := range columns {
			record[col] = utils.NormalizeColumnValue(types[i].DatabaseTypeName(), values[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return columns, records, nil
}
