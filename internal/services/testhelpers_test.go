package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"jobly/internal/models"
)

// fakeDB is a Querier test double. It records every statement and argument
// list it receives and plays back canned rows.
type fakeDB struct {
	queries [][]any // each entry: [sql, args...]

	row    []any // single row returned by QueryRow
	rowErr error // error returned by the row's Scan

	rows [][]any // result set returned by Query
}

func (f *fakeDB) record(sql string, args []any) {
	entry := append([]any{sql}, args...)
	f.queries = append(f.queries, entry)
}

func (f *fakeDB) lastSQL() string {
	if len(f.queries) == 0 {
		return ""
	}
	last := f.queries[len(f.queries)-1]
	return last[0].(string)
}

func (f *fakeDB) lastArgs() []any {
	if len(f.queries) == 0 {
		return nil
	}
	return f.queries[len(f.queries)-1][1:]
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	return fakeRow{values: f.row, err: f.rowErr}
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	return &fakeRows{rows: f.rows}, nil
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql, args)
	return pgconn.CommandTag{}, nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("fakeRow: %d destinations for %d values", len(dest), len(r.values))
	}
	for i, v := range r.values {
		if err := setDest(dest[i], v); err != nil {
			return err
		}
	}
	return nil
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return fakeRow{values: r.rows[r.idx-1]}.Scan(dest...)
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.idx-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func setDest(dest, v any) error {
	switch d := dest.(type) {
	case *string:
		*d = v.(string)
	case *int:
		*d = v.(int)
	case *float64:
		*d = v.(float64)
	case *bool:
		*d = v.(bool)
	case *time.Time:
		*d = v.(time.Time)
	case *models.ApplicationState:
		*d = models.ApplicationState(v.(string))
	default:
		return fmt.Errorf("fakeRow: unsupported destination %T", dest)
	}
	return nil
}
