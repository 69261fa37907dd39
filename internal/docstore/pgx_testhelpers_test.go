package docstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type testRowsBase struct{}

func (testRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (testRowsBase) Conn() *pgx.Conn { return nil }

func (testRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (testRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (testRowsBase) RawValues() [][]byte { return nil }

// valueRows yields one single-column row per value.
type valueRows struct {
	testRowsBase
	values []any
	idx    int
}

func (r *valueRows) Next() bool {
	if r.idx >= len(r.values) {
		return false
	}
	r.idx++
	return true
}

func (r *valueRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.values) {
		return pgx.ErrNoRows
	}
	if len(dest) != 1 {
		return fmt.Errorf("unexpected scan args: %d", len(dest))
	}
	switch v := r.values[r.idx-1].(type) {
	case []byte:
		p, ok := dest[0].(*[]byte)
		if !ok {
			return fmt.Errorf("unexpected scan target %T", dest[0])
		}
		*p = append([]byte(nil), v...)
	case string:
		p, ok := dest[0].(*string)
		if !ok {
			return fmt.Errorf("unexpected scan target %T", dest[0])
		}
		*p = v
	default:
		return fmt.Errorf("unsupported test value %T", v)
	}
	return nil
}

func (r *valueRows) Err() error { return nil }

func (r *valueRows) Close() {}

type execCall struct {
	sql  string
	args []any
}

// fakeQuerier records statements and serves canned rows.
type fakeQuerier struct {
	execs    []execCall
	queries  []execCall
	affected int64
	execErr  error
	rows     []any
	queryErr error
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", f.affected)), nil
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, execCall{sql: sql, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &valueRows{values: f.rows}, nil
}

func (f *fakeQuerier) Ping(context.Context) error { return nil }
