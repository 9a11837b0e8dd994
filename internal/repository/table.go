package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/harshbadhann2/society-home-connect/internal/backend"
)

// Schema describes how one entity type maps onto its table. Columns lists the
// writable columns in order; ReadOnly lists columns filled by the database
// (defaults such as created_at) that are selected but never written. The
// id column is always named "id" and is selected first.
type Schema[T any] struct {
	Table    string
	Columns  []string
	ReadOnly []string
	OrderBy  string

	// Fields returns pointers to the writable fields of row, in Columns order.
	Fields func(row *T) []any
	// ReadOnlyFields returns pointers to the ReadOnly fields of row.
	ReadOnlyFields func(row *T) []any
	// ID returns a pointer to the id field of row.
	ID func(row *T) *int64
}

// Filter narrows a List call to rows whose Column equals Value. An empty
// Column selects every row. Limit <= 0 means no limit.
type Filter struct {
	Column string
	Value  any
	Limit  int
}

// Table runs select-with-filter, insert, update and delete statements for
// one entity type. Every error it returns is a *backend.Error.
type Table[T any] struct {
	db *sql.DB
	s  Schema[T]
}

// NewTable binds a schema to a database handle.
func NewTable[T any](db *sql.DB, s Schema[T]) *Table[T] {
	if s.OrderBy == "" {
		s.OrderBy = "id"
	}
	return &Table[T]{db: db, s: s}
}

func (t *Table[T]) selectList() string {
	cols := make([]string, 0, 1+len(t.s.Columns)+len(t.s.ReadOnly))
	cols = append(cols, "id")
	cols = append(cols, t.s.Columns...)
	cols = append(cols, t.s.ReadOnly...)
	return strings.Join(cols, ", ")
}

func (t *Table[T]) dest(row *T) []any {
	out := []any{t.s.ID(row)}
	out = append(out, t.s.Fields(row)...)
	if t.s.ReadOnlyFields != nil {
		out = append(out, t.s.ReadOnlyFields(row)...)
	}
	return out
}

// HasColumn reports whether name can be used in a Filter.
func (t *Table[T]) HasColumn(name string) bool {
	if name == "id" {
		return true
	}
	for _, c := range t.s.Columns {
		if c == name {
			return true
		}
	}
	for _, c := range t.s.ReadOnly {
		if c == name {
			return true
		}
	}
	return false
}

// List returns the rows matching f ordered by the schema's OrderBy. A
// successful query with no matches returns an empty, non-nil slice.
func (t *Table[T]) List(ctx context.Context, f Filter) ([]T, error) {
	q := "SELECT " + t.selectList() + " FROM " + t.s.Table
	var args []any
	if f.Column != "" {
		if !t.HasColumn(f.Column) {
			return nil, &backend.Error{Kind: backend.KindInvalid, Op: "select", Table: t.s.Table,
				Err: fmt.Errorf("%w: %s", ErrUnknownColumn, f.Column)}
		}
		q += " WHERE " + f.Column + " = ?"
		args = append(args, f.Value)
	}
	q += " ORDER BY " + t.s.OrderBy
	if f.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, backend.Wrap("select", t.s.Table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var row T
		if err := rows.Scan(t.dest(&row)...); err != nil {
			return nil, backend.Wrap("scan", t.s.Table, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, backend.Wrap("select", t.s.Table, err)
	}
	return out, nil
}

// First returns the first row matching column = value.
func (t *Table[T]) First(ctx context.Context, column string, value any) (T, error) {
	var zero T
	rows, err := t.List(ctx, Filter{Column: column, Value: value, Limit: 1})
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, &backend.Error{Kind: backend.KindNotFound, Op: "select", Table: t.s.Table, Err: ErrNotFound}
	}
	return rows[0], nil
}

// Get fetches a row by id.
func (t *Table[T]) Get(ctx context.Context, id int64) (T, error) {
	var row T
	q := "SELECT " + t.selectList() + " FROM " + t.s.Table + " WHERE id = ?"
	if err := t.db.QueryRowContext(ctx, q, id).Scan(t.dest(&row)...); err != nil {
		var zero T
		if err == sql.ErrNoRows {
			return zero, &backend.Error{Kind: backend.KindNotFound, Op: "select", Table: t.s.Table, Err: ErrNotFound}
		}
		return zero, backend.Wrap("select", t.s.Table, err)
	}
	return row, nil
}

// Insert writes row and then re-reads it so that the id and any
// database-filled columns are populated.
func (t *Table[T]) Insert(ctx context.Context, row *T) error {
	ph := strings.TrimSuffix(strings.Repeat("?, ", len(t.s.Columns)), ", ")
	q := "INSERT INTO " + t.s.Table + " (" + strings.Join(t.s.Columns, ", ") + ") VALUES (" + ph + ")"
	res, err := t.db.ExecContext(ctx, q, values(t.s.Fields(row))...)
	if err != nil {
		return backend.Wrap("insert", t.s.Table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return backend.Wrap("insert", t.s.Table, err)
	}
	stored, err := t.Get(ctx, id)
	if err != nil {
		return err
	}
	*row = stored
	return nil
}

// Update overwrites every writable column of the row with the given id.
func (t *Table[T]) Update(ctx context.Context, id int64, row *T) error {
	sets := make([]string, len(t.s.Columns))
	for i, c := range t.s.Columns {
		sets[i] = c + " = ?"
	}
	q := "UPDATE " + t.s.Table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args := append(values(t.s.Fields(row)), id)
	res, err := t.db.ExecContext(ctx, q, args...)
	if err != nil {
		return backend.Wrap("update", t.s.Table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &backend.Error{Kind: backend.KindNotFound, Op: "update", Table: t.s.Table, Err: ErrNotFound}
	}
	stored, err := t.Get(ctx, id)
	if err != nil {
		return err
	}
	*row = stored
	return nil
}

// Delete removes the row with the given id.
func (t *Table[T]) Delete(ctx context.Context, id int64) error {
	res, err := t.db.ExecContext(ctx, "DELETE FROM "+t.s.Table+" WHERE id = ?", id)
	if err != nil {
		return backend.Wrap("delete", t.s.Table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &backend.Error{Kind: backend.KindNotFound, Op: "delete", Table: t.s.Table, Err: ErrNotFound}
	}
	return nil
}

// Count returns the number of rows in the table.
func (t *Table[T]) Count(ctx context.Context) (int, error) {
	var n int
	if err := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.s.Table).Scan(&n); err != nil {
		return 0, backend.Wrap("count", t.s.Table, err)
	}
	return n, nil
}

// values dereferences field pointers into driver arguments. A nil nullable
// foreign key becomes an untyped nil so every driver writes NULL.
func values(fields []any) []any {
	out := make([]any, len(fields))
	for i, f := range fields {
		switch p := f.(type) {
		case *string:
			out[i] = *p
		case *int:
			out[i] = *p
		case *int64:
			out[i] = *p
		case *float64:
			out[i] = *p
		case *bool:
			out[i] = *p
		case **int64:
			if *p == nil {
				out[i] = nil
			} else {
				out[i] = **p
			}
		default:
			out[i] = f
		}
	}
	return out
}
