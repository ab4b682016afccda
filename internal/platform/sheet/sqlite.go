package sheet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "paperdrill/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteBook struct {
	db *sql.DB
}

func OpenSQLite(dbPath string) (*SQLiteBook, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &SQLiteBook{db: db}, nil
}

func (b *SQLiteBook) Table(ctx context.Context, name string, columns []string) (Table, error) {
	if err := validateSchema(name, columns); err != nil {
		return nil, err
	}
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		defs = append(defs, fmt.Sprintf("  %q TEXT NOT NULL DEFAULT ''", col))
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (\n  seq INTEGER PRIMARY KEY AUTOINCREMENT,\n%s\n);", name, strings.Join(defs, ",\n"))
	if _, err := b.db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create %s table: %w", name, err)
	}
	cols := append([]string(nil), columns...)
	return &sqliteTable{db: b.db, name: name, columns: cols}, nil
}

func (b *SQLiteBook) Close() error {
	return b.db.Close()
}

type sqliteTable struct {
	db      *sql.DB
	name    string
	columns []string
}

func (t *sqliteTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *sqliteTable) List(ctx context.Context) ([]Row, error) {
	query := fmt.Sprintf("SELECT %s FROM %q ORDER BY seq", quoteAll(t.columns), t.name)
	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		cells := make([]string, len(t.columns))
		dest := make([]any, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", t.name, err)
		}
		row := make(Row, len(t.columns))
		for i, col := range t.columns {
			row[col] = cells[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", t.name, err)
	}
	return out, nil
}

func (t *sqliteTable) Update(ctx context.Context, keyColumn, key string, values Row) error {
	if err := checkColumns(t.columns, Row{keyColumn: key}); err != nil {
		return err
	}
	if err := checkColumns(t.columns, values); err != nil {
		return err
	}
	seq, err := t.findSeq(ctx, keyColumn, key)
	if err != nil {
		return err
	}
	return t.updateSeq(ctx, seq, values)
}

func (t *sqliteTable) Upsert(ctx context.Context, keyColumn string, row Row) error {
	if err := checkColumns(t.columns, row); err != nil {
		return err
	}
	key, ok := row[keyColumn]
	if !ok {
		return fmt.Errorf("%w: row has no %s", apperrors.ErrInvalidInput, keyColumn)
	}
	seq, err := t.findSeq(ctx, keyColumn, key)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return t.Append(ctx, row)
	case err != nil:
		return err
	}
	return t.updateSeq(ctx, seq, row)
}

func (t *sqliteTable) Append(ctx context.Context, row Row) error {
	if err := checkColumns(t.columns, row); err != nil {
		return err
	}
	placeholders := make([]string, len(t.columns))
	args := make([]any, len(t.columns))
	for i, col := range t.columns {
		placeholders[i] = "?"
		args[i] = row[col]
	}
	stmt := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)", t.name, quoteAll(t.columns), strings.Join(placeholders, ", "))
	if _, err := t.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("append %s row: %w", t.name, err)
	}
	return nil
}

func (t *sqliteTable) findSeq(ctx context.Context, keyColumn, key string) (int64, error) {
	query := fmt.Sprintf("SELECT seq FROM %q WHERE %q = ? ORDER BY seq LIMIT 1", t.name, keyColumn)
	var seq int64
	err := t.db.QueryRowContext(ctx, query, key).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("find %s row: %w", t.name, err)
	}
	return seq, nil
}

func (t *sqliteTable) updateSeq(ctx context.Context, seq int64, values Row) error {
	if len(values) == 0 {
		return nil
	}
	sets := make([]string, 0, len(values))
	args := make([]any, 0, len(values)+1)
	for _, col := range t.columns {
		v, ok := values[col]
		if !ok {
			continue
		}
		sets = append(sets, fmt.Sprintf("%q = ?", col))
		args = append(args, v)
	}
	args = append(args, seq)
	stmt := fmt.Sprintf("UPDATE %q SET %s WHERE seq = ?", t.name, strings.Join(sets, ", "))
	if _, err := t.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("update %s row: %w", t.name, err)
	}
	return nil
}

func quoteAll(columns []string) string {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = fmt.Sprintf("%q", col)
	}
	return strings.Join(quoted, ", ")
}
