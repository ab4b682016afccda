// Package sheet is a small record store of named, key-columned tables whose
// cells are plain strings. It is the shape a spreadsheet gives us; the SQLite
// backend mirrors it for local use.
package sheet

import (
	"context"
	"fmt"
	"regexp"

	apperrors "paperdrill/internal/platform/errors"
)

// Row maps column name to cell text.
type Row map[string]string

type Table interface {
	Columns() []string
	List(ctx context.Context) ([]Row, error)
	// Update overwrites the given columns of the first row whose keyColumn
	// equals key. It returns apperrors.ErrNotFound when no row matches.
	Update(ctx context.Context, keyColumn, key string, values Row) error
	Upsert(ctx context.Context, keyColumn string, row Row) error
	Append(ctx context.Context, row Row) error
}

type Book interface {
	Table(ctx context.Context, name string, columns []string) (Table, error)
	Close() error
}

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func validateSchema(name string, columns []string) error {
	if !identifier.MatchString(name) {
		return fmt.Errorf("%w: table name %q", apperrors.ErrInvalidInput, name)
	}
	if len(columns) == 0 {
		return fmt.Errorf("%w: table %s has no columns", apperrors.ErrInvalidInput, name)
	}
	for _, col := range columns {
		if !identifier.MatchString(col) {
			return fmt.Errorf("%w: column name %q", apperrors.ErrInvalidInput, col)
		}
	}
	return nil
}

func checkColumns(known []string, row Row) error {
	set := make(map[string]struct{}, len(known))
	for _, col := range known {
		set[col] = struct{}{}
	}
	for col := range row {
		if _, ok := set[col]; !ok {
			return fmt.Errorf("%w: unknown column %q", apperrors.ErrInvalidInput, col)
		}
	}
	return nil
}
