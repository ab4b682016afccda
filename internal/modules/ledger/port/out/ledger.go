package out

import (
	"context"

	"paperdrill/internal/modules/ledger/domain"
)

type EntryStore interface {
	Append(ctx context.Context, entry domain.Entry) error
	List(ctx context.Context) ([]domain.Entry, error)
}
