package service

import (
	"context"
	"fmt"
	"time"

	"paperdrill/internal/modules/ledger/domain"
	ledgerout "paperdrill/internal/modules/ledger/port/out"
	"paperdrill/internal/platform/clock"
	apperrors "paperdrill/internal/platform/errors"
)

type LedgerService struct {
	clock  clock.Clock
	offset time.Duration
	store  ledgerout.EntryStore
}

// NewLedgerService dates entries in the fixed zone at offset from UTC.
func NewLedgerService(clock clock.Clock, offset time.Duration, store ledgerout.EntryStore) *LedgerService {
	return &LedgerService{clock: clock, offset: offset, store: store}
}

func (s *LedgerService) today() string {
	return clock.LocalDate(s.clock.Now(), s.offset)
}

func (s *LedgerService) Record(ctx context.Context, articleID, title string, sentences, words int) (domain.Entry, error) {
	entry := domain.Entry{
		Date:      s.today(),
		ArticleID: articleID,
		Title:     title,
		Sentences: sentences,
		Words:     words,
	}
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Append(ctx, entry); err != nil {
		return domain.Entry{}, fmt.Errorf("append ledger entry: %w", err)
	}
	return entry, nil
}

func (s *LedgerService) Today(ctx context.Context) (string, domain.DailyStats, error) {
	date := s.today()
	entries, err := s.store.List(ctx)
	if err != nil {
		return "", domain.DailyStats{}, fmt.Errorf("list ledger entries: %w", err)
	}
	return date, domain.Aggregate(entries, date), nil
}
