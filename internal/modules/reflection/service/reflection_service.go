package service

import (
	"context"
	"fmt"

	"paperdrill/internal/modules/reflection/domain"
	reflectionout "paperdrill/internal/modules/reflection/port/out"
	apperrors "paperdrill/internal/platform/errors"
	"paperdrill/internal/platform/metrics"

	"go.uber.org/zap"
)

type ReflectionService struct {
	writer  reflectionout.ArticleWriter
	ledger  reflectionout.LedgerAppender
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewReflectionService(writer reflectionout.ArticleWriter, ledger reflectionout.LedgerAppender, logger *zap.Logger, m *metrics.Metrics) *ReflectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReflectionService{writer: writer, ledger: ledger, logger: logger, metrics: m}
}

// Submit marks the article done with its reflection, then appends a ledger
// row. Only the first write can fail the call. The returned flag reports
// whether the ledger row landed.
func (s *ReflectionService) Submit(ctx context.Context, submission domain.Submission) (bool, error) {
	if err := submission.Validate(); err != nil {
		s.metrics.Reflection(false)
		return false, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.writer.MarkDone(ctx, submission); err != nil {
		s.metrics.Reflection(false)
		return false, fmt.Errorf("save reflection: %w", err)
	}
	s.metrics.Reflection(true)

	if s.ledger == nil {
		return false, nil
	}
	sentences, words := submission.Counts()
	if err := s.ledger.Append(ctx, submission.ID, submission.Title, sentences, words); err != nil {
		s.metrics.LedgerFailure()
		s.logger.Warn("ledger append failed",
			zap.String("article_id", submission.ID),
			zap.Int("sentences", sentences),
			zap.Int("words", words),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}
