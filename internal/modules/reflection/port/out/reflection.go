package out

import (
	"context"

	"paperdrill/internal/modules/reflection/domain"
)

// ArticleWriter is the authoritative write: its errors reach the caller.
type ArticleWriter interface {
	MarkDone(ctx context.Context, submission domain.Submission) error
}

// LedgerAppender is best effort: its errors are logged and counted only.
type LedgerAppender interface {
	Append(ctx context.Context, articleID, title string, sentences, words int) error
}
