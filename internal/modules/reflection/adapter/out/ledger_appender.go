package out

import (
	"context"

	ledgerdto "paperdrill/internal/modules/ledger/dto"
	ledgerin "paperdrill/internal/modules/ledger/port/in"
	reflectionout "paperdrill/internal/modules/reflection/port/out"
)

type LedgerAppender struct {
	ledger ledgerin.Usecase
}

func NewLedgerAppender(ledger ledgerin.Usecase) reflectionout.LedgerAppender {
	return &LedgerAppender{ledger: ledger}
}

func (a *LedgerAppender) Append(ctx context.Context, articleID, title string, sentences, words int) error {
	_, err := a.ledger.Record(ctx, ledgerdto.RecordInput{ArticleID: articleID, Title: title, Sentences: sentences, Words: words})
	return err
}
