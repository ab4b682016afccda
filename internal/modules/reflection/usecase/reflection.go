package usecase

import (
	"context"

	exercisedto "paperdrill/internal/modules/exercise/dto"
	"paperdrill/internal/modules/reflection/domain"
	"paperdrill/internal/modules/reflection/dto"
	reflectionin "paperdrill/internal/modules/reflection/port/in"
	"paperdrill/internal/modules/reflection/service"
)

type Interactor struct {
	svc *service.ReflectionService
}

func NewInteractor(svc *service.ReflectionService) reflectionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summary(session exercisedto.Session) (dto.SummaryOutput, error) {
	if !session.Completed {
		return dto.SummaryOutput{}, domain.ErrSessionNotCompleted
	}
	out := dto.SummaryOutput{ArticleID: session.ArticleID, Items: make([]dto.SummaryItem, 0, len(session.Sentences))}
	for idx, sentence := range session.Sentences {
		var result exercisedto.Result
		if idx < len(session.Results) {
			result = session.Results[idx]
		}
		switch result {
		case exercisedto.ResultSolved:
			out.Solved++
		case exercisedto.ResultSkipped:
			out.Skipped++
		}
		out.Items = append(out.Items, dto.SummaryItem{Reference: sentence.Reference, Hint: sentence.Hint, Result: result.String()})
	}
	return out, nil
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	submission := domain.Submission{
		ID:      input.ID,
		Title:   input.Title,
		Purpose: input.Purpose,
		Methods: input.Methods,
		Results: input.Results,
		Memo:    input.Memo,
	}
	if input.Stats != nil {
		submission.Stats = &domain.Stats{Sentences: input.Stats.Sentences, Words: input.Stats.Words}
	}
	recorded, err := i.svc.Submit(ctx, submission)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	return dto.SubmitOutput{LedgerRecorded: recorded}, nil
}
