package usecase

import (
	"context"
	"fmt"

	catalogin "paperdrill/internal/modules/catalog/port/in"
	"paperdrill/internal/modules/exercise/domain"
	"paperdrill/internal/modules/exercise/dto"
	exercisein "paperdrill/internal/modules/exercise/port/in"
	"paperdrill/internal/modules/exercise/service"
)

type Interactor struct {
	engine  *service.Engine
	catalog catalogin.Usecase
}

func NewInteractor(engine *service.Engine, catalog catalogin.Usecase) exercisein.Usecase {
	return &Interactor{engine: engine, catalog: catalog}
}

func (i *Interactor) Open(ctx context.Context, input dto.OpenInput) (dto.Session, error) {
	if i.catalog == nil {
		return dto.Session{}, fmt.Errorf("catalog usecase is not configured")
	}
	article, err := i.catalog.GetArticle(ctx, input.ArticleID)
	if err != nil {
		return dto.Session{}, err
	}
	if !article.Playable() {
		return dto.Session{}, fmt.Errorf("article %s: %w", article.ID, domain.ErrNotPlayable)
	}
	sentences := make([]domain.Sentence, 0, len(article.GameData))
	for _, s := range article.GameData {
		sentences = append(sentences, domain.Sentence{Reference: s.Reference, Hint: s.Hint, Words: s.Words})
	}
	return i.engine.Start(article.ID, sentences)
}

func (i *Interactor) Start(input dto.StartInput) (dto.Session, error) {
	return i.engine.Start(input.ArticleID, input.Sentences)
}

func (i *Interactor) Place(s dto.Session, poolIndex int) (dto.Session, error) {
	return i.engine.Place(s, poolIndex)
}

func (i *Interactor) Remove(s dto.Session, tileID string) (dto.Session, error) {
	return i.engine.Remove(s, tileID)
}

func (i *Interactor) Reorder(s dto.Session, tileID string, target int) (dto.Session, error) {
	return i.engine.Reorder(s, tileID, target)
}

func (i *Interactor) Check(s dto.Session) (dto.Session, error) {
	return i.engine.Check(s)
}

func (i *Interactor) Retry(s dto.Session) (dto.Session, error) {
	return i.engine.Retry(s)
}

func (i *Interactor) Reveal(s dto.Session) (dto.Session, error) {
	return i.engine.Reveal(s)
}

func (i *Interactor) Hide(s dto.Session) (dto.Session, error) {
	return i.engine.Hide(s)
}

func (i *Interactor) Advance(s dto.Session) (dto.Session, error) {
	return i.engine.Advance(s)
}

func (i *Interactor) Skip(s dto.Session) (dto.Session, error) {
	return i.engine.Skip(s)
}
