package in

import (
	"context"

	"paperdrill/internal/modules/exercise/dto"
	exercisein "paperdrill/internal/modules/exercise/port/in"
)

type TUIHandler struct {
	usecase exercisein.Usecase
}

func NewTUIHandler(usecase exercisein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Open(ctx context.Context, articleID string) (dto.Session, error) {
	return h.usecase.Open(ctx, dto.OpenInput{ArticleID: articleID})
}

func (h TUIHandler) Place(s dto.Session, poolIndex int) (dto.Session, error) {
	return h.usecase.Place(s, poolIndex)
}

func (h TUIHandler) Remove(s dto.Session, tileID string) (dto.Session, error) {
	return h.usecase.Remove(s, tileID)
}

func (h TUIHandler) Reorder(s dto.Session, tileID string, target int) (dto.Session, error) {
	return h.usecase.Reorder(s, tileID, target)
}

func (h TUIHandler) Check(s dto.Session) (dto.Session, error)   { return h.usecase.Check(s) }
func (h TUIHandler) Retry(s dto.Session) (dto.Session, error)   { return h.usecase.Retry(s) }
func (h TUIHandler) Reveal(s dto.Session) (dto.Session, error)  { return h.usecase.Reveal(s) }
func (h TUIHandler) Hide(s dto.Session) (dto.Session, error)    { return h.usecase.Hide(s) }
func (h TUIHandler) Advance(s dto.Session) (dto.Session, error) { return h.usecase.Advance(s) }
func (h TUIHandler) Skip(s dto.Session) (dto.Session, error)    { return h.usecase.Skip(s) }
