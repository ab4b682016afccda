package in

import (
	"context"

	"paperdrill/internal/modules/exercise/dto"
)

type Usecase interface {
	// Open loads the article from the catalog and starts a session on it.
	Open(ctx context.Context, input dto.OpenInput) (dto.Session, error)
	Start(input dto.StartInput) (dto.Session, error)
	Place(s dto.Session, poolIndex int) (dto.Session, error)
	Remove(s dto.Session, tileID string) (dto.Session, error)
	Reorder(s dto.Session, tileID string, target int) (dto.Session, error)
	Check(s dto.Session) (dto.Session, error)
	Retry(s dto.Session) (dto.Session, error)
	Reveal(s dto.Session) (dto.Session, error)
	Hide(s dto.Session) (dto.Session, error)
	Advance(s dto.Session) (dto.Session, error)
	Skip(s dto.Session) (dto.Session, error)
}
