package dto

import "paperdrill/internal/modules/exercise/domain"

type (
	Session  = domain.Session
	Sentence = domain.Sentence
	Tile     = domain.Tile
	Phase    = domain.Phase
	Result   = domain.Result
)

type OpenInput struct {
	ArticleID string
}

type StartInput struct {
	ArticleID string
	Sentences []Sentence
}

const (
	ResultSolved  = domain.ResultSolved
	ResultSkipped = domain.ResultSkipped
)

const (
	PhaseAssembling       = domain.PhaseAssembling
	PhaseRevealed         = domain.PhaseRevealed
	PhaseCheckedCorrect   = domain.PhaseCheckedCorrect
	PhaseCheckedIncorrect = domain.PhaseCheckedIncorrect
	PhaseCompleted        = domain.PhaseCompleted
)
