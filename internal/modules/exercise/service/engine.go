package service

import (
	"math/rand/v2"

	"paperdrill/internal/modules/exercise/domain"
	"paperdrill/internal/platform/id"
)

// Engine runs session transitions with a tile id source and a shuffler.
type Engine struct {
	idGen   id.Generator
	shuffle domain.Shuffler
}

func NewEngine(idGen id.Generator, shuffle domain.Shuffler) *Engine {
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	return &Engine{idGen: idGen, shuffle: shuffle}
}

func RandomShuffle(words []string) {
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

func (e *Engine) Start(articleID string, sentences []domain.Sentence) (domain.Session, error) {
	return domain.Start(articleID, sentences, e.shuffle)
}

func (e *Engine) Place(s domain.Session, poolIndex int) (domain.Session, error) {
	return s.Place(poolIndex, e.idGen.New())
}

func (e *Engine) Remove(s domain.Session, tileID string) (domain.Session, error) {
	return s.Remove(tileID)
}

func (e *Engine) Reorder(s domain.Session, tileID string, target int) (domain.Session, error) {
	return s.Reorder(tileID, target)
}

func (e *Engine) Check(s domain.Session) (domain.Session, error) {
	return s.CheckAnswer()
}

func (e *Engine) Retry(s domain.Session) (domain.Session, error) {
	return s.Retry()
}

func (e *Engine) Reveal(s domain.Session) (domain.Session, error) {
	return s.Reveal()
}

func (e *Engine) Hide(s domain.Session) (domain.Session, error) {
	return s.Hide()
}

func (e *Engine) Advance(s domain.Session) (domain.Session, error) {
	return s.Advance(e.shuffle)
}

func (e *Engine) Skip(s domain.Session) (domain.Session, error) {
	return s.Skip(e.shuffle)
}
