package domain

import (
	"fmt"
	"strings"
)

type Sentence struct {
	Reference string
	Hint      string
	Words     []string
}

type Tile struct {
	ID   string
	Text string
}

type Outcome int

const (
	OutcomeUndetermined Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

type Result int

const (
	ResultSolved Result = iota + 1
	ResultSkipped
)

func (r Result) String() string {
	switch r {
	case ResultSolved:
		return "solved"
	case ResultSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

type Phase string

const (
	PhaseAssembling       Phase = "assembling"
	PhaseRevealed         Phase = "revealed"
	PhaseCheckedCorrect   Phase = "checked_correct"
	PhaseCheckedIncorrect Phase = "checked_incorrect"
	PhaseCompleted        Phase = "completed"
)

// Shuffler permutes words in place.
type Shuffler func(words []string)

// Session is a value: every transition returns a new Session and leaves the
// receiver untouched, including its slices.
type Session struct {
	ArticleID string
	Sentences []Sentence
	Index     int
	Placed    []Tile
	Pool      []string
	Outcome   Outcome
	Revealed  bool
	Completed bool
	Results   []Result
}

func (s Session) Phase() Phase {
	switch {
	case s.Completed:
		return PhaseCompleted
	case s.Revealed:
		return PhaseRevealed
	case s.Outcome == OutcomeCorrect:
		return PhaseCheckedCorrect
	case s.Outcome == OutcomeIncorrect:
		return PhaseCheckedIncorrect
	default:
		return PhaseAssembling
	}
}

func (s Session) Current() Sentence {
	if s.Index < 0 || s.Index >= len(s.Sentences) {
		return Sentence{}
	}
	return s.Sentences[s.Index]
}

// Answer is the placed tiles joined with single spaces.
func (s Session) Answer() string {
	texts := make([]string, len(s.Placed))
	for i, tile := range s.Placed {
		texts[i] = tile.Text
	}
	return strings.Join(texts, " ")
}

func Start(articleID string, sentences []Sentence, shuffle Shuffler) (Session, error) {
	if len(sentences) == 0 {
		return Session{}, ErrNotPlayable
	}
	s := Session{
		ArticleID: articleID,
		Sentences: append([]Sentence(nil), sentences...),
		Results:   make([]Result, len(sentences)),
	}
	return s.initialize(0, shuffle), nil
}

func (s Session) initialize(index int, shuffle Shuffler) Session {
	next := s.clone()
	next.Index = index
	next.Pool = append([]string(nil), next.Sentences[index].Words...)
	if shuffle != nil {
		shuffle(next.Pool)
	}
	next.Placed = nil
	next.Outcome = OutcomeUndetermined
	next.Revealed = false
	return next
}

func (s Session) Place(poolIndex int, tileID string) (Session, error) {
	if err := s.require(PhaseAssembling); err != nil {
		return s, err
	}
	if poolIndex < 0 || poolIndex >= len(s.Pool) {
		return s, fmt.Errorf("%w: pool %d of %d", ErrPoolIndex, poolIndex, len(s.Pool))
	}
	next := s.clone()
	word := next.Pool[poolIndex]
	next.Pool = append(next.Pool[:poolIndex], next.Pool[poolIndex+1:]...)
	next.Placed = append(next.Placed, Tile{ID: tileID, Text: word})
	return next, nil
}

func (s Session) Remove(tileID string) (Session, error) {
	if err := s.require(PhaseAssembling); err != nil {
		return s, err
	}
	at := s.tileIndex(tileID)
	if at < 0 {
		return s, fmt.Errorf("%w: %s", ErrTileNotFound, tileID)
	}
	next := s.clone()
	word := next.Placed[at].Text
	next.Placed = append(next.Placed[:at], next.Placed[at+1:]...)
	next.Pool = append(next.Pool, word)
	return next, nil
}

func (s Session) Reorder(tileID string, target int) (Session, error) {
	if err := s.require(PhaseAssembling); err != nil {
		return s, err
	}
	from := s.tileIndex(tileID)
	if from < 0 {
		return s, fmt.Errorf("%w: %s", ErrTileNotFound, tileID)
	}
	if target < 0 || target >= len(s.Placed) {
		return s, fmt.Errorf("%w: %d of %d", ErrTargetPosition, target, len(s.Placed))
	}
	if from == target {
		return s, nil
	}
	next := s.clone()
	tile := next.Placed[from]
	rest := append(next.Placed[:from:from], next.Placed[from+1:]...)
	placed := make([]Tile, 0, len(next.Placed))
	placed = append(placed, rest[:target]...)
	placed = append(placed, tile)
	placed = append(placed, rest[target:]...)
	next.Placed = placed
	return next, nil
}

func (s Session) CheckAnswer() (Session, error) {
	if err := s.require(PhaseAssembling); err != nil {
		return s, err
	}
	if len(s.Placed) == 0 {
		return s, ErrEmptyAnswer
	}
	next := s.clone()
	if Equal(next.Current().Reference, next.Answer()) {
		next.Outcome = OutcomeCorrect
	} else {
		next.Outcome = OutcomeIncorrect
	}
	return next, nil
}

func (s Session) Retry() (Session, error) {
	if err := s.require(PhaseCheckedIncorrect); err != nil {
		return s, err
	}
	next := s.clone()
	next.Outcome = OutcomeUndetermined
	return next, nil
}

func (s Session) Reveal() (Session, error) {
	if err := s.require(PhaseAssembling); err != nil {
		return s, err
	}
	next := s.clone()
	next.Revealed = true
	return next, nil
}

func (s Session) Hide() (Session, error) {
	if err := s.require(PhaseRevealed); err != nil {
		return s, err
	}
	next := s.clone()
	next.Revealed = false
	return next, nil
}

func (s Session) Advance(shuffle Shuffler) (Session, error) {
	if err := s.require(PhaseCheckedCorrect); err != nil {
		return s, err
	}
	return s.finishSentence(ResultSolved, shuffle), nil
}

func (s Session) Skip(shuffle Shuffler) (Session, error) {
	if err := s.require(PhaseAssembling, PhaseRevealed); err != nil {
		return s, err
	}
	return s.finishSentence(ResultSkipped, shuffle), nil
}

func (s Session) finishSentence(result Result, shuffle Shuffler) Session {
	next := s.clone()
	next.Results[next.Index] = result
	if next.Index == len(next.Sentences)-1 {
		next.Completed = true
		next.Revealed = false
		return next
	}
	return next.initialize(next.Index+1, shuffle)
}

func (s Session) require(allowed ...Phase) error {
	phase := s.Phase()
	if phase == PhaseCompleted {
		return ErrSessionCompleted
	}
	for _, p := range allowed {
		if phase == p {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidTransition, phase)
}

func (s Session) tileIndex(tileID string) int {
	for i, tile := range s.Placed {
		if tile.ID == tileID {
			return i
		}
	}
	return -1
}

func (s Session) clone() Session {
	next := s
	next.Placed = append([]Tile(nil), s.Placed...)
	next.Pool = append([]string(nil), s.Pool...)
	next.Results = append([]Result(nil), s.Results...)
	return next
}
