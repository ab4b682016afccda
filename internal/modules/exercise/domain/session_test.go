package domain_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"paperdrill/internal/modules/exercise/domain"
)

func reverse(words []string) {
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
}

func twoSentences() []domain.Sentence {
	return []domain.Sentence{
		{Reference: "We propose a model.", Hint: "モデルを提案する。", Words: []string{"We", "propose", "a", "model."}},
		{Reference: "It works.", Hint: "動く。", Words: []string{"It", "works."}},
	}
}

type tileIDs struct{ n int }

func (g *tileIDs) next() string {
	g.n++
	return fmt.Sprintf("tile-%d", g.n)
}

// placeAll moves the pool into the answer in reference order.
func placeAll(t *testing.T, s domain.Session, ids *tileIDs) domain.Session {
	t.Helper()
	for _, word := range s.Current().Words {
		idx := -1
		for i, w := range s.Pool {
			if w == word {
				idx = i
				break
			}
		}
		var err error
		s, err = s.Place(idx, ids.next())
		if err != nil {
			t.Fatalf("place %q: %v", word, err)
		}
	}
	return s
}

func TestStartRejectsEmptyArticle(t *testing.T) {
	t.Parallel()
	if _, err := domain.Start("a1", nil, reverse); !errors.Is(err, domain.ErrNotPlayable) {
		t.Fatalf("expected not playable, got %v", err)
	}
}

func TestStartShufflesACopyOfTheWords(t *testing.T) {
	t.Parallel()
	sentences := twoSentences()
	s, err := domain.Start("a1", sentences, reverse)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Phase() != domain.PhaseAssembling || s.Index != 0 {
		t.Fatalf("unexpected start state: %+v", s)
	}
	if s.Pool[0] != "model." || sentences[0].Words[0] != "We" {
		t.Fatalf("expected shuffled pool without touching source words: %v / %v", s.Pool, sentences[0].Words)
	}
}

func TestPlaceRemoveReorderKeepInputsUntouched(t *testing.T) {
	t.Parallel()
	ids := &tileIDs{}
	s0, _ := domain.Start("a1", twoSentences(), nil)

	s1, err := s0.Place(0, ids.next())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if len(s0.Placed) != 0 || len(s0.Pool) != 4 {
		t.Fatalf("place mutated its input: %+v", s0)
	}
	s2, _ := s1.Place(0, ids.next())
	s3, _ := s2.Place(0, ids.next())
	if s3.Answer() != "We propose a" || len(s3.Pool) != 1 {
		t.Fatalf("unexpected answer %q pool %v", s3.Answer(), s3.Pool)
	}

	moved, err := s3.Reorder("tile-3", 0)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if moved.Answer() != "a We propose" || s3.Answer() != "We propose a" {
		t.Fatalf("unexpected reorder result %q (input %q)", moved.Answer(), s3.Answer())
	}
	same, err := moved.Reorder("tile-1", 1)
	if err != nil || same.Answer() != moved.Answer() {
		t.Fatalf("same-position reorder should be a no-op: %q %v", same.Answer(), err)
	}

	removed, err := moved.Remove("tile-2")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Answer() != "a We" || removed.Pool[len(removed.Pool)-1] != "propose" {
		t.Fatalf("unexpected remove result %q pool %v", removed.Answer(), removed.Pool)
	}
}

func TestTileOperationErrors(t *testing.T) {
	t.Parallel()
	s, _ := domain.Start("a1", twoSentences(), nil)
	if _, err := s.Place(4, "x"); !errors.Is(err, domain.ErrPoolIndex) {
		t.Fatalf("expected pool index error, got %v", err)
	}
	if _, err := s.Place(-1, "x"); !errors.Is(err, domain.ErrPoolIndex) {
		t.Fatalf("expected pool index error, got %v", err)
	}
	if _, err := s.Remove("ghost"); !errors.Is(err, domain.ErrTileNotFound) {
		t.Fatalf("expected tile not found, got %v", err)
	}
	placed, _ := s.Place(0, "t1")
	if _, err := placed.Reorder("t1", 1); !errors.Is(err, domain.ErrTargetPosition) {
		t.Fatalf("expected target out of range, got %v", err)
	}
	if _, err := placed.Reorder("t1", -1); !errors.Is(err, domain.ErrTargetPosition) {
		t.Fatalf("expected target out of range, got %v", err)
	}
	if _, err := s.CheckAnswer(); !errors.Is(err, domain.ErrEmptyAnswer) {
		t.Fatalf("expected empty answer, got %v", err)
	}
}

func TestCheckRetryAndAdvance(t *testing.T) {
	t.Parallel()
	ids := &tileIDs{}
	s, _ := domain.Start("a1", twoSentences(), reverse)

	wrong, _ := s.Place(0, ids.next())
	checked, err := wrong.CheckAnswer()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if checked.Phase() != domain.PhaseCheckedIncorrect {
		t.Fatalf("expected incorrect, got %s", checked.Phase())
	}
	if _, err := checked.Place(0, ids.next()); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected tiles locked after check, got %v", err)
	}
	if _, err := checked.Advance(reverse); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected advance refused on incorrect, got %v", err)
	}
	retried, err := checked.Retry()
	if err != nil || retried.Phase() != domain.PhaseAssembling || len(retried.Placed) != 1 {
		t.Fatalf("retry should keep tiles: %+v %v", retried, err)
	}

	cleared, _ := retried.Remove(retried.Placed[0].ID)
	right, err := placeAll(t, cleared, ids).CheckAnswer()
	if err != nil || right.Phase() != domain.PhaseCheckedCorrect {
		t.Fatalf("expected correct, got %s %v", right.Phase(), err)
	}
	if _, err := right.Retry(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected retry refused on correct, got %v", err)
	}

	next, err := right.Advance(reverse)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if next.Index != 1 || next.Phase() != domain.PhaseAssembling || len(next.Placed) != 0 {
		t.Fatalf("unexpected state after advance: %+v", next)
	}
	if next.Results[0] != domain.ResultSolved || right.Results[0] != 0 {
		t.Fatalf("unexpected results %v (input %v)", next.Results, right.Results)
	}
}

func TestRevealHideAndSkipToCompletion(t *testing.T) {
	t.Parallel()
	s, _ := domain.Start("a1", twoSentences(), nil)

	if _, err := s.Hide(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected hide refused while assembling, got %v", err)
	}
	revealed, err := s.Reveal()
	if err != nil || revealed.Phase() != domain.PhaseRevealed {
		t.Fatalf("reveal: %s %v", revealed.Phase(), err)
	}
	if _, err := revealed.Place(0, "x"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected tile ops refused while revealed, got %v", err)
	}
	if _, err := revealed.Reveal(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected double reveal refused, got %v", err)
	}
	hidden, err := revealed.Hide()
	if err != nil || hidden.Phase() != domain.PhaseAssembling {
		t.Fatalf("hide: %s %v", hidden.Phase(), err)
	}

	skipped, err := revealed.Skip(nil)
	if err != nil || skipped.Index != 1 || skipped.Revealed {
		t.Fatalf("skip from revealed: %+v %v", skipped, err)
	}
	done, err := skipped.Skip(nil)
	if err != nil {
		t.Fatalf("skip last: %v", err)
	}
	if done.Phase() != domain.PhaseCompleted {
		t.Fatalf("expected completed, got %s", done.Phase())
	}
	if done.Results[0] != domain.ResultSkipped || done.Results[1] != domain.ResultSkipped {
		t.Fatalf("unexpected results %v", done.Results)
	}
	if _, err := done.Place(0, "x"); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected completed error, got %v", err)
	}
	if _, err := done.Skip(nil); !errors.Is(err, domain.ErrSessionCompleted) {
		t.Fatalf("expected completed error, got %v", err)
	}
}

func TestCheckedCorrectSessionCannotSkip(t *testing.T) {
	t.Parallel()
	ids := &tileIDs{}
	s, _ := domain.Start("a1", twoSentences()[1:], nil)
	right, _ := placeAll(t, s, ids).CheckAnswer()
	if _, err := right.Skip(nil); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected skip refused after correct check, got %v", err)
	}
	done, err := right.Advance(nil)
	if err != nil || !done.Completed || done.Results[0] != domain.ResultSolved {
		t.Fatalf("expected single sentence completion: %+v %v", done, err)
	}
}

var catOnMat = domain.Sentence{
	Reference: "The cat sat on the mat.",
	Words:     []string{"The", "cat", "sat", "on", "the", "mat."},
}

// fixedOrder lays the pool out as given, whatever the reference order is.
func fixedOrder(order ...string) domain.Shuffler {
	return func(words []string) { copy(words, order) }
}

// placeWords places the first pool tile matching each word, in order.
func placeWords(t *testing.T, s domain.Session, ids *tileIDs, words ...string) domain.Session {
	t.Helper()
	for _, word := range words {
		idx := slices.Index(s.Pool, word)
		if idx < 0 {
			t.Fatalf("word %q not in pool %v", word, s.Pool)
		}
		var err error
		s, err = s.Place(idx, ids.next())
		if err != nil {
			t.Fatalf("place %q: %v", word, err)
		}
	}
	return s
}

func tileIDsOf(tiles []domain.Tile) []string {
	out := make([]string, len(tiles))
	for i, tile := range tiles {
		out[i] = tile.ID
	}
	slices.Sort(out)
	return out
}

func TestCatOnMatArrangements(t *testing.T) {
	t.Parallel()

	shuffled := fixedOrder("the", "mat.", "cat", "The", "sat", "on")
	tests := []struct {
		name  string
		words []string
		want  domain.Phase
	}{
		{"reference order", []string{"The", "cat", "sat", "on", "the", "mat."}, domain.PhaseCheckedCorrect},
		{"articles swapped", []string{"the", "cat", "sat", "on", "The", "mat."}, domain.PhaseCheckedCorrect},
		{"pool order", []string{"the", "mat.", "cat", "The", "sat", "on"}, domain.PhaseCheckedIncorrect},
		{"nouns swapped", []string{"The", "mat.", "sat", "on", "the", "cat"}, domain.PhaseCheckedIncorrect},
		{"missing last word", []string{"The", "cat", "sat", "on", "the"}, domain.PhaseCheckedIncorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := domain.Start("a1", []domain.Sentence{catOnMat}, shuffled)
			if err != nil {
				t.Fatalf("start: %v", err)
			}
			if !slices.Equal(s.Pool, []string{"the", "mat.", "cat", "The", "sat", "on"}) {
				t.Fatalf("unexpected pool %v", s.Pool)
			}
			s = placeWords(t, s, &tileIDs{}, tt.words...)
			checked, err := s.CheckAnswer()
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			if got := checked.Phase(); got != tt.want {
				t.Fatalf("answer %q: got %s, want %s", checked.Answer(), got, tt.want)
			}
		})
	}
}

func TestReorderSequenceKeepsTheSameTiles(t *testing.T) {
	t.Parallel()

	s, _ := domain.Start("a1", []domain.Sentence{catOnMat}, nil)
	s = placeWords(t, s, &tileIDs{}, catOnMat.Words...)
	want := tileIDsOf(s.Placed)

	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 2000; i++ {
		tile := s.Placed[rng.IntN(len(s.Placed))]
		target := rng.IntN(len(s.Placed))
		next, err := s.Reorder(tile.ID, target)
		if err != nil {
			t.Fatalf("reorder %d: %v", i, err)
		}
		if next.Placed[target].ID != tile.ID {
			t.Fatalf("reorder %d: tile %s not at %d", i, tile.ID, target)
		}
		if got := tileIDsOf(next.Placed); !slices.Equal(got, want) {
			t.Fatalf("reorder %d changed the tiles: %v", i, got)
		}
		if len(next.Pool) != 0 {
			t.Fatalf("reorder %d touched the pool: %v", i, next.Pool)
		}
		s = next
	}
}

func TestPlaceThenRemoveRestoresPool(t *testing.T) {
	t.Parallel()

	s, _ := domain.Start("a1", []domain.Sentence{catOnMat}, fixedOrder("the", "mat.", "cat", "The", "sat", "on"))
	want := slices.Sorted(slices.Values(s.Pool))

	for i := range s.Pool {
		placed, err := s.Place(i, "t")
		if err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
		restored, err := placed.Remove("t")
		if err != nil {
			t.Fatalf("remove %d: %v", i, err)
		}
		if len(restored.Placed) != 0 {
			t.Fatalf("remove %d left tiles: %+v", i, restored.Placed)
		}
		if got := slices.Sorted(slices.Values(restored.Pool)); !slices.Equal(got, want) {
			t.Fatalf("pool after place/remove %d = %v, want %v", i, got, want)
		}
	}
}
