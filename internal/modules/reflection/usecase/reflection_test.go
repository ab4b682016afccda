package usecase_test

import (
	"context"
	"errors"
	"testing"

	exercisedomain "paperdrill/internal/modules/exercise/domain"
	"paperdrill/internal/modules/reflection/domain"
	"paperdrill/internal/modules/reflection/dto"
	"paperdrill/internal/modules/reflection/service"
	"paperdrill/internal/modules/reflection/usecase"
)

type recordingWriter struct{ got domain.Submission }

func (w *recordingWriter) MarkDone(_ context.Context, s domain.Submission) error {
	w.got = s
	return nil
}

type nopLedger struct{}

func (nopLedger) Append(context.Context, string, string, int, int) error { return nil }

func completedSession(t *testing.T) exercisedomain.Session {
	t.Helper()
	s, err := exercisedomain.Start("a1", []exercisedomain.Sentence{
		{Reference: "One.", Hint: "一。", Words: []string{"One."}},
		{Reference: "Two.", Hint: "二。", Words: []string{"Two."}},
	}, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	s, _ = s.Place(0, "t1")
	s, _ = s.CheckAnswer()
	s, _ = s.Advance(nil)
	s, err = s.Skip(nil)
	if err != nil || !s.Completed {
		t.Fatalf("expected completed session: %v", err)
	}
	return s
}

func TestSummaryListsEverySentenceWithResult(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewReflectionService(&recordingWriter{}, nopLedger{}, nil, nil))
	summary, err := uc.Summary(completedSession(t))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Solved != 1 || summary.Skipped != 1 || len(summary.Items) != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Items[0] != (dto.SummaryItem{Reference: "One.", Hint: "一。", Result: "solved"}) {
		t.Fatalf("unexpected first item %+v", summary.Items[0])
	}
	if summary.Items[1].Result != "skipped" {
		t.Fatalf("unexpected second item %+v", summary.Items[1])
	}
}

func TestSummaryRequiresCompletedSession(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewReflectionService(&recordingWriter{}, nopLedger{}, nil, nil))
	s, _ := exercisedomain.Start("a1", []exercisedomain.Sentence{{Reference: "x", Words: []string{"x"}}}, nil)
	if _, err := uc.Summary(s); !errors.Is(err, domain.ErrSessionNotCompleted) {
		t.Fatalf("expected not completed, got %v", err)
	}
}

func TestSubmitMapsInput(t *testing.T) {
	t.Parallel()
	writer := &recordingWriter{}
	uc := usecase.NewInteractor(service.NewReflectionService(writer, nopLedger{}, nil, nil))
	out, err := uc.Submit(context.Background(), dto.SubmitInput{
		ID: "a1", Title: "T", Purpose: "why", Methods: "how", Results: "what", Memo: "note",
		Stats: &dto.Stats{Sentences: 2, Words: 9},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.LedgerRecorded {
		t.Fatalf("expected ledger recorded")
	}
	want := domain.Submission{ID: "a1", Title: "T", Purpose: "why", Methods: "how", Results: "what", Memo: "note"}
	got := writer.got
	if got.Stats == nil || *got.Stats != (domain.Stats{Sentences: 2, Words: 9}) {
		t.Fatalf("unexpected stats %+v", got.Stats)
	}
	got.Stats = nil
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
