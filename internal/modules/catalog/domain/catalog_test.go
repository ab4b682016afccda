package domain_test

import (
	"slices"
	"testing"

	"paperdrill/internal/modules/catalog/domain"
)

func sampleCatalog() domain.Catalog {
	game := []domain.Sentence{{Reference: "It works.", Words: []string{"It", "works."}}}
	return domain.Catalog{
		Articles: []domain.Article{
			{ID: "a1", Title: "Playable", Status: domain.StatusNew, GameData: game, Stats: &domain.Stats{Sentences: 3, Words: 40}, Tags: []string{"nlp", "ml"}},
			{ID: "a2", Title: "Finished", Status: domain.StatusDone, GameData: game, Tags: []string{"ml"}},
			{ID: "a3", Title: "No game", Status: domain.StatusNew, Tags: []string{"ml", "vision"}},
			{ID: "a4", Title: "Empty game", Status: domain.StatusNew, GameData: []domain.Sentence{}},
		},
		DailyStats: domain.DailyStats{Papers: 1, Sentences: 2, Words: 10},
	}
}

func TestPlayableNeedsGameDataAndNotDone(t *testing.T) {
	t.Parallel()
	playable := sampleCatalog().Playable()
	if len(playable) != 1 || playable[0].ID != "a1" {
		t.Fatalf("unexpected playable set: %+v", playable)
	}
}

func TestMarkDoneUpdatesLocally(t *testing.T) {
	t.Parallel()
	before := sampleCatalog()
	a1, _ := before.Find("a1")

	after := before.MarkDone("a1", a1.Stats)
	got, _ := after.Find("a1")
	if got.Status != domain.StatusDone {
		t.Fatalf("expected a1 done, got %s", got.Status)
	}
	want := domain.DailyStats{Papers: 2, Sentences: 5, Words: 50}
	if after.DailyStats != want {
		t.Fatalf("expected %+v, got %+v", want, after.DailyStats)
	}
	if orig, _ := before.Find("a1"); orig.Status != domain.StatusNew {
		t.Fatalf("MarkDone modified its receiver")
	}
	if len(after.Playable()) != 0 {
		t.Fatalf("completed article must leave the playable set")
	}
}

func TestMarkDoneWithoutStatsCountsPaperOnly(t *testing.T) {
	t.Parallel()
	after := sampleCatalog().MarkDone("a3", nil)
	if after.DailyStats != (domain.DailyStats{Papers: 2, Sentences: 2, Words: 10}) {
		t.Fatalf("unexpected stats %+v", after.DailyStats)
	}
}

func TestParseTagsAndStatus(t *testing.T) {
	t.Parallel()
	if got := domain.ParseTags(" nlp, ml ,,nlp, vision "); !slices.Equal(got, []string{"nlp", "ml", "vision"}) {
		t.Fatalf("unexpected tags %v", got)
	}
	if got := domain.ParseTags(""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", got)
	}
	if domain.JoinTags([]string{"a", " b", "a"}) != "a,b" {
		t.Fatalf("unexpected join")
	}
	for raw, want := range map[string]domain.Status{"Done": domain.StatusDone, "": domain.StatusNew, "Reading": domain.StatusNew, "New": domain.StatusNew} {
		if got := domain.ParseStatus(raw); got != want {
			t.Fatalf("ParseStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestTagsCountsByFrequency(t *testing.T) {
	t.Parallel()
	got := domain.Tags(sampleCatalog().Articles)
	want := []domain.TagCount{{Tag: "ml", Count: 3}, {Tag: "nlp", Count: 1}, {Tag: "vision", Count: 1}}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected tag counts %+v", got)
	}
}
