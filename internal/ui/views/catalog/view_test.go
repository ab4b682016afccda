package catalog

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	catalogdto "paperdrill/internal/modules/catalog/dto"
)

type stubPort struct {
	catalog catalogdto.Catalog
	err     error
}

func (s stubPort) Load(context.Context) (catalogdto.Catalog, error) { return s.catalog, s.err }

func twoArticles() catalogdto.Catalog {
	return catalogdto.Catalog{
		Articles: []catalogdto.Article{
			{ID: "a1", Title: "First", Status: catalogdto.StatusNew, GameData: []catalogdto.Sentence{{Reference: "A b.", Words: []string{"A", "b."}}}},
			{ID: "a2", Title: "Second", Status: catalogdto.StatusNew, GameData: []catalogdto.Sentence{{Reference: "C d.", Words: []string{"C", "d."}}}},
			{ID: "a3", Title: "Finished", Status: catalogdto.StatusDone, GameData: []catalogdto.Sentence{{Reference: "E.", Words: []string{"E."}}}},
			{ID: "a4", Title: "Empty", Status: catalogdto.StatusNew},
		},
		DailyStats: catalogdto.DailyStats{Papers: 1, Sentences: 2, Words: 3},
	}
}

func loadedView(t *testing.T, port stubPort) Model {
	t.Helper()
	m := New(port)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	msg := m.Reload()()
	m, _ = m.Update(msg)
	return m
}

func TestLoadListsOnlyPlayableArticles(t *testing.T) {
	t.Parallel()

	m := loadedView(t, stubPort{catalog: twoArticles()})
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected 2 playable items, got %d", got)
	}
	a, ok := m.Selected()
	if !ok || a.ID != "a1" {
		t.Fatalf("expected a1 selected, got %+v (%v)", a, ok)
	}
}

func TestMarkDoneUpdatesListAndTotalsWithoutReload(t *testing.T) {
	t.Parallel()

	m := loadedView(t, stubPort{catalog: twoArticles()})
	m, _ = m.MarkDone("a1", &catalogdto.Stats{Sentences: 1, Words: 2})

	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("expected 1 playable item, got %d", got)
	}
	if a, _ := m.Selected(); a.ID != "a2" {
		t.Fatalf("expected a2 selected, got %s", a.ID)
	}
	want := catalogdto.DailyStats{Papers: 2, Sentences: 3, Words: 5}
	if m.Catalog().DailyStats != want {
		t.Fatalf("daily stats = %+v, want %+v", m.Catalog().DailyStats, want)
	}
}

func TestLoadFailureKeepsPreviousCatalog(t *testing.T) {
	t.Parallel()

	m := loadedView(t, stubPort{catalog: twoArticles()})
	m, _ = m.Update(LoadedMsg{Err: errors.New("sheet unreachable")})

	if m.err == nil {
		t.Fatalf("expected load error to be kept")
	}
	if len(m.Catalog().Articles) != 4 {
		t.Fatalf("expected previous catalog to survive, got %d articles", len(m.Catalog().Articles))
	}
}
