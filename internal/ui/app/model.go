package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "paperdrill/internal/modules/catalog/dto"
	exercisedto "paperdrill/internal/modules/exercise/dto"
	reflectiondto "paperdrill/internal/modules/reflection/dto"
	"paperdrill/internal/ui/components"
	"paperdrill/internal/ui/theme"
	catalogview "paperdrill/internal/ui/views/catalog"
	gameview "paperdrill/internal/ui/views/game"
	summaryview "paperdrill/internal/ui/views/summary"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type catalogPort interface {
	catalogview.CatalogPort
	Tags(ctx context.Context) ([]catalogdto.TagCount, error)
}

type exercisePort interface {
	gameview.ExercisePort
	Open(ctx context.Context, articleID string) (exercisedto.Session, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenCatalog screenID = iota
	screenGame
	screenSummary
	screenCount
)

var screenLabels = [screenCount]string{"Articles", "Drill", "Reflect"}

// ─── async messages ──────────────────────────────────────────────────────────

type sessionOpenedMsg struct {
	article catalogdto.Article
	session exercisedto.Session
	err     error
}

type tagsLoadedMsg struct {
	tags []catalogdto.TagCount
	err  error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Reload  key.Binding
	Filter  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start drill")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Reload, k.Filter},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes between the article list,
// the drill and the reflection form, and applies completions to the catalog
// locally once the reflection is saved.
type Model struct {
	catalog  catalogPort
	exercise exercisePort

	catalogView catalogview.Model
	gameView    gameview.Model
	summaryView summaryview.Model

	article  catalogdto.Article
	screen   screenID
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(catalog catalogPort, exercise exercisePort, reflection summaryview.ReflectionPort) Model {
	return Model{
		catalog:     catalog,
		exercise:    exercise,
		catalogView: catalogview.New(catalog),
		gameView:    gameview.New(exercise),
		summaryView: summaryview.New(reflection),
		screen:      screenCatalog,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.catalogView.Init()
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case catalogview.LoadedMsg:
		if msg.Err != nil {
			m.status = "load failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("%d articles to play", len(msg.Catalog.Playable()))
		}
		var cmd tea.Cmd
		m.catalogView, cmd = m.catalogView.Update(msg)
		return m, cmd

	case sessionOpenedMsg:
		if msg.err != nil {
			m.status = "open failed: " + msg.err.Error()
			return m, nil
		}
		m.article = msg.article
		m.gameView = m.gameView.Begin(msg.session, msg.article.Title)
		m.screen = screenGame
		m.status = "drilling: " + msg.article.Title
		return m, nil

	case gameview.CompletedMsg:
		var stats *reflectiondto.Stats
		if m.article.Stats != nil {
			stats = &reflectiondto.Stats{Sentences: m.article.Stats.Sentences, Words: m.article.Stats.Words}
		}
		next, cmd, err := m.summaryView.Begin(msg.Session, m.article.Title, stats)
		if err != nil {
			m.status = "summary: " + err.Error()
			return m, nil
		}
		m.summaryView = next
		m.screen = screenSummary
		m.status = "write your reflection"
		return m, cmd

	case gameview.ExitMsg, summaryview.ExitMsg:
		m.screen = screenCatalog
		m.status = "left " + m.article.Title + " unfinished"
		return m, nil

	case summaryview.SubmittedMsg:
		var cmd tea.Cmd
		m.summaryView, cmd = m.summaryView.Update(msg)
		if msg.Err != nil {
			m.status = "save failed: " + msg.Err.Error()
			return m, cmd
		}
		var stats *catalogdto.Stats
		if msg.Stats != nil {
			stats = &catalogdto.Stats{Sentences: msg.Stats.Sentences, Words: msg.Stats.Words}
		}
		var markCmd tea.Cmd
		m.catalogView, markCmd = m.catalogView.MarkDone(msg.ID, stats)
		m.screen = screenCatalog
		m.status = "saved " + m.article.Title
		if !msg.Output.LedgerRecorded {
			m.status += " (today's log was not updated)"
		}
		return m, tea.Batch(cmd, markCmd)

	case tagsLoadedMsg:
		if msg.err != nil {
			m.status = "tags: " + msg.err.Error()
			return m, nil
		}
		m.status = formatTags(msg.tags)
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Spinner ticks and list internals belong to the catalog; cursor blinks
	// belong to the reflection form.
	var cmd, formCmd tea.Cmd
	m.catalogView, cmd = m.catalogView.Update(msg)
	if m.screen == screenSummary {
		m.summaryView, formCmd = m.summaryView.Update(msg)
	}
	return m, tea.Batch(cmd, formCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenSummary:
		// The reflection form takes every key as text input.
		m.summaryView, cmd = m.summaryView.Update(msg)
		return m, cmd

	case screenGame:
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd = m.palette.Open()
			return m, cmd
		}
		m.gameView, cmd = m.gameView.Update(msg)
		return m, cmd
	}

	if !m.catalogView.Filtering() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			cmd = m.palette.Open()
			return m, cmd
		case key.Matches(msg, m.keys.Reload):
			m.status = "reloading"
			return m, m.catalogView.Reload()
		case key.Matches(msg, m.keys.Enter):
			if a, ok := m.catalogView.Selected(); ok {
				return m, m.openCmd(a)
			}
			return m, nil
		}
	}
	m.catalogView, cmd = m.catalogView.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.activeKeys()))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) activeView() string {
	switch m.screen {
	case screenGame:
		return m.gameView.View()
	case screenSummary:
		return m.summaryView.View()
	}
	return m.catalogView.View()
}

func (m Model) activeKeys() help.KeyMap {
	switch m.screen {
	case screenGame:
		return m.gameView.Keys()
	case screenSummary:
		return m.summaryView.Keys()
	}
	return m.keys
}

func (m Model) renderHeader() string {
	parts := make([]string, screenCount)
	for i := screenID(0); i < screenCount; i++ {
		if i == m.screen {
			parts[i] = theme.Hot.Render(" " + screenLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + screenLabels[i] + " ")
		}
	}
	bar := "paperdrill  " + strings.Join(parts, theme.Muted.Render(" › "))
	return theme.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	d := m.catalogView.Catalog().DailyStats
	left := theme.Hot.Render(fmt.Sprintf("today %dp %ds %dw", d.Papers, d.Sentences, d.Words)) + "  " + m.status
	right := theme.Muted.Render(m.help.ShortHelpView(m.activeKeys().ShortHelp()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + theme.Bar.Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "reload":
		m.status = "reloading"
		return m, m.catalogView.Reload()

	case "tags":
		return m, m.tagsCmd()

	case "open":
		if len(parts) < 2 {
			m.status = "usage: open <article-id>"
			return m, nil
		}
		a, ok := m.catalogView.Catalog().Find(parts[1])
		if !ok {
			m.status = "no article " + parts[1]
			return m, nil
		}
		return m, m.openCmd(a)

	case "exit":
		if m.screen == screenGame {
			m.screen = screenCatalog
			m.status = "left " + m.article.Title + " unfinished"
		}
		return m, nil

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.catalogView, _ = m.catalogView.Update(sz)
	m.gameView, _ = m.gameView.Update(sz)
	m.summaryView, _ = m.summaryView.Update(sz)
}

func formatTags(tags []catalogdto.TagCount) string {
	if len(tags) == 0 {
		return "no tags yet"
	}
	parts := make([]string, 0, min(len(tags), 8))
	for i, t := range tags {
		if i == 8 {
			break
		}
		parts = append(parts, fmt.Sprintf("%s(%d)", t.Tag, t.Count))
	}
	return "tags: " + strings.Join(parts, " ")
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) openCmd(a catalogdto.Article) tea.Cmd {
	exercise := m.exercise
	return func() tea.Msg {
		s, err := exercise.Open(context.Background(), a.ID)
		return sessionOpenedMsg{article: a, session: s, err: err}
	}
}

func (m Model) tagsCmd() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		tags, err := catalog.Tags(context.Background())
		return tagsLoadedMsg{tags: tags, err: err}
	}
}
