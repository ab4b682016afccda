package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "paperdrill/internal/modules/catalog/dto"
	"paperdrill/internal/ui/theme"
)

type CatalogPort interface {
	Load(ctx context.Context) (catalogdto.Catalog, error)
}

type LoadedMsg struct {
	Catalog catalogdto.Catalog
	Err     error
}

type articleItem struct {
	article catalogdto.Article
}

func (i articleItem) Title() string { return i.article.Title }
func (i articleItem) Description() string {
	desc := fmt.Sprintf("%d sentences", len(i.article.GameData))
	if len(i.article.Tags) > 0 {
		desc += "  " + strings.Join(i.article.Tags, ", ")
	}
	return desc
}
func (i articleItem) FilterValue() string {
	return i.article.Title + " " + strings.Join(i.article.Tags, " ")
}

// Model lists playable articles next to a detail pane with today's totals.
type Model struct {
	port    CatalogPort
	catalog catalogdto.Catalog
	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Articles"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload fetches articles and today's totals again.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		c, err := m.port.Load(context.Background())
		return LoadedMsg{Catalog: c, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			m.preview.SetContent(theme.Bad.Render("load failed: " + msg.Err.Error()))
			return m, nil
		}
		m.catalog = msg.Catalog
		cmds = append(cmds, m.refresh())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.preview.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading articles…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// MarkDone applies a finished article locally without going back to the store.
func (m Model) MarkDone(id string, stats *catalogdto.Stats) (Model, tea.Cmd) {
	m.catalog = m.catalog.MarkDone(id, stats)
	cmd := m.refresh()
	return m, cmd
}

func (m Model) Catalog() catalogdto.Catalog { return m.catalog }

func (m Model) Selected() (catalogdto.Article, bool) {
	if item, ok := m.list.SelectedItem().(articleItem); ok {
		return item.article, true
	}
	return catalogdto.Article{}, false
}

// Filtering reports whether the list's search filter is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) refresh() tea.Cmd {
	playable := m.catalog.Playable()
	items := make([]list.Item, len(playable))
	for i, a := range playable {
		items[i] = articleItem{article: a}
	}
	cmd := m.list.SetItems(items)
	m.preview.SetContent(m.renderDetail())
	return cmd
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	var sb strings.Builder
	d := m.catalog.DailyStats
	sb.WriteString(theme.Hot.Render("Today") + "\n")
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("papers:    "), d.Papers))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("sentences: "), d.Sentences))
	sb.WriteString(fmt.Sprintf("%s%d\n\n", theme.Muted.Render("words:     "), d.Words))

	a, ok := m.Selected()
	if !ok {
		sb.WriteString(theme.Muted.Render("Nothing left to play. Add articles or check back later."))
		return sb.String()
	}
	sb.WriteString(theme.Title.Render(a.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:        ") + a.ID + "\n")
	sb.WriteString(theme.Muted.Render("status:    ") + string(a.Status) + "\n")
	if len(a.Tags) > 0 {
		sb.WriteString(theme.Muted.Render("tags:      ") + strings.Join(a.Tags, ", ") + "\n")
	}
	if a.Stats != nil {
		sb.WriteString(fmt.Sprintf("%s%d sentences / %d words\n",
			theme.Muted.Render("size:      "), a.Stats.Sentences, a.Stats.Words))
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: start  r: reload"))
	return sb.String()
}
