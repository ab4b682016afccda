package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	exercisedto "paperdrill/internal/modules/exercise/dto"
	reflectiondto "paperdrill/internal/modules/reflection/dto"
	"paperdrill/internal/ui/theme"
)

type ReflectionPort interface {
	Summary(session exercisedto.Session) (reflectiondto.SummaryOutput, error)
	Submit(ctx context.Context, input reflectiondto.SubmitInput) (reflectiondto.SubmitOutput, error)
}

// SubmittedMsg reports the result of the reflection write.
type SubmittedMsg struct {
	ID     string
	Stats  *reflectiondto.Stats
	Output reflectiondto.SubmitOutput
	Err    error
}

type ExitMsg struct{}

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Scroll key.Binding
	Exit   key.Binding
}

func DefaultKeys() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save and finish")),
		Scroll: key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll summary")),
		Exit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave without saving")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Exit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Scroll}, {k.Submit, k.Exit}}
}

var fieldLabels = [4]string{"Purpose", "Methods", "Results", "Memo / Questions"}

var fieldPlaceholders = [4]string{
	"What was the study for?",
	"Which methods were used?",
	"What did it find?",
	"Open questions, impressions",
}

type Model struct {
	port      ReflectionPort
	keys      KeyMap
	id        string
	title     string
	stats     *reflectiondto.Stats
	summary   reflectiondto.SummaryOutput
	items     viewport.Model
	fields    [4]textarea.Model
	focused   int
	submitted bool
	err       error
	width     int
	height    int
}

func New(port ReflectionPort) Model {
	m := Model{port: port, keys: DefaultKeys(), items: viewport.New(0, 6)}
	for i := range m.fields {
		ta := textarea.New()
		ta.Placeholder = fieldPlaceholders[i]
		ta.ShowLineNumbers = false
		ta.SetHeight(2)
		m.fields[i] = ta
	}
	return m
}

// Begin prepares the screen for a completed session. It fails when the
// session is not finished yet.
func (m Model) Begin(s exercisedto.Session, title string, stats *reflectiondto.Stats) (Model, tea.Cmd, error) {
	out, err := m.port.Summary(s)
	if err != nil {
		return m, nil, err
	}
	m.id = s.ArticleID
	m.title = title
	m.stats = stats
	m.summary = out
	m.submitted = false
	m.err = nil
	m.focused = 0
	for i := range m.fields {
		m.fields[i].Reset()
		m.fields[i].Blur()
	}
	m.items.SetContent(m.renderItems())
	m.items.GotoTop()
	cmd := m.fields[0].Focus()
	return m, cmd, nil
}

func (m Model) Keys() KeyMap { return m.keys }

// Submitted reports whether the save was already sent for this completion.
func (m Model) Submitted() bool { return m.submitted }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.items.Width = max(msg.Width-4, 20)
		for i := range m.fields {
			m.fields[i].SetWidth(max(msg.Width-4, 20))
		}
		m.items.SetContent(m.renderItems())
		return m, nil

	case SubmittedMsg:
		if msg.Err != nil {
			m.submitted = false
			m.err = msg.Err
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, func() tea.Msg { return ExitMsg{} }
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Next):
			cmd := m.focus((m.focused + 1) % len(m.fields))
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.focus((m.focused + len(m.fields) - 1) % len(m.fields))
			return m, cmd
		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.items, cmd = m.items.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.fields[m.focused], cmd = m.fields[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) focus(i int) tea.Cmd {
	m.fields[m.focused].Blur()
	m.focused = i
	return m.fields[i].Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.submitted {
		return m, nil
	}
	m.submitted = true
	m.err = nil
	input := reflectiondto.SubmitInput{
		ID:      m.id,
		Title:   m.title,
		Purpose: m.fields[0].Value(),
		Methods: m.fields[1].Value(),
		Results: m.fields[2].Value(),
		Memo:    m.fields[3].Value(),
		Stats:   m.stats,
	}
	port := m.port
	return m, func() tea.Msg {
		out, err := port.Submit(context.Background(), input)
		return SubmittedMsg{ID: input.ID, Stats: input.Stats, Output: out, Err: err}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Good.Render("Article complete: ") + theme.Title.Render(m.title) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d solved, %d skipped", m.summary.Solved, m.summary.Skipped)) + "\n\n")
	sb.WriteString(lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Render(m.items.View()) + "\n\n")

	for i, f := range m.fields {
		label := theme.Muted
		if i == m.focused {
			label = theme.Hot
		}
		sb.WriteString(label.Render(fieldLabels[i]) + "\n")
		sb.WriteString(f.View() + "\n")
	}

	switch {
	case m.err != nil:
		sb.WriteString("\n" + theme.Bad.Render("save failed: "+m.err.Error()) + "\n")
	case m.submitted:
		sb.WriteString("\n" + theme.Muted.Render("saving…") + "\n")
	default:
		sb.WriteString("\n" + theme.Muted.Render("ctrl+s: save and finish") + "\n")
	}
	return sb.String()
}

func (m Model) renderItems() string {
	if len(m.summary.Items) == 0 {
		return theme.Muted.Render("(no sentences)")
	}
	wrap := lipgloss.NewStyle().Width(max(m.items.Width-2, 20))
	var sb strings.Builder
	for i, it := range m.summary.Items {
		mark := theme.Good.Render("✓")
		if it.Result != "solved" {
			mark = theme.Bad.Render("·")
		}
		sb.WriteString(wrap.Render(fmt.Sprintf("%s %d. %s", mark, i+1, it.Reference)) + "\n")
		if it.Hint != "" {
			sb.WriteString(wrap.Render(theme.Muted.Render("   "+it.Hint)) + "\n")
		}
	}
	return sb.String()
}
