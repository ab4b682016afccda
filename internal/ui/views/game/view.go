package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	exercisedto "paperdrill/internal/modules/exercise/dto"
	"paperdrill/internal/ui/theme"
)

type ExercisePort interface {
	Place(s exercisedto.Session, poolIndex int) (exercisedto.Session, error)
	Remove(s exercisedto.Session, tileID string) (exercisedto.Session, error)
	Reorder(s exercisedto.Session, tileID string, target int) (exercisedto.Session, error)
	Check(s exercisedto.Session) (exercisedto.Session, error)
	Retry(s exercisedto.Session) (exercisedto.Session, error)
	Reveal(s exercisedto.Session) (exercisedto.Session, error)
	Hide(s exercisedto.Session) (exercisedto.Session, error)
	Advance(s exercisedto.Session) (exercisedto.Session, error)
	Skip(s exercisedto.Session) (exercisedto.Session, error)
}

// CompletedMsg is emitted once the last sentence is solved or skipped.
type CompletedMsg struct {
	Session exercisedto.Session
}

// ExitMsg asks the app to abandon the session and return to the catalog.
type ExitMsg struct{}

type KeyMap struct {
	Focus   key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Back    key.Binding
	MoveL   key.Binding
	MoveR   key.Binding
	Check   key.Binding
	Retry   key.Binding
	Reveal  key.Binding
	Skip    key.Binding
	Advance key.Binding
	Exit    key.Binding
}

func DefaultKeys() KeyMap {
	return KeyMap{
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pool/answer")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place/remove")),
		Back:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "remove last")),
		MoveL:   key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move tile left")),
		MoveR:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move tile right")),
		Check:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Reveal:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "reveal/hide")),
		Skip:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Advance: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next sentence")),
		Exit:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Check, k.Reveal, k.Skip, k.Exit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Left, k.Right, k.Toggle, k.Back},
		{k.MoveL, k.MoveR},
		{k.Check, k.Retry, k.Reveal, k.Skip, k.Advance, k.Exit},
	}
}

type focus int

const (
	focusPool focus = iota
	focusAnswer
)

type Model struct {
	port    ExercisePort
	keys    KeyMap
	session exercisedto.Session
	title   string
	focus   focus
	pool    int
	tile    int
	err     error
	width   int
	height  int
}

func New(port ExercisePort) Model {
	return Model{port: port, keys: DefaultKeys()}
}

// Begin resets the view onto a freshly started session.
func (m Model) Begin(s exercisedto.Session, title string) Model {
	m.session = s
	m.title = title
	m.focus = focusPool
	m.pool, m.tile = 0, 0
	m.err = nil
	return m
}

func (m Model) Session() exercisedto.Session { return m.session }

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.Exit):
		return m, func() tea.Msg { return ExitMsg{} }
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusPool {
			m.focus = focusAnswer
		} else {
			m.focus = focusPool
		}
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if s.Phase() == exercisedto.PhaseCheckedCorrect {
			return m.apply(m.port.Advance(s))
		}
		if m.focus == focusPool {
			return m.apply(m.port.Place(s, m.pool))
		}
		if t, ok := m.selectedTile(); ok {
			return m.apply(m.port.Remove(s, t.ID))
		}
	case key.Matches(msg, m.keys.Back):
		if n := len(s.Placed); n > 0 {
			return m.apply(m.port.Remove(s, s.Placed[n-1].ID))
		}
	case key.Matches(msg, m.keys.MoveL), key.Matches(msg, m.keys.MoveR):
		t, ok := m.selectedTile()
		if !ok {
			return m, nil
		}
		target := m.tile - 1
		if key.Matches(msg, m.keys.MoveR) {
			target = m.tile + 1
		}
		if target < 0 || target >= len(s.Placed) {
			return m, nil
		}
		next, cmd := m.apply(m.port.Reorder(s, t.ID, target))
		if next.err == nil {
			next.tile = target
		}
		return next, cmd
	case key.Matches(msg, m.keys.Check):
		return m.apply(m.port.Check(s))
	case key.Matches(msg, m.keys.Retry):
		return m.apply(m.port.Retry(s))
	case key.Matches(msg, m.keys.Reveal):
		if s.Phase() == exercisedto.PhaseRevealed {
			return m.apply(m.port.Hide(s))
		}
		return m.apply(m.port.Reveal(s))
	case key.Matches(msg, m.keys.Skip):
		return m.apply(m.port.Skip(s))
	case key.Matches(msg, m.keys.Advance):
		return m.apply(m.port.Advance(s))
	}
	return m, nil
}

// apply stores the outcome of one transition; a refused transition keeps the
// previous session and shows the error instead.
func (m Model) apply(next exercisedto.Session, err error) (Model, tea.Cmd) {
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	sentenceChanged := next.Index != m.session.Index
	m.session = next
	if sentenceChanged {
		m.focus = focusPool
		m.pool, m.tile = 0, 0
	}
	m.clamp()
	if next.Phase() == exercisedto.PhaseCompleted {
		return m, func() tea.Msg { return CompletedMsg{Session: next} }
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusPool {
		m.pool += delta
	} else {
		m.tile += delta
	}
	m.clamp()
}

func (m *Model) clamp() {
	m.pool = clampIndex(m.pool, len(m.session.Pool))
	m.tile = clampIndex(m.tile, len(m.session.Placed))
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m Model) selectedTile() (exercisedto.Tile, bool) {
	if m.tile < 0 || m.tile >= len(m.session.Placed) {
		return exercisedto.Tile{}, false
	}
	return m.session.Placed[m.tile], true
}

func (m Model) View() string {
	s := m.session
	if len(s.Sentences) == 0 {
		return theme.Muted.Render("No session running.")
	}
	width := m.width - 4
	if width < 20 {
		width = 60
	}
	wrap := lipgloss.NewStyle().Width(width)

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.title) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("Sentence %d / %d", min(s.Index+1, len(s.Sentences)), len(s.Sentences))) + "\n\n")

	if s.Phase() == exercisedto.PhaseCompleted {
		sb.WriteString(theme.Good.Render("All sentences done."))
		return theme.Pane.Render(sb.String())
	}

	cur := s.Current()
	sb.WriteString(wrap.Render(theme.Muted.Render("hint: ")+cur.Hint) + "\n\n")

	answerLabel, poolLabel := theme.Muted, theme.Muted
	if m.focus == focusAnswer {
		answerLabel = theme.Hot
	} else {
		poolLabel = theme.Hot
	}
	sb.WriteString(answerLabel.Render("answer") + "\n")
	placed := make([]string, len(s.Placed))
	for i, t := range s.Placed {
		placed[i] = t.Text
	}
	sb.WriteString(wrap.Render(renderTiles(placed, m.tile, m.focus == focusAnswer)) + "\n\n")
	sb.WriteString(poolLabel.Render("pool") + "\n")
	sb.WriteString(wrap.Render(renderTiles(s.Pool, m.pool, m.focus == focusPool)) + "\n\n")

	switch s.Phase() {
	case exercisedto.PhaseCheckedCorrect:
		sb.WriteString(theme.Good.Render("Correct!") + theme.Muted.Render("  enter/n: next sentence") + "\n")
	case exercisedto.PhaseCheckedIncorrect:
		sb.WriteString(theme.Bad.Render("Not quite.") + theme.Muted.Render("  r: retry  s: skip") + "\n")
	case exercisedto.PhaseRevealed:
		sb.WriteString(wrap.Render(theme.Hot.Render("answer: ")+cur.Reference) + "\n")
	}
	if m.err != nil {
		sb.WriteString(theme.Bad.Render(m.err.Error()) + "\n")
	}

	active := theme.PaneActive
	if m.width > 0 {
		active = active.Width(m.width - 2)
	}
	return active.Render(sb.String())
}

func renderTiles(words []string, cursor int, focused bool) string {
	if len(words) == 0 {
		return theme.Muted.Render("(empty)")
	}
	parts := make([]string, len(words))
	for i, w := range words {
		if focused && i == cursor {
			parts[i] = theme.TileActive.Render(w)
		} else {
			parts[i] = theme.Tile.Render(w)
		}
	}
	return strings.Join(parts, " ")
}
