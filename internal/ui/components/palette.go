package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paperdrill/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []string{
	"reload",
	"tags",
	"open <article-id>",
	"exit",
}

// Palette is a one-line command prompt over bubbles/textinput. Tab
// completes the command word from the hint list.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "reload, tags, open <id>…"
	ti.CharLimit = 128
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty prompt and focuses it.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) close() Palette {
	p.visible = false
	p.input.Blur()
	return p
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return p.close(), func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			return p.close(), func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			if m := matchHints(p.input.Value(), 1); len(m) == 1 {
				p.input.SetValue(strings.Fields(m[0])[0] + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func matchHints(input string, limit int) []string {
	prefix := strings.ToLower(strings.TrimSpace(input))
	var out []string
	for _, h := range paletteHints {
		if prefix != "" && !strings.HasPrefix(h, prefix) {
			continue
		}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if hints := matchHints(p.input.Value(), len(paletteHints)); len(hints) > 0 {
		sb.WriteString("\n")
		for _, h := range hints {
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
