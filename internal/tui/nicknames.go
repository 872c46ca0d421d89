package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// nicknamesModel looks up a name's nickname family.
type nicknamesModel struct {
	input   textinput.Model
	query   string
	results []string
	flash   string
}

// lookupNicknamesMsg asks the root model to resolve name.
type lookupNicknamesMsg struct {
	name string
}

// nicknamesResultMsg carries the siblings of a looked up name.
type nicknamesResultMsg struct {
	name     string
	siblings []string
}

func newNicknamesModel() nicknamesModel {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = ""
	ti.Placeholder = "name"
	ti.Focus()
	return nicknamesModel{input: ti}
}

func (m nicknamesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m nicknamesModel) Update(msg tea.Msg) (nicknamesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if key.Matches(msg, zstyle.KeyBack) {
			return m, navigate(viewMenu)
		}
		if key.Matches(msg, zstyle.KeyEnter) {
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			return m, func() tea.Msg { return lookupNicknamesMsg{name: name} }
		}
		if msg.String() == "ctrl+y" && len(m.results) > 0 {
			if err := copyToClipboard(strings.Join(m.results, "\n") + "\n"); err != nil {
				m.flash = "copy: " + err.Error()
			} else {
				m.flash = "copied!"
			}
			return m, clearFlashAfter()
		}

	case nicknamesResultMsg:
		m.query = msg.name
		m.results = msg.siblings
		m.input.SetValue("")
		return m, nil

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m nicknamesModel) View() string {
	s := "\n  " + zstyle.MutedText.Render("name ") + " " + m.input.View() + "\n\n"

	if m.query != "" {
		if len(m.results) == 0 {
			s += "  " + zstyle.MutedText.Render("no nicknames for "+m.query) + "\n"
		} else {
			s += "  " + zstyle.Subtitle.Render(m.query) + "\n"
			for _, n := range m.results {
				s += "    " + n + "\n"
			}
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
