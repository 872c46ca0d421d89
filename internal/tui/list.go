package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zbeacon/internal/identity"
)

// listModel displays saved profiles in a scrollable list.
type listModel struct {
	identities []identity.Identity
	cursor     int
	confirming bool
	flash      string
}

// deleteIdentityMsg requests deletion of a saved profile.
type deleteIdentityMsg struct {
	id string
}

// viewIdentityMsg requests viewing a specific profile.
type viewIdentityMsg struct {
	identity identity.Identity
}

func newListModel(ids []identity.Identity) listModel {
	return listModel{identities: ids}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if m.confirming {
		m.confirming = false
		if msg.String() == "y" {
			id := m.identities[m.cursor].ID
			return m, func() tea.Msg { return deleteIdentityMsg{id: id} }
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewMenu)
	}

	if len(m.identities) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, zstyle.KeyUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, zstyle.KeyDown):
		if m.cursor < len(m.identities)-1 {
			m.cursor++
		}
	case key.Matches(msg, zstyle.KeyEnter):
		id := m.identities[m.cursor]
		return m, func() tea.Msg { return viewIdentityMsg{identity: id} }
	case msg.String() == "d":
		m.confirming = true
	}

	return m, nil
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n"

	if len(m.identities) == 0 {
		s += "  " + zstyle.MutedText.Render("no saved profiles") + "\n"
		s += "\n"
		// reserved flash line (empty for empty state)
		s += "\n"
		return s
	}

	for i, id := range m.identities {
		name := truncate(id.Name(), 28)
		line := fmt.Sprintf("%-28s %-8s %s", name, id.ID, id.CreatedAt.Format("2006-01-02"))
		line += "  " + zstyle.MutedText.Render(fmt.Sprintf("(%d)", id.Total()))

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	switch {
	case m.confirming:
		name := m.identities[m.cursor].Name()
		s += "  " + zstyle.StatusWarn.Render("delete "+name+"? y/n") + "\n"
	case m.flash != "":
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	default:
		// always reserve a line for flash to prevent layout shift
		s += "\n"
	}

	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
