package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zbeacon/internal/identity"
	"github.com/zarlcorp/zbeacon/internal/profile"
)

// identityField is a labeled value for display and copying.
type identityField struct {
	label string
	value string
}

// viewVariantsMsg opens the results browser for a saved profile.
type viewVariantsMsg struct {
	identity identity.Identity
}

// detailModel displays a saved profile.
type detailModel struct {
	identity   identity.Identity
	fields     []identityField
	cursor     int
	confirming bool
	flash      string
}

func newDetailModel(id identity.Identity) detailModel {
	return detailModel{
		identity: id,
		fields:   identityFields(id),
	}
}

// identityFields lists the person's inputs, parsed accounts and candidate
// counts. Blank inputs are left out.
func identityFields(id identity.Identity) []identityField {
	fields := []identityField{
		{"id", id.ID},
		{"name", id.Name()},
	}
	if len(id.Domains) > 0 {
		fields = append(fields, identityField{"domains", strings.Join(id.Domains, ", ")})
	}
	for _, svc := range profile.Services {
		if u := id.ProfileURL(svc); u != "" {
			fields = append(fields, identityField{string(svc), u})
		}
		if h, ok := id.Accounts[svc]; ok {
			fields = append(fields, identityField{string(svc) + " id", h})
		}
	}
	return append(fields,
		identityField{"names", strconv.Itoa(len(id.FullNames))},
		identityField{"usernames", strconv.Itoa(len(id.Usernames))},
		identityField{"emails", strconv.Itoa(len(id.Emails))},
		identityField{"located", id.CreatedAt.Format("2006-01-02 15:04")},
	)
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if m.confirming {
		m.confirming = false
		if msg.String() == "y" {
			id := m.identity.ID
			return m, func() tea.Msg { return deleteIdentityMsg{id: id} }
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, zstyle.KeyQuit):
		return m, tea.Quit

	case key.Matches(msg, zstyle.KeyBack):
		return m, navigate(viewList)

	case key.Matches(msg, zstyle.KeyUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, zstyle.KeyDown):
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, zstyle.KeyEnter):
		return m.copy(m.fields[m.cursor].value, "copied!")
	}

	switch msg.String() {
	case "c":
		return m.copy(m.allFieldsText(), "copied all!")

	case "v":
		id := m.identity
		return m, func() tea.Msg { return viewVariantsMsg{identity: id} }

	case "d":
		m.confirming = true
	}

	return m, nil
}

func (m detailModel) copy(text, ok string) (detailModel, tea.Cmd) {
	if err := copyToClipboard(text); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = ok
	return m, clearFlashAfter()
}

func (m detailModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m detailModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n  " + zstyle.Subtitle.Render(m.identity.Name()) + "\n\n"

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-13s", f.label))
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + label + " " + f.value + "\n"
		} else {
			s += "    " + label + " " + f.value + "\n"
		}
	}

	s += "\n"

	switch {
	case m.confirming:
		s += "  " + zstyle.StatusWarn.Render("delete this profile? y/n") + "\n"
	case m.flash != "":
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	default:
		// always reserve a line for flash to prevent layout shift
		s += "\n"
	}

	return s
}
