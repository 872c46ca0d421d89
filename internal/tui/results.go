package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zbeacon/internal/identity"
	"github.com/zarlcorp/zbeacon/internal/profile"
)

const defaultRows = 15

// section is one scrollable group of generated candidates.
type section struct {
	title string
	items []string
}

// resultsModel browses everything generated for one person.
type resultsModel struct {
	identity identity.Identity
	sections []section
	active   int
	cursor   int
	offset   int
	rows     int
	saved    bool
	back     viewID
	flash    string
}

// saveIdentityMsg requests saving the located identity.
type saveIdentityMsg struct {
	identity identity.Identity
}

// identitySavedMsg confirms the identity was saved.
type identitySavedMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func newResultsModel(id identity.Identity, saved bool, back viewID) resultsModel {
	return resultsModel{
		identity: id,
		sections: resultSections(id),
		rows:     defaultRows,
		saved:    saved,
		back:     back,
	}
}

func resultSections(id identity.Identity) []section {
	var accounts []string
	for _, svc := range profile.Services {
		if h, ok := id.Accounts[svc]; ok {
			accounts = append(accounts, string(svc)+": "+h)
		}
	}
	return []section{
		{"names", id.FullNames},
		{"usernames", id.Usernames},
		{"emails", id.Emails},
		{"accounts", accounts},
	}
}

// setRows fits the visible window to the terminal height.
func (m resultsModel) setRows(height int) resultsModel {
	m.rows = max(height-12, 5)
	m.offset = scrollTo(m.cursor, m.offset, m.rows)
	return m
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (resultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case identitySavedMsg:
		m.saved = true
		m.flash = "saved"
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m resultsModel) current() section {
	return m.sections[m.active]
}

func (m resultsModel) handleKey(msg tea.KeyMsg) (resultsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, zstyle.KeyQuit):
		return m, tea.Quit

	case key.Matches(msg, zstyle.KeyBack):
		return m, navigate(m.back)

	case msg.String() == "shift+tab":
		return m.selectSection(m.active - 1), nil

	case key.Matches(msg, zstyle.KeyTab):
		return m.selectSection(m.active + 1), nil

	case key.Matches(msg, zstyle.KeyUp):
		if m.cursor > 0 {
			m.cursor--
			m.offset = scrollTo(m.cursor, m.offset, m.rows)
		}
		return m, nil

	case key.Matches(msg, zstyle.KeyDown):
		if m.cursor < len(m.current().items)-1 {
			m.cursor++
			m.offset = scrollTo(m.cursor, m.offset, m.rows)
		}
		return m, nil

	case key.Matches(msg, zstyle.KeyEnter):
		items := m.current().items
		if len(items) == 0 {
			return m, nil
		}
		return m.copy(items[m.cursor], "copied!")
	}

	switch msg.String() {
	case "c":
		sec := m.current()
		if len(sec.items) == 0 {
			return m, nil
		}
		return m.copy(strings.Join(sec.items, "\n")+"\n", fmt.Sprintf("copied %d %s", len(sec.items), sec.title))

	case "s":
		if m.saved {
			m.flash = "already saved"
			return m, clearFlashAfter()
		}
		id := m.identity
		return m, func() tea.Msg { return saveIdentityMsg{identity: id} }
	}

	return m, nil
}

func (m resultsModel) selectSection(i int) resultsModel {
	n := len(m.sections)
	m.active = (i + n) % n
	m.cursor = 0
	m.offset = 0
	return m
}

func (m resultsModel) copy(text, ok string) (resultsModel, tea.Cmd) {
	if err := copyToClipboard(text); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = ok
	return m, clearFlashAfter()
}

// scrollTo returns the window offset that keeps cursor visible.
func scrollTo(cursor, offset, rows int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+rows {
		return cursor - rows + 1
	}
	return offset
}

func (m resultsModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n  " + zstyle.Subtitle.Render(m.identity.Name()) + "\n\n  "

	tabs := make([]string, len(m.sections))
	for i, sec := range m.sections {
		label := fmt.Sprintf("%s (%d)", sec.title, len(sec.items))
		if i == m.active {
			tabs[i] = accentStyle.Render(label)
		} else {
			tabs[i] = zstyle.MutedText.Render(label)
		}
	}
	s += strings.Join(tabs, "  ") + "\n\n"

	items := m.current().items
	if len(items) == 0 {
		s += "    " + zstyle.MutedText.Render("nothing found") + "\n"
	}

	end := min(m.offset+m.rows, len(items))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + items[i] + "\n"
		} else {
			s += "    " + items[i] + "\n"
		}
	}

	if len(items) > m.rows {
		s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(items))) + "\n"
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
