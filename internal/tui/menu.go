package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

type menuChoice int

const (
	menuLocate menuChoice = iota
	menuNicknames
	menuBrowse
	menuQuit
)

var menuItems = []string{
	"Locate person",
	"Look up nicknames",
	"Browse saved profiles",
	"Quit",
}

// menuModel is the main menu view.
type menuModel struct {
	cursor       int
	version      string
	profileCount int
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

func navigate(v viewID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

func newMenuModel(version string) menuModel {
	return menuModel{version: version}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, zstyle.KeyQuit):
			return m, tea.Quit
		case key.Matches(msg, zstyle.KeyUp):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, zstyle.KeyDown):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, zstyle.KeyEnter):
			return m, m.selectItem()
		}
	}
	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuLocate:
		return navigate(viewLocate)
	case menuNicknames:
		return navigate(viewNicknames)
	case menuBrowse:
		return navigate(viewList)
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	title := zstyle.Title.Render("zbeacon")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n", title, ver)
	s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%d saved profiles", m.profileCount)) + "\n\n"

	for i, item := range menuItems {
		mi := zstyle.MenuItem{Label: item, Active: m.cursor == i}
		s += zstyle.RenderMenuItem(mi, zstyle.ZburnAccent) + "\n"
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
