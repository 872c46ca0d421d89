// Package tui implements the root Bubble Tea model for zbeacon.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zbeacon/internal/identity"
)

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewLocate
	viewResults
	viewNicknames
	viewList
	viewDetail
)

// Model is the root TUI model.
type Model struct {
	version    string
	dataDir    string
	gen        *identity.Generator
	store      *zstore.Store
	identities *zstore.Collection[identity.Identity]
	configs    *zstore.Collection[configEnvelope]
	firstRun   bool
	prefs      locatePrefs

	active    viewID
	password  passwordModel
	menu      menuModel
	locate    locateModel
	results   resultsModel
	nicknames nicknamesModel
	list      listModel
	detail    detailModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version, dataDir string, gen *identity.Generator, firstRun bool) Model {
	return Model{
		version:  version,
		dataDir:  dataDir,
		gen:      gen,
		firstRun: firstRun,
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version),
		locate:   newLocateModel(nil),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results = m.results.setRows(msg.Height)
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case locateMsg:
		return m.handleLocate(msg.person)

	case saveIdentityMsg:
		return m.handleSave(msg.identity)

	case deleteIdentityMsg:
		return m.handleDelete(msg.id)

	case viewIdentityMsg:
		m.detail = newDetailModel(msg.identity)
		m.active = viewDetail
		return m, nil

	case viewVariantsMsg:
		m.results = newResultsModel(msg.identity, true, viewDetail).setRows(m.height)
		m.active = viewResults
		return m, tea.ClearScreen

	case lookupNicknamesMsg:
		m.nicknames, _ = m.nicknames.Update(nicknamesResultMsg{
			name:     msg.name,
			siblings: m.gen.Nicknames(msg.name),
		})
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu include the logo, render directly
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewLocate:
		content = m.locate.View()
	case viewResults:
		content = m.results.View()
	case viewNicknames:
		content = m.nicknames.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	}

	header := zstyle.RenderHeader("zbeacon", viewTitle(m.active), zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewLocate:
		return "Locate Person"
	case viewResults:
		return "Candidates"
	case viewNicknames:
		return "Nicknames"
	case viewList:
		return "Saved Profiles"
	case viewDetail:
		return "Profile"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewLocate:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "enter", Desc: "locate"},
			{Key: "esc", Desc: "back"},
		}
	case viewResults:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "section"},
			{Key: "j/k", Desc: "scroll"},
			{Key: "enter", Desc: "copy"},
			{Key: "c", Desc: "copy section"},
			{Key: "s", Desc: "save"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewNicknames:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "look up"},
			{Key: "ctrl+y", Desc: "copy"},
			{Key: "esc", Desc: "back"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "v", Desc: "variants"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewLocate:
		m.locate, cmd = m.locate.Update(msg)
	case viewResults:
		m.results, cmd = m.results.Update(msg)
	case viewNicknames:
		m.nicknames, cmd = m.nicknames.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	if err := os.MkdirAll(m.dataDir, 0o700); err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{
			err: fmt.Errorf("create data dir: %w", err),
		})
		return m, nil
	}

	fsys := zfilesystem.NewOSFileSystem(m.dataDir)
	s, err := zstore.Open(fsys, []byte(password))
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	idCol, err := zstore.NewCollection[identity.Identity](s, "identities")
	if err != nil {
		s.Close()
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	cfgCol, err := zstore.NewCollection[configEnvelope](s, "config")
	if err != nil {
		s.Close()
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	m.identities = idCol
	m.configs = cfgCol
	m.prefs = loadConfig[locatePrefs](cfgCol, prefsKey)
	return m.navigate(viewMenu)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version)
		if m.identities != nil {
			if ids, err := m.identities.List(); err == nil {
				mm.profileCount = len(ids)
			}
		}
		m.menu = mm
		// a fresh form each time the menu is reached
		m.locate = newLocateModel(m.prefs.Domains)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewLocate:
		m.active = viewLocate
		return m, tea.Batch(m.locate.Init(), tea.ClearScreen)

	case viewNicknames:
		m.nicknames = newNicknamesModel()
		m.active = viewNicknames
		return m, tea.Batch(m.nicknames.Init(), tea.ClearScreen)

	case viewList:
		m, cmd := m.loadList()
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) handleLocate(p identity.Person) (tea.Model, tea.Cmd) {
	id, err := m.gen.Generate(p)
	if err != nil {
		m.locate, _ = m.locate.Update(locateErrMsg{err: err})
		return m, nil
	}

	if len(id.Domains) > 0 && m.configs != nil {
		m.prefs.Domains = id.Domains
		if err := saveConfig(m.configs, prefsKey, m.prefs); err != nil {
			slog.Debug("save locate prefs", "err", err)
		}
	}

	m.results = newResultsModel(id, false, viewLocate).setRows(m.height)
	m.active = viewResults
	return m, tea.ClearScreen
}

func (m Model) loadList() (tea.Model, tea.Cmd) {
	ids, err := m.identities.List()
	if err != nil {
		// show empty list with error flash
		m.list = newListModel(nil)
		m.list.flash = "load: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	// zstore.List does not guarantee order
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].CreatedAt.After(ids[j].CreatedAt)
	})

	m.list = newListModel(ids)
	m.active = viewList
	return m, nil
}

func (m Model) handleSave(id identity.Identity) (tea.Model, tea.Cmd) {
	if err := m.identities.Put(id.ID, id); err != nil {
		m.results.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.results, _ = m.results.Update(identitySavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleDelete(id string) (tea.Model, tea.Cmd) {
	if err := m.identities.Delete(id); err != nil {
		if m.active == viewDetail {
			m.detail.flash = "delete: " + err.Error()
		} else {
			m.list.flash = "delete: " + err.Error()
		}
		return m, clearFlashAfter()
	}

	return m.loadList()
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
