package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/core/pkg/zstyle"
)

type pwField int

const (
	pwFieldPassword pwField = iota
	pwFieldConfirm
)

// passwordModel unlocks the profile store, or creates it on first run with
// a confirmation field.
type passwordModel struct {
	password textinput.Model
	confirm  textinput.Model
	focused  pwField
	firstRun bool
	errMsg   string
}

// passwordSubmitMsg is sent when the user submits a password.
type passwordSubmitMsg struct {
	password string
}

// passwordErrMsg is sent when the store cannot be opened.
type passwordErrMsg struct {
	err error
}

func newPasswordInput() textinput.Model {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = 128
	ti.Width = 40
	ti.Prompt = ""
	return ti
}

func newPasswordModel(firstRun bool) passwordModel {
	m := passwordModel{
		password: newPasswordInput(),
		confirm:  newPasswordInput(),
		firstRun: firstRun,
	}
	m.password.Focus()
	return m
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (passwordModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.firstRun && key.Matches(msg, zstyle.KeyTab) {
			return m.toggleFocus(), textinput.Blink
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.handleSubmit()
		}

		m.errMsg = ""

	case passwordErrMsg:
		m.errMsg = describeStoreErr(msg.err)
		m.password.SetValue("")
		m.confirm.SetValue("")
		m.focus(pwFieldPassword)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == pwFieldConfirm {
		m.confirm, cmd = m.confirm.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m passwordModel) toggleFocus() passwordModel {
	if m.focused == pwFieldPassword {
		m.focus(pwFieldConfirm)
	} else {
		m.focus(pwFieldPassword)
	}
	return m
}

func (m *passwordModel) focus(f pwField) {
	m.focused = f
	if f == pwFieldConfirm {
		m.password.Blur()
		m.confirm.Focus()
		return
	}
	m.confirm.Blur()
	m.password.Focus()
}

func (m passwordModel) handleSubmit() (passwordModel, tea.Cmd) {
	pass := m.password.Value()
	if pass == "" {
		m.errMsg = "password cannot be empty"
		m.focus(pwFieldPassword)
		return m, nil
	}

	if m.firstRun {
		// enter on the first field moves to confirm
		if m.focused == pwFieldPassword {
			m.focus(pwFieldConfirm)
			return m, textinput.Blink
		}
		if m.confirm.Value() != pass {
			m.errMsg = "passwords do not match"
			m.confirm.SetValue("")
			return m, nil
		}
	}

	m.errMsg = ""
	return m, func() tea.Msg {
		return passwordSubmitMsg{password: pass}
	}
}

// describeStoreErr turns a store open error into a short prompt message.
func describeStoreErr(err error) string {
	if errors.Is(err, zstore.ErrWrongPassword) {
		return "wrong password"
	}
	return err.Error()
}

func (m passwordModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(
		zstyle.StyledLogo(lipgloss.NewStyle().Foreground(zstyle.ZburnAccent)),
	)

	s := "\n" + logo + "\n" + indent.Render(zstyle.MutedText.Render("zbeacon")) + "\n\n"

	if m.firstRun {
		s += "  " + zstyle.Title.Render("create profile store") + "\n"
		s += "  " + zstyle.MutedText.Render("choose a master password to encrypt located profiles") + "\n\n"
		s += m.fieldLine("password", m.password, m.focused == pwFieldPassword)
		s += m.fieldLine("confirm", m.confirm, m.focused == pwFieldConfirm)
	} else {
		s += "  " + zstyle.Title.Render("unlock profile store") + "\n"
		s += "  " + zstyle.MutedText.Render("master password for saved profiles") + "\n\n"
		s += m.fieldLine("password", m.password, true)
	}

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	}

	s += "\n"
	return s
}

func (m passwordModel) fieldLine(label string, in textinput.Model, active bool) string {
	cursor := "  "
	if active {
		cursor = "> "
	}
	return "  " + cursor + zstyle.MutedText.Render(fmt.Sprintf("%-10s", label)) + " " + in.View() + "\n"
}
