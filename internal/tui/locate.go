package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zbeacon/internal/identity"
)

const (
	fieldFirst = iota
	fieldMiddle
	fieldLast
	fieldDomains
	fieldLinkedIn
	fieldAngelList
	fieldTwitter
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"first name",
	"middle name",
	"last name",
	"domains",
	"linkedin",
	"angellist",
	"twitter",
}

var fieldPlaceholders = [fieldCount]string{
	fieldMiddle:    "optional",
	fieldDomains:   "example.com, other.org",
	fieldLinkedIn:  "https://linkedin.com/in/...",
	fieldAngelList: "https://angel.co/...",
	fieldTwitter:   "https://x.com/...",
}

// locateModel is the form collecting a person to locate.
type locateModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
	flash  string
}

// locateMsg asks the root model to generate an identity for person.
type locateMsg struct {
	person identity.Person
}

// locateErrMsg reports a generation failure back to the form.
type locateErrMsg struct {
	err error
}

func newLocateModel(domains []string) locateModel {
	var inputs [fieldCount]textinput.Model
	for i := range fieldCount {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 50
		ti.Prompt = ""
		ti.Placeholder = fieldPlaceholders[i]
		inputs[i] = ti
	}
	inputs[fieldDomains].SetValue(strings.Join(domains, ", "))

	m := locateModel{inputs: inputs}
	m.inputs[m.focus].Focus()
	return m
}

func (m locateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m locateModel) Update(msg tea.Msg) (locateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case locateErrMsg:
		m.flash = msg.err.Error()
		return m, nil

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m locateModel) handleKey(msg tea.KeyMsg) (locateModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, navigate(viewMenu)
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1), textinput.Blink
	case "shift+tab", "up":
		return m.moveFocus(-1), textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	m.flash = ""
	return m.updateInput(msg)
}

func (m locateModel) moveFocus(delta int) locateModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

func (m locateModel) updateInput(msg tea.Msg) (locateModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m locateModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

func (m locateModel) submit() (locateModel, tea.Cmd) {
	p := m.person()
	if p.FirstName == "" || p.LastName == "" {
		m.flash = "first and last name are required"
		return m, clearFlashAfter()
	}
	return m, func() tea.Msg { return locateMsg{person: p} }
}

func (m locateModel) person() identity.Person {
	return identity.Person{
		FirstName:    m.value(fieldFirst),
		MiddleName:   m.value(fieldMiddle),
		LastName:     m.value(fieldLast),
		Domains:      splitList(m.value(fieldDomains)),
		LinkedInURL:  m.value(fieldLinkedIn),
		AngelListURL: m.value(fieldAngelList),
		TwitterURL:   m.value(fieldTwitter),
	}
}

// splitList splits a comma or space separated list, dropping blanks.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
}

func (m locateModel) View() string {
	s := "\n"

	for i := range fieldCount {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", fieldLabels[i]))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
