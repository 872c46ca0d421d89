package tui

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zbeacon/internal/identity"
)

// openIntegrationStore opens a real zstore backed by OSFileSystem in a temp dir.
func openIntegrationStore(t *testing.T, password string) *zstore.Store {
	t.Helper()
	fs := zfilesystem.NewOSFileSystem(t.TempDir())
	s, err := zstore.Open(fs, []byte(password))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// setupModel creates a root Model with a real zstore, bypassing the password flow.
func setupModel(t *testing.T) Model {
	t.Helper()
	s := openIntegrationStore(t, "testpass")

	idCol, err := zstore.NewCollection[identity.Identity](s, "identities")
	if err != nil {
		t.Fatal(err)
	}

	cfgCol, err := zstore.NewCollection[configEnvelope](s, "config")
	if err != nil {
		t.Fatal(err)
	}

	m := New("1.0", t.TempDir(), testGenerator(t), false)
	m.store = s
	m.identities = idCol
	m.configs = cfgCol
	m.active = viewMenu
	return m
}

// unlock submits password through a fresh root model on dir.
func unlock(t *testing.T, dir, password string, firstRun bool) Model {
	t.Helper()
	m := New("1.0", dir, testGenerator(t), firstRun)
	return processMsg(t, m, passwordSubmitMsg{password: password})
}

// processMsg sends a message through the model and returns the updated model.
func processMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	result, _ := m.Update(msg)
	return result.(Model)
}

func bond() identity.Person {
	return identity.Person{
		FirstName:  "James",
		MiddleName: "Herbert",
		LastName:   "Bond",
		Domains:    []string{"mi6.gov.uk"},
		TwitterURL: "https://x.com/jbond",
	}
}

func TestIntegrationPasswordToStoreFlow(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	m := unlock(t, dir, "mypassword", true)
	defer m.Close()

	if m.active != viewMenu {
		t.Errorf("active = %d, want viewMenu", m.active)
	}
	if m.store == nil {
		t.Error("store should be initialized")
	}
	if m.identities == nil {
		t.Error("identities collection should be initialized")
	}
	if m.configs == nil {
		t.Error("configs collection should be initialized")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestIntegrationWrongPassword(t *testing.T) {
	dir := t.TempDir()
	first := unlock(t, dir, "correct", true)
	first.Close()

	m := unlock(t, dir, "wrong", false)
	defer m.Close()
	if m.active != viewPassword {
		t.Fatalf("active = %d, want viewPassword", m.active)
	}
	if m.store != nil {
		t.Error("store should stay closed")
	}
	if m.password.errMsg != "wrong password" {
		t.Errorf("errMsg = %q, want %q", m.password.errMsg, "wrong password")
	}
}

func TestIntegrationDataDirError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	m := unlock(t, filepath.Join(file, "data"), "secret", true)
	if m.active != viewPassword {
		t.Fatalf("active = %d, want viewPassword", m.active)
	}
	if m.password.errMsg == "" {
		t.Error("should show data dir error")
	}
}

func TestIntegrationLocate(t *testing.T) {
	m := setupModel(t)
	m = processMsg(t, m, navigateMsg{view: viewLocate})
	m = processMsg(t, m, locateMsg{person: bond()})

	if m.active != viewResults {
		t.Fatalf("active = %d, want viewResults", m.active)
	}

	id := m.results.identity
	if id.ID == "" {
		t.Error("identity should have an id")
	}
	if !slices.Contains(id.FullNames, "Jimmy H Bond") {
		t.Error("full names should include nickname variants")
	}
	if !slices.Contains(id.Usernames, "James_H_Bond") {
		t.Error("usernames should include James_H_Bond")
	}
	if !slices.Contains(id.Emails, "james_h_bond@mi6.gov.uk") {
		t.Error("emails should include own domain candidates")
	}
	if !slices.Contains(id.Emails, "james.bond@gmail.com") {
		t.Error("emails should include service candidates")
	}
	if id.Accounts["twitter"] != "jbond" {
		t.Errorf("twitter = %q, want jbond", id.Accounts["twitter"])
	}
	if m.results.saved || m.results.back != viewLocate {
		t.Errorf("saved = %v back = %d", m.results.saved, m.results.back)
	}
}

func TestIntegrationLocateError(t *testing.T) {
	m := setupModel(t)
	m = processMsg(t, m, navigateMsg{view: viewLocate})
	m = processMsg(t, m, locateMsg{person: identity.Person{FirstName: "James", LastName: "!!!"}})

	if m.active != viewLocate {
		t.Fatalf("active = %d, want viewLocate", m.active)
	}
	if m.locate.flash == "" {
		t.Error("locate form should show the error")
	}
}

func TestIntegrationLocateSaveBrowseDelete(t *testing.T) {
	m := setupModel(t)
	m = processMsg(t, m, locateMsg{person: bond()})
	located := m.results.identity

	m = processMsg(t, m, saveIdentityMsg{identity: located})
	if !m.results.saved {
		t.Fatal("results should be marked saved")
	}

	got, err := m.identities.Get(located.ID)
	if err != nil {
		t.Fatalf("get saved identity: %v", err)
	}
	if got.Total() != located.Total() {
		t.Errorf("saved total = %d, want %d", got.Total(), located.Total())
	}

	m = processMsg(t, m, navigateMsg{view: viewList})
	if m.active != viewList || len(m.list.identities) != 1 {
		t.Fatalf("active = %d identities = %d, want list of 1", m.active, len(m.list.identities))
	}

	m = processMsg(t, m, viewIdentityMsg{identity: m.list.identities[0]})
	if m.active != viewDetail || m.detail.identity.ID != located.ID {
		t.Fatalf("active = %d, want detail of %s", m.active, located.ID)
	}

	m = processMsg(t, m, viewVariantsMsg{identity: m.detail.identity})
	if m.active != viewResults || !m.results.saved || m.results.back != viewDetail {
		t.Fatalf("variants: active = %d saved = %v back = %d", m.active, m.results.saved, m.results.back)
	}

	m = processMsg(t, m, navigateMsg{view: viewDetail})
	m = processMsg(t, m, deleteIdentityMsg{id: located.ID})
	if m.active != viewList {
		t.Errorf("active = %d, want viewList after delete", m.active)
	}
	if len(m.list.identities) != 0 {
		t.Errorf("identities = %d, want 0", len(m.list.identities))
	}
}

func TestIntegrationListNewestFirst(t *testing.T) {
	m := setupModel(t)

	older := testIdentity()
	newer := testIdentity()
	newer.ID = "def67890"
	newer.CreatedAt = older.CreatedAt.AddDate(0, 1, 0)

	for _, id := range []identity.Identity{older, newer} {
		if err := m.identities.Put(id.ID, id); err != nil {
			t.Fatal(err)
		}
	}

	m = processMsg(t, m, navigateMsg{view: viewList})
	if len(m.list.identities) != 2 {
		t.Fatalf("identities = %d, want 2", len(m.list.identities))
	}
	if m.list.identities[0].ID != newer.ID {
		t.Errorf("first = %s, want %s", m.list.identities[0].ID, newer.ID)
	}
}

func TestIntegrationMenuShowsProfileCount(t *testing.T) {
	m := setupModel(t)
	if err := m.identities.Put("abc12345", testIdentity()); err != nil {
		t.Fatal(err)
	}

	m = processMsg(t, m, navigateMsg{view: viewMenu})
	if m.menu.profileCount != 1 {
		t.Errorf("profile count = %d, want 1", m.menu.profileCount)
	}
}

func TestIntegrationDomainsRemembered(t *testing.T) {
	dir := t.TempDir()
	m := unlock(t, dir, "secret", true)

	p := bond()
	p.Domains = []string{"MI6.gov.uk", "@example.com"}
	m = processMsg(t, m, locateMsg{person: p})
	m = processMsg(t, m, navigateMsg{view: viewMenu})

	if got := m.locate.inputs[fieldDomains].Value(); got != "mi6.gov.uk, example.com" {
		t.Errorf("domains = %q, want remembered domains", got)
	}
	m.Close()

	// a new session on the same store sees the same defaults
	m = unlock(t, dir, "secret", false)
	defer m.Close()
	if got := m.locate.inputs[fieldDomains].Value(); got != "mi6.gov.uk, example.com" {
		t.Errorf("domains after reopen = %q", got)
	}
}

func TestIntegrationStoreReopenPersists(t *testing.T) {
	dir := t.TempDir()
	m := unlock(t, dir, "secret", true)
	m = processMsg(t, m, locateMsg{person: bond()})
	located := m.results.identity
	m = processMsg(t, m, saveIdentityMsg{identity: located})
	m.Close()

	m = unlock(t, dir, "secret", false)
	defer m.Close()
	m = processMsg(t, m, navigateMsg{view: viewList})
	if len(m.list.identities) != 1 {
		t.Fatalf("identities = %d, want 1", len(m.list.identities))
	}

	got := m.list.identities[0]
	if got.ID != located.ID || got.FirstName != "James" {
		t.Errorf("got %s %s, want %s James", got.ID, got.FirstName, located.ID)
	}
	if len(got.Emails) != len(located.Emails) {
		t.Errorf("emails = %d, want %d", len(got.Emails), len(located.Emails))
	}
}

func TestIntegrationNicknamesView(t *testing.T) {
	m := setupModel(t)
	m = processMsg(t, m, navigateMsg{view: viewNicknames})
	if m.active != viewNicknames {
		t.Fatalf("active = %d, want viewNicknames", m.active)
	}

	m = processMsg(t, m, lookupNicknamesMsg{name: "Bob"})
	if !slices.Contains(m.nicknames.results, "Robert") {
		t.Errorf("results = %v, want Robert", m.nicknames.results)
	}
}
