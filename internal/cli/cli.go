// Package cli implements zbeacon's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zbeacon/internal/identity"
	"github.com/zarlcorp/zbeacon/internal/profile"
	"golang.org/x/term"
)

// Collection is the name of the zstore collection holding saved profiles.
const Collection = "identities"

// Profiles is the encrypted collection of located identities.
type Profiles = zstore.Collection[identity.Identity]

// Opener opens the profile store. Callers close the returned store.
type Opener func() (*zstore.Store, *Profiles, error)

// ReadPassword prompts for a password on w and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("master password: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return pass, nil
}

// IsFirstRun checks whether the store has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "salt"))
	return err != nil
}

// OpenStore prompts for the master password on stderr and opens the store
// in dir.
func OpenStore(dir string) (*zstore.Store, *Profiles, error) {
	var pass string
	var err error
	if IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("master password: ", os.Stderr)
	}
	if err != nil {
		return nil, nil, err
	}
	return OpenStoreWithPassword(dir, pass)
}

// StoreOpener returns an Opener that prompts for the password and opens the
// store in dir.
func StoreOpener(dir string) Opener {
	return func() (*zstore.Store, *Profiles, error) {
		return OpenStore(dir)
	}
}

// OpenStoreWithPassword opens the store in dir, creating it on first use.
func OpenStoreWithPassword(dir, pass string) (*zstore.Store, *Profiles, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	s, err := zstore.Open(fsys, []byte(pass))
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	col, err := zstore.NewCollection[identity.Identity](s, Collection)
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("open collection: %w", err)
	}

	return s, col, nil
}

// CmdNames prints the full-name variants for <first> [middle] <last>.
func CmdNames(w io.Writer, g *identity.Generator, argv []string) error {
	return printVariants(w, argv, g.FullNames)
}

// CmdUsernames prints the username candidates for <first> [middle] <last>.
func CmdUsernames(w io.Writer, g *identity.Generator, argv []string) error {
	return printVariants(w, argv, g.Usernames)
}

// CmdEmails prints email candidates for <first> [middle] <last>, adding
// every --domain to the configured mail services.
func CmdEmails(w io.Writer, g *identity.Generator, argv []string) error {
	return printVariants(w, argv, g.Emails, "domain")
}

var jsonOnly = []string{"json"}

func printVariants(w io.Writer, argv []string, gen func(identity.Person) ([]string, error), valued ...string) error {
	a, err := parseArgs(argv, jsonOnly, valued)
	if err != nil {
		return err
	}
	p, err := a.person()
	if err != nil {
		return err
	}
	p.Domains = a.values["domain"]

	out, err := gen(p)
	if err != nil {
		return err
	}
	if a.has("--json") {
		return printJSON(w, out)
	}
	return printLines(w, out)
}

// CmdNicknames prints the other names in a name's nickname family.
func CmdNicknames(w io.Writer, g *identity.Generator, argv []string) error {
	a, err := parseArgs(argv, jsonOnly, nil)
	if err != nil {
		return err
	}
	if len(a.pos) != 1 {
		return fmt.Errorf("want one name: %w", ErrUsage)
	}

	names := g.Nicknames(a.pos[0])
	if a.has("--json") {
		if names == nil {
			names = []string{}
		}
		return printJSON(w, names)
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "no nicknames for %s\n", a.pos[0])
		return nil
	}
	return printLines(w, names)
}

// CmdLocate generates a complete identity for a person and optionally saves
// it to the encrypted store.
func CmdLocate(w io.Writer, g *identity.Generator, open Opener, argv []string) error {
	a, err := parseArgs(argv,
		[]string{"json", "save"},
		[]string{"domain", "linkedin", "angellist", "twitter"},
	)
	if err != nil {
		return err
	}
	p, err := a.person()
	if err != nil {
		return err
	}
	p.Domains = a.values["domain"]
	p.LinkedInURL = a.value("linkedin")
	p.AngelListURL = a.value("angellist")
	p.TwitterURL = a.value("twitter")

	id, err := g.Generate(p)
	if err != nil {
		return err
	}

	if a.has("--json") {
		if err := printJSON(w, id); err != nil {
			return err
		}
	} else {
		printIdentity(w, id)
	}

	if !a.has("--save") {
		return nil
	}

	s, col, err := open()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := col.Put(id.ID, id); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", id.ID)
	return nil
}

// CmdList lists all saved profiles, newest first.
func CmdList(w io.Writer, open Opener, argv []string) error {
	a, err := parseArgs(argv, jsonOnly, nil)
	if err != nil {
		return err
	}
	if len(a.pos) != 0 {
		return fmt.Errorf("list takes no names: %w", ErrUsage)
	}

	s, col, err := open()
	if err != nil {
		return err
	}
	defer s.Close()

	ids, err := col.List()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].CreatedAt.After(ids[j].CreatedAt)
	})

	if a.has("--json") {
		if ids == nil {
			ids = []identity.Identity{}
		}
		return printJSON(w, ids)
	}

	if len(ids) == 0 {
		fmt.Fprintln(w, "no saved profiles")
		return nil
	}

	for _, id := range ids {
		fmt.Fprintf(w, "  %-10s %-30s %6d  %s\n",
			id.ID,
			id.Name(),
			id.Total(),
			id.CreatedAt.Format("2006-01-02"),
		)
	}
	return nil
}

// CmdForget deletes a saved profile by ID.
func CmdForget(w io.Writer, open Opener, argv []string) error {
	a, err := parseArgs(argv, nil, nil)
	if err != nil {
		return err
	}
	if len(a.pos) != 1 {
		return fmt.Errorf("want one id: %w", ErrUsage)
	}
	id := a.pos[0]

	s, col, err := open()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := col.Get(id); err != nil {
		return fmt.Errorf("forget %s: %w", id, err)
	}
	if err := col.Delete(id); err != nil {
		return fmt.Errorf("forget %s: %w", id, err)
	}
	fmt.Fprintf(w, "deleted %s\n", id)
	return nil
}

// IsUsage reports whether err is an argument error worth a usage hint.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

func printIdentity(w io.Writer, id identity.Identity) {
	fmt.Fprintf(w, "  id:        %s\n", id.ID)
	fmt.Fprintf(w, "  name:      %s\n", id.Name())
	if len(id.Domains) > 0 {
		fmt.Fprintf(w, "  domains:   %v\n", id.Domains)
	}
	for _, svc := range profile.Services {
		if h, ok := id.Accounts[svc]; ok {
			fmt.Fprintf(w, "  %-10s %s\n", string(svc)+":", h)
		}
	}
	fmt.Fprintf(w, "  names:     %d\n", len(id.FullNames))
	fmt.Fprintf(w, "  usernames: %d\n", len(id.Usernames))
	fmt.Fprintf(w, "  emails:    %d\n", len(id.Emails))

	section(w, "full names", id.FullNames)
	section(w, "usernames", id.Usernames)
	section(w, "emails", id.Emails)
}

func section(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, s := range items {
		fmt.Fprintf(w, "  %s\n", s)
	}
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
