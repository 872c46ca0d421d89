package identity

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/zbeacon/internal/email"
	"github.com/zarlcorp/zbeacon/internal/fullname"
	"github.com/zarlcorp/zbeacon/internal/nickname"
	"github.com/zarlcorp/zbeacon/internal/profile"
	"github.com/zarlcorp/zbeacon/internal/username"
)

// Generator runs every generator for a person. It is safe for concurrent use.
type Generator struct {
	nicknames *nickname.Store
	names     *fullname.Generator
	usernames *username.Generator
	services  []string
	log       *slog.Logger
	now       func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithServices replaces the mail providers that email candidates are built
// for. The person's own domains are always added.
func WithServices(services []string) Option {
	return func(g *Generator) {
		g.services = email.Domains(services)
	}
}

// WithLogger sets the logger used for skipped profile URLs.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// New creates a generator expanding first names with nicknames. A nil
// store disables nickname expansion.
func New(nicknames *nickname.Store, opts ...Option) *Generator {
	g := &Generator{
		nicknames: nicknames,
		usernames: username.New(),
		services:  email.DefaultServices,
		log:       slog.Default(),
		now:       time.Now,
	}
	if nicknames != nil {
		g.names = fullname.New(nicknames)
	} else {
		g.names = fullname.New(nil)
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Nicknames returns the other names in name's nickname family.
func (g *Generator) Nicknames(name string) []string {
	return g.nicknames.Siblings(name)
}

// Services returns the configured mail providers.
func (g *Generator) Services() []string {
	return append([]string(nil), g.services...)
}

// FullNames returns the sorted full-name variants for p.
func (g *Generator) FullNames(p Person) ([]string, error) {
	names, err := g.names.Generate(p.FirstName, p.MiddleName, p.LastName)
	if err != nil {
		return nil, err
	}
	return names.Sorted(), nil
}

// Usernames returns the sorted username candidates for p.
func (g *Generator) Usernames(p Person) ([]string, error) {
	users, err := g.usernames.Generate(p.FirstName, p.MiddleName, p.LastName)
	if err != nil {
		return nil, err
	}
	return users.Sorted(), nil
}

// Emails returns the sorted email candidates for p across the configured
// services and p's own domains.
func (g *Generator) Emails(p Person) ([]string, error) {
	users, err := g.Usernames(p)
	if err != nil {
		return nil, err
	}
	return g.emails(users, p.Domains), nil
}

func (g *Generator) emails(usernames, domains []string) []string {
	all := append(g.Services(), domains...)
	return email.Candidates(usernames, all).Sorted()
}

// Generate builds the identity for p. It fails when a name part is empty or
// unusable; bad profile URLs are logged and skipped.
func (g *Generator) Generate(p Person) (Identity, error) {
	names, err := g.FullNames(p)
	if err != nil {
		return Identity{}, fmt.Errorf("generate identity: %w", err)
	}

	users, err := g.Usernames(p)
	if err != nil {
		return Identity{}, fmt.Errorf("generate identity: %w", err)
	}

	id, err := hexID()
	if err != nil {
		return Identity{}, fmt.Errorf("generate identity: %w", err)
	}

	p.Domains = email.Domains(p.Domains)

	return Identity{
		ID:        id,
		Person:    p,
		Accounts:  g.accounts(p),
		FullNames: names,
		Usernames: users,
		Emails:    g.emails(users, p.Domains),
		CreatedAt: g.now(),
	}, nil
}

func (g *Generator) accounts(p Person) map[profile.Service]string {
	out := make(map[profile.Service]string)
	for _, svc := range profile.Services {
		raw := p.ProfileURL(svc)
		if raw == "" {
			continue
		}
		handle, err := profile.Username(svc, raw)
		if err != nil {
			g.log.Debug("skip profile url", "service", svc, "url", raw, "err", err)
			continue
		}
		out[svc] = handle
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// hexID generates an 8-character hex string.
func hexID() (string, error) {
	b, err := zcrypto.RandBytes(4)
	if err != nil {
		return "", fmt.Errorf("random id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
