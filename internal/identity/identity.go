// Package identity composes every generated variant for one person into a
// record that can be saved and browsed later.
package identity

import (
	"strings"
	"time"

	"github.com/zarlcorp/zbeacon/internal/profile"
)

// Person is the input to one locate run. FirstName and LastName are
// required; everything else is optional.
type Person struct {
	FirstName    string   `json:"first_name"`
	MiddleName   string   `json:"middle_name,omitempty"`
	LastName     string   `json:"last_name"`
	Domains      []string `json:"domains,omitempty"`
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	AngelListURL string   `json:"angellist_url,omitempty"`
	TwitterURL   string   `json:"twitter_url,omitempty"`
}

// Name returns the parts joined with single spaces.
func (p Person) Name() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ProfileURL returns the URL supplied for service, or "".
func (p Person) ProfileURL(service profile.Service) string {
	switch service {
	case profile.LinkedIn:
		return p.LinkedInURL
	case profile.AngelList:
		return p.AngelListURL
	case profile.Twitter:
		return p.TwitterURL
	}
	return ""
}

// Identity holds a located person and everything generated for them.
type Identity struct {
	ID string `json:"id"`
	Person

	// Accounts maps a service to the handle parsed from its profile URL.
	Accounts  map[profile.Service]string `json:"accounts,omitempty"`
	FullNames []string                   `json:"full_names"`
	Usernames []string                   `json:"usernames"`
	Emails    []string                   `json:"emails"`
	CreatedAt time.Time                  `json:"created_at"`
}

// Total returns the number of generated candidates.
func (id Identity) Total() int {
	return len(id.FullNames) + len(id.Usernames) + len(id.Emails)
}
