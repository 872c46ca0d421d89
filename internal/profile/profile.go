// Package profile extracts account handles from social profile URLs.
package profile

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrInvalidURL      = errors.New("invalid profile url")
	ErrUnsupportedHost = errors.New("unsupported profile host")
	ErrNoHandle        = errors.New("profile url has no handle")
)

// Service names a social network.
type Service string

const (
	LinkedIn  Service = "linkedin"
	AngelList Service = "angellist"
	Twitter   Service = "twitter"
)

// Services lists every supported service in display order.
var Services = []Service{LinkedIn, AngelList, Twitter}

type rule struct {
	hosts  []string
	prefix string // path segment before the handle, if any
}

var rules = map[Service]rule{
	LinkedIn:  {hosts: []string{"linkedin.com"}, prefix: "in"},
	AngelList: {hosts: []string{"angel.co", "wellfound.com"}},
	Twitter:   {hosts: []string{"twitter.com", "x.com"}},
}

// reserved top-level paths that are never account handles
var reserved = map[string]bool{
	"home": true, "search": true, "login": true, "signup": true,
	"settings": true, "explore": true, "i": true, "intent": true,
	"share": true, "jobs": true, "company": true, "companies": true,
}

// Username returns the account handle in rawURL for service, e.g.
// "https://www.linkedin.com/in/jbond/" -> "jbond". The scheme may be omitted.
func Username(service Service, rawURL string) (string, error) {
	r, ok := rules[service]
	if !ok {
		return "", fmt.Errorf("parse %s url: unknown service: %w", service, ErrUnsupportedHost)
	}

	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return "", fmt.Errorf("parse %s url: empty: %w", service, ErrInvalidURL)
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse %s url %q: %w", service, rawURL, errors.Join(ErrInvalidURL, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("parse %s url %q: scheme %q: %w", service, rawURL, u.Scheme, ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("parse %s url %q: no host: %w", service, rawURL, ErrInvalidURL)
	}

	if !matchHost(u.Hostname(), r.hosts) {
		return "", fmt.Errorf("parse %s url %q: host %q: %w", service, rawURL, u.Hostname(), ErrUnsupportedHost)
	}

	segs := segments(u.Path)
	if r.prefix != "" {
		if len(segs) == 0 || !strings.EqualFold(segs[0], r.prefix) {
			return "", fmt.Errorf("parse %s url %q: expected /%s/<handle>: %w", service, rawURL, r.prefix, ErrNoHandle)
		}
		segs = segs[1:]
	}
	if len(segs) == 0 {
		return "", fmt.Errorf("parse %s url %q: %w", service, rawURL, ErrNoHandle)
	}

	handle := strings.TrimPrefix(segs[0], "@")
	if handle == "" || (r.prefix == "" && reserved[strings.ToLower(handle)]) {
		return "", fmt.Errorf("parse %s url %q: %w", service, rawURL, ErrNoHandle)
	}
	return handle, nil
}

// matchHost accepts the bare domain and any subdomain of it, such as www or
// a country prefix.
func matchHost(host string, domains []string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func segments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
