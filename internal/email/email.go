// Package email turns username candidates into email address candidates.
// Addresses are not checked for existence.
package email

import (
	"strings"

	"github.com/zarlcorp/zbeacon/internal/variant"
)

// MaxAddressLength is the longest address accepted by SMTP (RFC 5321).
const MaxAddressLength = 254

// DefaultServices are popular public mail providers.
var DefaultServices = []string{
	"aol.com", "atmail.com", "fastmail.com", "getanemailaddress.info", "gmail.com", "gmx.com",
	"gmx.net", "gmx.us", "hushmail.com", "hushmail.me", "hush.com", "hush.ai", "mac.hush.com",
	"icloud.com", "me.com", "lycos.com", "mail.com", "email.com", "outlook.com", "hotmail.com",
	"protonmail.com", "rediffmail.com", "runbox.com", "yahoo.com", "yahdex.com", "zoho.com",
}

// Candidates returns username@domain for every pair. Addresses are
// lower-cased, so usernames differing only in case collapse into one, and
// addresses longer than MaxAddressLength are skipped.
func Candidates(usernames, domains []string) variant.Set {
	out := variant.NewSet()
	clean := Domains(domains)
	for _, u := range usernames {
		u = strings.ToLower(strings.TrimSpace(u))
		if u == "" {
			continue
		}
		for _, d := range clean {
			if len(u)+1+len(d) > MaxAddressLength {
				continue
			}
			out.Add(u + "@" + d)
		}
	}
	return out
}

// Domains trims and lower-cases domains, drops a leading "@" and removes
// blanks and duplicates. Order is preserved.
func Domains(domains []string) []string {
	seen := make(map[string]bool, len(domains))
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "@"))
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
