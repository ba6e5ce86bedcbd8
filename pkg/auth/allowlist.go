package auth

import "strings"

// Allowlist is the fixed set of account emails permitted to log in
// through the identity provider. Matching is case-insensitive. An
// empty allow-list denies everyone: the dashboard stays locked until
// operators are configured.
type Allowlist map[string]struct{}

func NewAllowlist(emails []string) Allowlist {
	a := make(Allowlist, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			a[e] = struct{}{}
		}
	}
	return a
}

func (a Allowlist) Allowed(email string) bool {
	_, ok := a[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
