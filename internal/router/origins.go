package router

import (
	"net/url"
	"strings"
)

// Allowlist holds the origins permitted to make cross-origin requests. It is
// built once from configuration at startup and passed into the router.
type Allowlist struct {
	entries []string
}

// NewAllowlist normalizes the given origins: blanks dropped, surrounding
// whitespace and trailing slashes stripped. Entries may carry a wildcard host
// prefix such as "https://*.vercel.app" or "*.vercel.app".
func NewAllowlist(origins []string) *Allowlist {
	var entries []string
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		entries = append(entries, strings.TrimSuffix(origin, "/"))
	}
	return &Allowlist{entries: entries}
}

// Match reports whether origin is allowed. Exact entries match
// case-insensitively; wildcard entries match on host suffix, and on protocol
// too when the entry carries one.
func (a *Allowlist) Match(origin string) bool {
	normalized := strings.TrimSuffix(origin, "/")
	for _, entry := range a.entries {
		if !strings.Contains(entry, "*") {
			if strings.EqualFold(entry, normalized) {
				return true
			}
			continue
		}
		if matchWildcard(entry, normalized) {
			return true
		}
	}
	return false
}

func matchWildcard(entry, origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}

	scheme := ""
	hostPattern := entry
	if i := strings.Index(entry, "://"); i >= 0 {
		scheme = entry[:i]
		hostPattern = entry[i+3:]
	}
	if scheme != "" && !strings.EqualFold(scheme, u.Scheme) {
		return false
	}

	suffix := strings.ToLower(strings.TrimPrefix(hostPattern, "*."))
	return strings.HasSuffix(strings.ToLower(u.Host), suffix)
}
