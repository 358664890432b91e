package urlcheck

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether raw is a syntactically valid absolute HTTP or
// HTTPS URL: it must parse, carry a scheme of exactly http or https
// (case-insensitive), and have a non-empty authority that neither starts nor
// ends with a dot.
//
// The check is deliberately more permissive than full RFC validation:
// localhost, bare IP literals, and unqualified internal hostnames all pass,
// and paths, queries, ports, and fragments are unconstrained. It validates
// syntax only; reachability is never checked.
func IsValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Host)
	if host == "" {
		return false
	}
	return !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}
