package urlcheck

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Domain shape bounds.
const (
	minTokenLen  = 4
	maxDomainLen = 100
	minTLDLen    = 2
	maxTLDLen    = 20
)

// LooksLikeDomain reports whether token has the shape of a domain name,
// optionally followed by a path ("arxiv.org/ai-safety" matches because
// "arxiv.org" does). The token should already be stripped of surrounding
// punctuation. All checks are shape checks; no registry or DNS knowledge is
// involved, and any malformed input yields false rather than an error.
func LooksLikeDomain(token string) bool {
	if utf8.RuneCountInString(token) < minTokenLen {
		return false
	}
	if !strings.Contains(token, ".") {
		return false
	}

	// Only the part before the first slash is the candidate domain.
	domain := token
	if i := strings.IndexByte(token, '/'); i >= 0 {
		domain = token[:i]
	}

	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return false
	}

	// The last label is the TLD: 2-20 characters, letters or hyphens only.
	// The generous upper bound tolerates made-up TLDs like "missing-domain".
	tld := parts[len(parts)-1]
	if n := utf8.RuneCountInString(tld); n < minTLDLen || n > maxTLDLen {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
	}

	// Every other label: non-empty, alphanumeric or hyphen, and hyphens
	// never at the edges.
	for _, label := range parts[:len(parts)-1] {
		if label == "" {
			return false
		}
		for _, r := range label {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
				return false
			}
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}

	if utf8.RuneCountInString(domain) > maxDomainLen {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	// The label left of the TLD must contain a letter. This rejects purely
	// numeric labels (IPv4-looking tokens dressed up as domains) while still
	// permitting mixed alphanumeric labels.
	for _, r := range parts[len(parts)-2] {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
