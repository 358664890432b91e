// Package urlcheck decides whether text fragments look like URLs and whether
// they are syntactically valid absolute HTTP/HTTPS URLs. It is a two-stage
// pipeline: LooksLikeURL is a cheap heuristic prefilter that separates
// probable URLs from prose, and IsValidURL is the strict syntactic check run
// only on fragments that pass the prefilter.
//
// Every function in this package is pure and total: the same input always
// yields the same answer, no state is kept between calls, and no input ever
// causes an error or panic. A fragment that cannot be classified is simply
// rejected.
package urlcheck

import (
	"strings"
	"unicode/utf8"
)

// Fragment length bounds for classification. Anything shorter cannot hold a
// domain; anything longer is almost certainly paragraph text.
const (
	minFragmentLen = 4
	maxFragmentLen = 200
)

// maxSpaces is how many space characters a fragment may contain before it is
// treated as multi-sentence text and rejected without further checks.
const maxSpaces = 2

// urlMarkers are substrings that settle classification immediately: a
// fragment containing any of them is URL-like regardless of surrounding text.
// Note ftp:// is a positive marker here even though the validator later
// rejects the scheme; such fragments end up in the invalid set.
var urlMarkers = []string{"http://", "https://", "www.", "ftp://"}

// sentenceIndicators are substrings treated as strong evidence of prose:
// sentence terminators followed by a space, and common English function words
// bounded by spaces. Matching any of them rejects the fragment before the
// domain check runs, so prose with an incidental domain-like token (for
// example "see the company policy.") is not misclassified.
var sentenceIndicators = []string{
	". ", "! ", "? ", ", and ", ", or ", " the ", " a ", " an ",
	" is ", " are ", " was ", " were ", " will ", " can ", " could ",
	" should ", " would ", " may ", " might ", " this ", " that ",
	" these ", " those ", " with ", " without ", " from ", " into ",
	" about ", " through ", " during ", " before ", " after ", " over ",
	" under ", " above ", " below ", " between ", " among ", " within ",
}

// tokenPunctuation is stripped from both ends of each whitespace-delimited
// token before the domain check, so "visit example.com." still matches.
const tokenPunctuation = ".,!?()[]{}\"'-"

// LooksLikeURL reports whether text is plausible enough as a URL to be worth
// validating. Rules apply in order and the first match decides:
//
//  1. Reject fragments shorter than 4 or longer than 200 characters.
//  2. Reject fragments with more than 2 spaces.
//  3. Accept fragments containing an explicit scheme or prefix marker
//     (http://, https://, www., ftp://), case-insensitively.
//  4. Reject fragments containing a sentence indicator.
//  5. Accept fragments with a dot-bearing token that has domain shape.
//  6. Reject everything else.
//
// The ordering matters for correctness, not just speed: marker detection must
// precede the sentence check so a sentence embedding http:// is not rejected,
// and the sentence check must precede the domain check so prose containing a
// domain-like token is not accepted.
func LooksLikeURL(text string) bool {
	text = strings.TrimSpace(text)

	if n := utf8.RuneCountInString(text); n < minFragmentLen || n > maxFragmentLen {
		return false
	}

	if strings.Count(text, " ") > maxSpaces {
		return false
	}

	lower := strings.ToLower(text)
	for _, marker := range urlMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	for _, indicator := range sentenceIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}

	if strings.Contains(text, ".") {
		for _, token := range strings.Fields(text) {
			if LooksLikeDomain(strings.Trim(token, tokenPunctuation)) {
				return true
			}
		}
	}

	return false
}
