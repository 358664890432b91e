package driver

import (
	"sort"

	"github.com/pmoretti/linksift/internal/urlcheck"
)

// Results accumulates the outcome of one file scan: two sets of unique
// fragment strings, deduplicated by value. A fragment never appears in both
// sets, and every member of either set was deliberately checked (it passed
// the classifier, or came from a markup attribute slot). Insertion order is
// irrelevant; Valid and Invalid return lexicographically sorted slices.
//
// A single driver instance owns its Results exclusively; nothing here is
// safe for concurrent writers.
type Results struct {
	valid   map[string]struct{}
	invalid map[string]struct{}
	details map[string]string // invalid URL -> first-seen location
}

// InvalidDetail pairs an invalid URL with the location it was first seen at.
// Locations exist for messages and export only; they play no part in
// classification.
type InvalidDetail struct {
	URL      string
	Location string
}

// NewResults creates an empty results accumulator.
func NewResults() *Results {
	return &Results{
		valid:   map[string]struct{}{},
		invalid: map[string]struct{}{},
		details: map[string]string{},
	}
}

// Check runs the classify-then-validate pipeline on one normalized fragment.
// Fragments the classifier rejects are dropped entirely: they never reach
// the validator and never appear in either set.
func (r *Results) Check(fragment, location string) {
	if !urlcheck.LooksLikeURL(fragment) {
		return
	}
	r.CheckDirect(fragment, location)
}

// CheckDirect validates fragment without the classifier gate. Markup drivers
// use it: an extracted href/src is already a deliberate URL slot, so every
// value is worth a verdict.
func (r *Results) CheckDirect(fragment, location string) {
	if urlcheck.IsValidURL(fragment) {
		r.addValid(fragment)
	} else {
		r.addInvalid(fragment, location)
	}
}

func (r *Results) addValid(url string) {
	r.valid[url] = struct{}{}
}

func (r *Results) addInvalid(url, location string) {
	if _, seen := r.invalid[url]; !seen {
		r.invalid[url] = struct{}{}
		r.details[url] = location
	}
}

// Valid returns the unique valid URLs in lexicographic order.
func (r *Results) Valid() []string {
	return sortedKeys(r.valid)
}

// Invalid returns the unique invalid URLs in lexicographic order.
func (r *Results) Invalid() []string {
	return sortedKeys(r.invalid)
}

// InvalidDetails returns the invalid URLs with their first-seen locations,
// ordered by URL.
func (r *Results) InvalidDetails() []InvalidDetail {
	details := make([]InvalidDetail, 0, len(r.invalid))
	for _, url := range r.Invalid() {
		details = append(details, InvalidDetail{URL: url, Location: r.details[url]})
	}
	return details
}

// ValidCount returns the number of unique valid URLs.
func (r *Results) ValidCount() int {
	return len(r.valid)
}

// InvalidCount returns the number of unique invalid URLs.
func (r *Results) InvalidCount() int {
	return len(r.invalid)
}

// Total returns the number of unique URLs in both sets.
func (r *Results) Total() int {
	return len(r.valid) + len(r.invalid)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
