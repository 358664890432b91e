package ui

import (
	"fmt"
	"strings"

	"github.com/pmoretti/linksift/internal/helpers"
)

// URLItem wraps one validated URL to implement the list.Item interface.
type URLItem struct {
	URL      string
	File     string
	Location string // first-seen location, empty for valid URLs
	Valid    bool
}

// FilterValue returns the string used for filtering.
// Implements list.Item interface.
func (i URLItem) FilterValue() string {
	return i.URL
}

// Title returns the main display text for the item.
// Implements list.DefaultItem interface.
func (i URLItem) Title() string {
	return helpers.TruncateURL(i.URL, 70)
}

// Description returns secondary text for the item.
// Implements list.DefaultItem interface.
func (i URLItem) Description() string {
	if i.Location != "" {
		return fmt.Sprintf("%s | %s", i.File, i.Location)
	}
	return i.File
}

// DetailView returns an expanded detail view for the selected item.
func (i URLItem) DetailView() string {
	var b strings.Builder

	b.WriteString("┌─ Details ─────────────────────────────────────────────────────────────\n")
	b.WriteString(fmt.Sprintf("│ %s  %s\n", MutedStyle.Render("Status:"), StatusBadge(i.Valid)))
	b.WriteString(fmt.Sprintf("│ %s  %s\n", MutedStyle.Render("URL:"), i.URL))
	b.WriteString(fmt.Sprintf("│ %s  %s\n", MutedStyle.Render("File:"), i.File))
	if i.Location != "" {
		b.WriteString(fmt.Sprintf("│ %s  %s\n", MutedStyle.Render("Found at:"), i.Location))
	}
	b.WriteString("└────────────────────────────────────────────────────────────────────────\n")

	return b.String()
}

// OutcomesToItems flattens file outcomes into list items, invalid URLs
// first within each file.
func OutcomesToItems(outcomes []FileOutcome, valid bool) []URLItem {
	var items []URLItem
	for _, o := range outcomes {
		if o.Results == nil {
			continue
		}
		if valid {
			for _, url := range o.Results.Valid() {
				items = append(items, URLItem{URL: url, File: o.Path, Valid: true})
			}
			continue
		}
		for _, d := range o.Results.InvalidDetails() {
			items = append(items, URLItem{
				URL:      d.URL,
				File:     o.Path,
				Location: d.Location,
			})
		}
	}
	return items
}
