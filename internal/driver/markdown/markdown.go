// Package markdown implements a markup driver for Markdown files. Inline
// link, image, and autolink destinations are extracted from the goldmark AST
// and validated directly, like the HTML driver: a markdown destination is a
// deliberate URL slot, so there is no classifier gate and relative or
// malformed destinations land in the invalid set.
package markdown

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/pmoretti/linksift/internal/driver"
	"github.com/pmoretti/linksift/internal/urlcheck"
)

// Driver implements driver.Driver for Markdown files.
type Driver struct{}

// New creates a new markdown driver.
func New() *Driver {
	return &Driver{}
}

// Extensions returns the file extensions this driver handles.
func (*Driver) Extensions() []string {
	return []string{".md", ".mdx", ".markdown"}
}

// candidate is one extracted destination and the node it came from.
type candidate struct {
	value    string
	location string
}

// Scan parses the document into an AST, collects link destinations in
// document order, then processes the collected stream with progress
// reporting. Cancellation is polled once per destination.
func (*Driver) Scan(ctx context.Context, _ string, content []byte, opts driver.Options) (*driver.Results, error) {
	candidates := collect(content)

	results := driver.NewResults()
	reporter := driver.NewReporter(opts.Progress, len(candidates))

	for _, c := range candidates {
		if driver.Canceled(ctx) {
			return results, nil
		}
		if fragment, ok := urlcheck.TextValue(c.value).Normalize(); ok {
			results.CheckDirect(fragment, c.location)
		}
		reporter.Step()
	}

	reporter.Finish()
	return results, nil
}

// collect walks the AST and gathers the destinations of links, images, and
// autolinked bare URLs. Code blocks never produce link nodes, so their
// contents are skipped for free.
func collect(content []byte) []candidate {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify, // surface bare URLs as autolinks
		),
	)
	doc := md.Parser().Parse(text.NewReader(content))

	var found []candidate
	n := 0
	add := func(kind, dest string) {
		if dest == "" {
			return
		}
		n++
		found = append(found, candidate{
			value:    dest,
			location: fmt.Sprintf("%s #%d", kind, n),
		})
	}

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Link:
			add("link", string(v.Destination))
		case *ast.Image:
			add("image", string(v.Destination))
		case *ast.AutoLink:
			add("autolink", string(v.URL(content)))
		}
		return ast.WalkContinue, nil
	})

	return found
}

// init registers the markdown driver with the default registry.
func init() {
	driver.Register(New())
}
