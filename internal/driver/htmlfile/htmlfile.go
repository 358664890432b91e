// Package htmlfile implements the markup driver: href and src attributes of
// a, img, link, and script elements are extracted and validated directly.
// Unlike the tabular and text drivers, there is no classifier gate: an
// attribute in a URL slot is already a deliberate URL, so every extracted
// value gets a verdict and malformed ones land in the invalid set.
//
// XML files are routed here too: the tolerant HTML tokenizer handles them
// well enough for attribute extraction.
package htmlfile

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/net/html"

	"github.com/pmoretti/linksift/internal/driver"
	"github.com/pmoretti/linksift/internal/urlcheck"
)

// linkElements are the elements whose href/src attributes are extracted.
var linkElements = map[string]bool{
	"a":      true,
	"img":    true,
	"link":   true,
	"script": true,
}

// Driver implements driver.Driver for HTML, HTM, and XML files.
type Driver struct{}

// New creates a new markup driver.
func New() *Driver {
	return &Driver{}
}

// Extensions returns the file extensions this driver handles.
func (*Driver) Extensions() []string {
	return []string{".html", ".htm", ".xml"}
}

// candidate is one extracted attribute value and the element it came from.
type candidate struct {
	value    string
	location string
}

// Scan tokenizes the document once to collect candidate attribute values,
// then processes the collected stream with progress reporting. Cancellation
// is polled once per element.
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

// collect extracts the href/src values of link-bearing elements in document
// order. When an element carries both attributes, href wins. The tokenizer
// is tolerant: malformed markup ends collection instead of failing the scan.
func collect(content []byte) []candidate {
	z := html.NewTokenizer(bytes.NewReader(content))
	var found []candidate
	n := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return found
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		tok := z.Token()
		if !linkElements[tok.Data] {
			continue
		}
		n++

		var href, src string
		for _, attr := range tok.Attr {
			switch attr.Key {
			case "href":
				href = attr.Val
			case "src":
				src = attr.Val
			}
		}

		value := href
		if value == "" {
			value = src
		}
		if value == "" {
			continue
		}

		found = append(found, candidate{
			value:    value,
			location: fmt.Sprintf("element <%s> #%d", tok.Data, n),
		})
	}
}

// init registers the markup driver with the default registry.
func init() {
	driver.Register(New())
}
