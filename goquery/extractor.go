// Package goquery provides HTML fragment extraction using
// PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/askweb"
)

// Compile-time interface verification.
var _ askweb.Extractor = (*Extractor)(nil)

// Extractor pulls head and body fragments and anchor hrefs out of raw
// HTML. Extraction is best-effort: the underlying parser repairs
// malformed documents, so whatever fragments can be located are returned.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the inner markup of the document's head and body
// sections and the raw href value of every anchor in document order.
func (e *Extractor) Extract(html string) (*askweb.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, askweb.Errorf(askweb.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &askweb.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	if inner, err := doc.Find("head").First().Html(); err == nil {
		result.Head = inner
	}
	if inner, err := doc.Find("body").First().Html(); err == nil {
		result.Body = inner
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		result.Links = append(result.Links, href)
	})

	return result, nil
}
