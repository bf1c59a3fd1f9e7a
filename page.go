package askweb

import (
	"context"
	"time"
)

// Page records one ingested page in the crawl archive. The page content
// itself lives in the vector index; the archive keeps enough metadata to
// show what the index was built from.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	HeadBytes   int       `json:"headBytes"`
	BodyBytes   int       `json:"bodyBytes"`
	Chunks      int       `json:"chunks"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService persists the crawl archive.
type PageService interface {
	// CreatePage records an ingested page. Re-ingesting a URL replaces
	// its previous record.
	CreatePage(ctx context.Context, page *Page) error

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// ExtractResult holds the fragments pulled out of one page.
type ExtractResult struct {
	// Title is the text of the document's <title> element, if any.
	Title string

	// Head and Body are the serialized inner markup of the document's
	// head and body sections. Either may be empty if the section is
	// missing from the document.
	Head string
	Body string

	// Links holds the raw href attribute values of every anchor in the
	// document, in document order. Resolution and scoping are left to
	// LinkScope.
	Links []string
}

// Extractor pulls head and body fragments and anchor hrefs out of raw HTML.
// Extraction is best-effort: a malformed document yields whatever fragments
// can be located rather than an error.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
